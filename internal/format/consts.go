// Package format houses the low-level layout of heap object slots. Every
// object occupies exactly one fixed-size slot; higher-level packages address
// slots by byte offset and decode them through the helpers here.
package format

const (
	// SlotSize is the size of one object slot in bytes. Every address handed
	// out by the allocator is a multiple of SlotSize.
	SlotSize = 16

	// SlotAlignmentMask is the bitmask used for aligning to slot boundaries (SlotSize - 1).
	SlotAlignmentMask = SlotSize - 1

	// NilRef is the encoded "no reference" value. Offset 0 is the heap base
	// and a valid address, so null cannot be zero.
	NilRef = 0xFFFFFFFF

	// MaxHeapBytes bounds the arena so every slot offset fits in a uint32
	// strictly below NilRef.
	MaxHeapBytes = 1 << 30
)

// Slot field offsets (little-endian).
//
//	Offset  Size  Description
//	0x00    1     Kind tag (KindInt, KindPair)
//	0x01    3     Reserved, always zero
//	0x04    4     Forwarding field. NilRef outside a collection cycle.
//	0x08    8     Int: signed 64-bit value
//	0x08    4     Pair: head reference
//	0x0C    4     Pair: tail reference
const (
	SlotKindOffset    = 0x00
	SlotForwardOffset = 0x04
	SlotIntOffset     = 0x08
	SlotHeadOffset    = 0x08
	SlotTailOffset    = 0x0C
)

// Object kind tags stored at SlotKindOffset.
const (
	KindFree = 0x00 // never written by the allocator; marks a zeroed slot
	KindInt  = 0x01
	KindPair = 0x02
)

// Defaults used when the caller leaves a capacity at zero.
const (
	// DefaultHeapSlots is the number of object slots in a default heap.
	DefaultHeapSlots = 256

	// DefaultStackSlots is the default root set capacity.
	DefaultStackSlots = 256
)
