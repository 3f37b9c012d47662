package heap

import (
	"fmt"

	"github.com/joshuapare/gckit/internal/buf"
	"github.com/joshuapare/gckit/internal/format"
	"github.com/joshuapare/gckit/internal/mmfile"
)

// Heap is a fixed-capacity slot arena, backed by mmap (unix/darwin) or a byte
// slice (others).
type Heap struct {
	data    []byte
	release func() error
}

// New creates a zeroed heap with room for slots objects.
func New(slots int) (*Heap, error) {
	size, err := buf.ArenaSize(slots, format.SlotSize, format.MaxHeapBytes)
	if err != nil {
		return nil, fmt.Errorf("heap: %w", err)
	}
	data, release, err := mmfile.Anon(size)
	if err != nil {
		return nil, fmt.Errorf("heap: %w", err)
	}
	return &Heap{data: data, release: release}, nil
}

// Close releases the arena. Using the heap afterwards panics on slot access;
// Check reports ErrClosed.
func (h *Heap) Close() error {
	if h == nil || h.data == nil {
		return nil
	}
	h.data = nil
	rel := h.release
	h.release = nil
	if rel == nil {
		return nil
	}
	return rel()
}

// Closed reports whether Close has been called.
func (h *Heap) Closed() bool { return h == nil || h.data == nil }

// Bytes returns the raw arena.
func (h *Heap) Bytes() []byte { return h.data }

// Capacity returns the arena size in bytes.
func (h *Heap) Capacity() int { return len(h.data) }

// Slots returns the number of object slots in the arena.
func (h *Heap) Slots() int { return len(h.data) / format.SlotSize }

// Check validates r as a handle to a live slot below end.
func (h *Heap) Check(r Ref, end Ref) error {
	if h.Closed() {
		return ErrClosed
	}
	if r.IsNil() {
		return fmt.Errorf("%w: nil", ErrBadRef)
	}
	off := int(r)
	if !format.IsSlotAligned(off) {
		return fmt.Errorf("%w: %s not slot aligned", ErrBadRef, r)
	}
	if r >= end || !buf.Has(h.data, off, format.SlotSize) {
		return fmt.Errorf("%w: %s beyond end %s", ErrBadRef, r, end)
	}
	return nil
}

// Init writes a fresh object of the given kind at r: forwarding cleared,
// payload zeroed, pair fields Nil.
func (h *Heap) Init(r Ref, k Kind) {
	s := h.slot(r)
	clear(s)
	s[format.SlotKindOffset] = byte(k)
	format.PutU32(s, format.SlotForwardOffset, format.NilRef)
	if k == KindPair {
		format.PutU32(s, format.SlotHeadOffset, format.NilRef)
		format.PutU32(s, format.SlotTailOffset, format.NilRef)
	}
}

// Move copies the slot at src to dst. Overlap is impossible at slot
// granularity; dst == src is a no-op copy.
func (h *Heap) Move(dst, src Ref) {
	copy(h.slot(dst), h.slot(src))
}

// Kind returns the kind tag of the object at r.
func (h *Heap) Kind(r Ref) Kind { return Kind(h.slot(r)[format.SlotKindOffset]) }

// Forward returns the forwarding field of the object at r.
func (h *Heap) Forward(r Ref) Ref {
	return Ref(format.ReadU32(h.slot(r), format.SlotForwardOffset))
}

// SetForward sets the forwarding field of the object at r.
func (h *Heap) SetForward(r, fwd Ref) {
	format.PutU32(h.slot(r), format.SlotForwardOffset, uint32(fwd))
}

// Int returns the value of the int object at r.
func (h *Heap) Int(r Ref) int64 { return format.ReadI64(h.slot(r), format.SlotIntOffset) }

// SetInt sets the value of the int object at r.
func (h *Heap) SetInt(r Ref, v int64) { format.PutI64(h.slot(r), format.SlotIntOffset, v) }

// Head returns the head field of the pair at r.
func (h *Heap) Head(r Ref) Ref { return Ref(format.ReadU32(h.slot(r), format.SlotHeadOffset)) }

// Tail returns the tail field of the pair at r.
func (h *Heap) Tail(r Ref) Ref { return Ref(format.ReadU32(h.slot(r), format.SlotTailOffset)) }

// SetHead sets the head field of the pair at r.
func (h *Heap) SetHead(r, v Ref) { format.PutU32(h.slot(r), format.SlotHeadOffset, uint32(v)) }

// SetTail sets the tail field of the pair at r.
func (h *Heap) SetTail(r, v Ref) { format.PutU32(h.slot(r), format.SlotTailOffset, uint32(v)) }

// Decode returns a decoded copy of the slot at r.
func (h *Heap) Decode(r Ref) (format.Slot, error) {
	if h.Closed() {
		return format.Slot{}, ErrClosed
	}
	return format.DecodeSlot(h.data, int(r))
}

func (h *Heap) slot(r Ref) []byte {
	off := int(r)
	return h.data[off : off+format.SlotSize : off+format.SlotSize]
}
