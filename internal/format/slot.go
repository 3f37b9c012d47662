package format

import (
	"fmt"

	"github.com/joshuapare/gckit/internal/buf"
)

// Slot is a decoded view of one object slot.
//
// Head and Tail are only meaningful for KindPair, Value only for KindInt.
type Slot struct {
	Offset  int
	Kind    uint8
	Forward uint32
	Value   int64
	Head    uint32
	Tail    uint32
}

// DecodeSlot decodes the slot starting at off.
func DecodeSlot(b []byte, off int) (Slot, error) {
	if !IsSlotAligned(off) {
		return Slot{}, fmt.Errorf("slot 0x%X: %w", off, ErrMisaligned)
	}
	raw, ok := buf.Slice(b, off, SlotSize)
	if !ok {
		return Slot{}, fmt.Errorf("slot 0x%X: %w", off, ErrTruncated)
	}
	s := Slot{
		Offset:  off,
		Kind:    raw[SlotKindOffset],
		Forward: ReadU32(raw, SlotForwardOffset),
	}
	switch s.Kind {
	case KindInt:
		s.Value = ReadI64(raw, SlotIntOffset)
	case KindPair:
		s.Head = ReadU32(raw, SlotHeadOffset)
		s.Tail = ReadU32(raw, SlotTailOffset)
	default:
		return s, fmt.Errorf("slot 0x%X: kind 0x%02X: %w", off, s.Kind, ErrBadKind)
	}
	return s, nil
}

// KindName returns a short display name for a kind tag.
func KindName(kind uint8) string {
	switch kind {
	case KindInt:
		return "int"
	case KindPair:
		return "pair"
	case KindFree:
		return "free"
	default:
		return fmt.Sprintf("kind(0x%02X)", kind)
	}
}
