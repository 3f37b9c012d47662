package heap

import (
	"fmt"

	"github.com/joshuapare/gckit/internal/format"
)

// Ref is the address of an object: its byte offset from the arena base.
// Valid refs are multiples of format.SlotSize.
type Ref uint32

// Nil is the null reference.
const Nil Ref = format.NilRef

// IsNil reports whether r is the null reference.
func (r Ref) IsNil() bool { return r == Nil }

// Slot returns the slot index of r.
func (r Ref) Slot() int { return int(r) / format.SlotSize }

// RefAt returns the ref of slot index i.
func RefAt(i int) Ref { return Ref(i * format.SlotSize) }

func (r Ref) String() string {
	if r.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("@0x%04X", uint32(r))
}
