package heap

import (
	"io"

	"github.com/joshuapare/gckit/internal/format"
)

// SlotIterator walks decoded slots in increasing address order.
type SlotIterator struct {
	h    *Heap
	off  int
	end  int
	done bool
}

// Iter returns an iterator over the slots in [0, end).
func (h *Heap) Iter(end Ref) *SlotIterator {
	e := int(end)
	if e > h.Capacity() {
		e = h.Capacity()
	}
	return &SlotIterator{h: h, end: e}
}

// Next returns the next slot, or io.EOF once end is reached. A decode error
// stops the iteration.
func (it *SlotIterator) Next() (format.Slot, error) {
	if it.done || it.off >= it.end {
		it.done = true
		return format.Slot{}, io.EOF
	}
	s, err := format.DecodeSlot(it.h.data, it.off)
	if err != nil {
		it.done = true
		return s, err
	}
	it.off += format.SlotSize
	return s, nil
}
