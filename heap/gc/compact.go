package gc

import (
	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// compact slides every live object in [0, end) down to its forwarding address
// and clears the mark on the moved copy.
func (c *Collector) compact(end heap.Ref) {
	for from := heap.Ref(0); from < end; from += format.SlotSize {
		to := c.h.Forward(from)
		if to.IsNil() {
			continue
		}
		c.h.Move(to, from)
		c.h.SetForward(to, heap.Nil)
	}
}
