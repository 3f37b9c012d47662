package gc

import (
	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// calculateNewLocations assigns every marked object in [0, end) its
// post-compaction address and returns the end of the compacted live region.
func (c *Collector) calculateNewLocations(end heap.Ref) heap.Ref {
	var to heap.Ref
	for from := heap.Ref(0); from < end; from += format.SlotSize {
		if c.h.Forward(from).IsNil() {
			continue
		}
		c.h.SetForward(from, to)
		// "to" only advances past live objects, so live data slides down
		// over dead slots.
		to += format.SlotSize
	}
	return to
}
