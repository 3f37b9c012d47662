package gc

import (
	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// updateAllObjectPointers rewrites every root and every field of every live
// pair to the forwarding address of the object it references. Targets are
// still at their old addresses while this runs.
func (c *Collector) updateAllObjectPointers(end heap.Ref) {
	for i := 0; i < c.roots.Len(); i++ {
		if r := c.roots.Root(i); !r.IsNil() {
			c.roots.SetRoot(i, c.h.Forward(r))
		}
	}

	for from := heap.Ref(0); from < end; from += format.SlotSize {
		if c.h.Forward(from).IsNil() || c.h.Kind(from) != heap.KindPair {
			continue
		}
		if head := c.h.Head(from); !head.IsNil() {
			c.h.SetHead(from, c.h.Forward(head))
		}
		if tail := c.h.Tail(from); !tail.IsNil() {
			c.h.SetTail(from, c.h.Forward(tail))
		}
	}
}
