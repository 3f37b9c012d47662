package gc

import "github.com/joshuapare/gckit/heap"

// markAll marks everything reachable from the root set and returns the number
// of objects marked.
func (c *Collector) markAll() int {
	marked := 0
	for i := 0; i < c.roots.Len(); i++ {
		if r := c.roots.Root(i); !r.IsNil() {
			marked += c.mark(r)
		}
	}
	return marked
}

// mark traces from r. The work-list replaces recursion so chain depth is
// bounded by memory rather than the goroutine stack.
func (c *Collector) mark(r heap.Ref) int {
	marked := 0
	work := append(c.work[:0], r)
	for len(work) > 0 {
		obj := work[len(work)-1]
		work = work[:len(work)-1]

		// Already marked: this is what terminates cycles.
		if !c.h.Forward(obj).IsNil() {
			continue
		}
		// Any non-Nil value means reached. The object's own address is as
		// good as any; the planner overwrites it.
		c.h.SetForward(obj, obj)
		marked++

		if c.h.Kind(obj) == heap.KindPair {
			if tail := c.h.Tail(obj); !tail.IsNil() {
				work = append(work, tail)
			}
			if head := c.h.Head(obj); !head.IsNil() {
				work = append(work, head)
			}
		}
	}
	c.work = work[:0]
	return marked
}
