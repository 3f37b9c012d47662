package gc

import (
	"testing"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// BenchmarkCollect_HalfLive measures a cycle where every other object
// survives, so the compactor moves half the heap.
func BenchmarkCollect_HalfLive(b *testing.B) {
	const slots = 4096
	th := newTestHeap(b, slots)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		th.end = 0
		roots := make(sliceRoots, 0, slots/2)
		for j := range slots {
			r := th.newInt(int64(j))
			if j%2 == 1 {
				roots = append(roots, r)
			}
		}
		c := New(th.Heap, roots, nil)
		b.StartTimer()

		c.Collect(th.end)
	}
}

// BenchmarkMark_LongList measures marking a single linked list.
func BenchmarkMark_LongList(b *testing.B) {
	const n = 8192
	th := newTestHeap(b, n+1)
	list := th.newInt(0)
	for range n {
		list = th.newPair(heap.Nil, list)
	}
	roots := sliceRoots{list}
	c := New(th.Heap, roots, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.markAll()
		b.StopTimer()
		for r := heap.Ref(0); r < th.end; r += format.SlotSize {
			th.SetForward(r, heap.Nil)
		}
		b.StartTimer()
	}
}
