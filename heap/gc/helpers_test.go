package gc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// sliceRoots is a RootSet backed by a plain slice.
type sliceRoots []heap.Ref

func (s sliceRoots) Len() int                  { return len(s) }
func (s sliceRoots) Root(i int) heap.Ref       { return s[i] }
func (s sliceRoots) SetRoot(i int, r heap.Ref) { s[i] = r }

// testHeap is a heap plus a hand-driven cursor for building object graphs
// without the allocator.
type testHeap struct {
	*heap.Heap
	end heap.Ref
}

func newTestHeap(t testing.TB, slots int) *testHeap {
	t.Helper()
	h, err := heap.New(slots)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return &testHeap{Heap: h}
}

func (th *testHeap) newInt(v int64) heap.Ref {
	r := th.end
	th.Init(r, heap.KindInt)
	th.SetInt(r, v)
	th.end += format.SlotSize
	return r
}

func (th *testHeap) newPair(head, tail heap.Ref) heap.Ref {
	r := th.end
	th.Init(r, heap.KindPair)
	th.SetHead(r, head)
	th.SetTail(r, tail)
	th.end += format.SlotSize
	return r
}

// requireCleanForwarding asserts that no object in [0, end) is still marked.
func requireCleanForwarding(t testing.TB, h *heap.Heap, end heap.Ref) {
	t.Helper()
	for r := heap.Ref(0); r < end; r += format.SlotSize {
		require.True(t, h.Forward(r).IsNil(), "forwarding field of %s still set", r)
	}
}
