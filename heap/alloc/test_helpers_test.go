package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gckit/heap"
)

// newTestHeap creates a heap with n slots, closed at test end.
func newTestHeap(t testing.TB, n int) *heap.Heap {
	t.Helper()
	h, err := heap.New(n)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// fillHeap allocates until the heap is full, failing the test on any error.
func fillHeap(t testing.TB, ba *BumpAllocator, n int) []heap.Ref {
	t.Helper()
	refs := make([]heap.Ref, 0, n)
	for i := range n {
		ref, err := ba.Alloc(heap.KindInt)
		require.NoError(t, err, "alloc %d", i)
		refs = append(refs, ref)
	}
	return refs
}
