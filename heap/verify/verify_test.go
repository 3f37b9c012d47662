package verify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

type sliceRoots []heap.Ref

func (s sliceRoots) Len() int            { return len(s) }
func (s sliceRoots) Root(i int) heap.Ref { return s[i] }

// newValidHeap builds int(1), int(2), pair(@0, @1) with the pair as the only root.
func newValidHeap(t *testing.T) (*heap.Heap, sliceRoots, heap.Ref) {
	t.Helper()
	h, err := heap.New(8)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	h.Init(heap.RefAt(0), heap.KindInt)
	h.SetInt(heap.RefAt(0), 1)
	h.Init(heap.RefAt(1), heap.KindInt)
	h.SetInt(heap.RefAt(1), 2)
	h.Init(heap.RefAt(2), heap.KindPair)
	h.SetHead(heap.RefAt(2), heap.RefAt(0))
	h.SetTail(heap.RefAt(2), heap.RefAt(1))

	return h, sliceRoots{heap.RefAt(2), heap.Nil}, heap.RefAt(3)
}

func requireValidationType(t *testing.T, err error, typ string) *ValidationError {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
	require.Equal(t, typ, verr.Type)
	return verr
}

func TestAllInvariants_Valid(t *testing.T) {
	h, roots, end := newValidHeap(t)
	require.NoError(t, AllInvariants(h, roots, end))
	require.NoError(t, Compacted(h, roots, end))
}

func TestAllInvariants_EmptyHeap(t *testing.T) {
	h, _, _ := newValidHeap(t)
	require.NoError(t, AllInvariants(h, sliceRoots{}, 0))
	require.NoError(t, Compacted(h, sliceRoots{}, 0))
}

func TestCursor_Misaligned(t *testing.T) {
	h, _, _ := newValidHeap(t)
	verr := requireValidationType(t, Cursor(h, heap.Ref(5)), "Cursor")
	require.Contains(t, verr.Message, "not slot aligned")
}

func TestCursor_BeyondCapacity(t *testing.T) {
	h, _, _ := newValidHeap(t)
	verr := requireValidationType(t, Cursor(h, heap.RefAt(9)), "Cursor")
	require.Equal(t, h.Capacity(), verr.Details["capacity"])
}

func TestCursor_Closed(t *testing.T) {
	h, _, end := newValidHeap(t)
	require.NoError(t, h.Close())
	requireValidationType(t, Cursor(h, end), "Cursor")
}

func TestSlots_BadKind(t *testing.T) {
	h, _, end := newValidHeap(t)
	h.Bytes()[int(heap.RefAt(1))+format.SlotKindOffset] = 0x7F

	verr := requireValidationType(t, Slots(h, end), "Slots")
	require.Equal(t, int(heap.RefAt(1)), verr.Offset)
	require.Contains(t, verr.Error(), "unknown object kind")
}

func TestForwarding_Set(t *testing.T) {
	h, _, end := newValidHeap(t)
	h.SetForward(heap.RefAt(1), heap.RefAt(0))

	verr := requireValidationType(t, Forwarding(h, end), "Forwarding")
	require.Equal(t, int(heap.RefAt(1)), verr.Offset)
}

func TestReferences_BadRoot(t *testing.T) {
	h, _, end := newValidHeap(t)
	verr := requireValidationType(t, References(h, sliceRoots{heap.RefAt(3)}, end), "References")
	require.Equal(t, 0, verr.Details["root"])
	require.Equal(t, -1, verr.Offset)
}

func TestReferences_BadField(t *testing.T) {
	h, roots, end := newValidHeap(t)
	h.SetTail(heap.RefAt(2), heap.Ref(7))

	verr := requireValidationType(t, References(h, roots, end), "References")
	require.Equal(t, "tail", verr.Details["field"])
	require.Equal(t, int(heap.RefAt(2)), verr.Offset)
}

func TestCompacted_Garbage(t *testing.T) {
	h, _, end := newValidHeap(t)
	// Root only int(2); int(1) and the pair are garbage.
	verr := requireValidationType(t, Compacted(h, sliceRoots{heap.RefAt(1)}, end), "Compacted")
	require.Equal(t, 0, verr.Details["slot"])
}

func TestCompacted_Cycle(t *testing.T) {
	h, err := heap.New(2)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	h.Init(heap.RefAt(0), heap.KindPair)
	h.Init(heap.RefAt(1), heap.KindPair)
	h.SetTail(heap.RefAt(0), heap.RefAt(1))
	h.SetTail(heap.RefAt(1), heap.RefAt(0))

	require.NoError(t, Compacted(h, sliceRoots{heap.RefAt(1)}, heap.RefAt(2)))
}
