package vm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gckit/heap/verify"
)

// newTestVM creates a VM closed at test end.
func newTestVM(t testing.TB, heapSlots, stackSlots int) *VM {
	t.Helper()
	v, err := New(Options{HeapSlots: heapSlots, StackSlots: stackSlots})
	require.NoError(t, err)
	t.Cleanup(func() { _ = v.Close() })
	return v
}

// collectAndVerify runs a collection and checks every post-cycle invariant,
// including that the live region has no gaps.
func collectAndVerify(t testing.TB, v *VM) {
	t.Helper()
	v.Collect()
	require.NoError(t, verify.AllInvariants(v.Heap(), v.Roots(), v.Cursor()))
	require.NoError(t, verify.Compacted(v.Heap(), v.Roots(), v.Cursor()))
}

func mustPushInt(t testing.TB, v *VM, n int64) {
	t.Helper()
	_, err := v.PushInt(n)
	require.NoError(t, err)
}

func mustPushPair(t testing.TB, v *VM) {
	t.Helper()
	_, err := v.PushPair()
	require.NoError(t, err)
}
