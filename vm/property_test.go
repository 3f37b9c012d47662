package vm

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/heap/alloc"
	"github.com/joshuapare/gckit/heap/verify"
)

// shape renders the object graph reachable from the roots without mentioning
// any address, so it is unchanged by a correct compaction. Revisited objects
// render as #n, where n is their first-visit index.
func shape(v *VM) (string, int) {
	h := v.Heap()
	ids := make(map[heap.Ref]int)
	var sb strings.Builder

	var walk func(r heap.Ref)
	walk = func(r heap.Ref) {
		if r.IsNil() {
			sb.WriteString("nil")
			return
		}
		if id, ok := ids[r]; ok {
			fmt.Fprintf(&sb, "#%d", id)
			return
		}
		ids[r] = len(ids)
		switch h.Kind(r) {
		case heap.KindInt:
			fmt.Fprintf(&sb, "%d", h.Int(r))
		case heap.KindPair:
			sb.WriteString("(")
			walk(h.Head(r))
			sb.WriteString(" . ")
			walk(h.Tail(r))
			sb.WriteString(")")
		}
	}

	for i := 0; i < v.Roots().Len(); i++ {
		walk(v.Roots().Root(i))
		sb.WriteString(" | ")
	}
	return sb.String(), len(ids)
}

// step applies one mutator operation chosen by op. Expected failures
// (overflow, underflow, out of memory) are tolerated.
func step(t testing.TB, v *VM, op byte, arg int) {
	t.Helper()
	var err error
	switch op % 6 {
	case 0, 1:
		_, err = v.PushInt(int64(arg))
	case 2:
		_, err = v.PushPair()
	case 3:
		_, err = v.Pop()
	case 4:
		// Point a pair root's head or tail at another root. This is how
		// cycles get in.
		n := v.Roots().Len()
		if n == 0 {
			return
		}
		dst := v.Roots().Root(arg % n)
		src := v.Roots().Root((arg / 2) % n)
		if dst.IsNil() {
			return
		}
		obj, derr := v.Deref(dst)
		require.NoError(t, derr)
		if obj.Kind() != heap.KindPair {
			return
		}
		if arg%2 == 0 {
			err = obj.SetHead(src)
		} else {
			err = obj.SetTail(src)
		}
		require.NoError(t, err)
	case 5:
		before, reachable := shape(v)
		v.Collect()
		after, _ := shape(v)
		require.Equal(t, before, after, "collection changed the object graph")
		require.Equal(t, reachable, v.LiveObjectCount(), "live count must equal reachable count")
		require.NoError(t, verify.Compacted(v.Heap(), v.Roots(), v.Cursor()))
	}

	switch {
	case err == nil,
		errors.Is(err, ErrStackOverflow),
		errors.Is(err, ErrStackUnderflow),
		errors.Is(err, alloc.ErrOutOfMemory):
	default:
		require.NoError(t, err)
	}
	require.NoError(t, verify.AllInvariants(v.Heap(), v.Roots(), v.Cursor()))
}

// TestProperty_RandomMutatorPreservesGraph drives random operations and checks
// that every collection preserves the reachable graph exactly.
func TestProperty_RandomMutatorPreservesGraph(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1337} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewSource(seed)) // Fixed seed for reproducibility
			v := newTestVM(t, 32, 24)
			for range 2000 {
				step(t, v, byte(rng.Intn(256)), rng.Intn(1000))
			}
		})
	}
}

// FuzzMutatorOps interprets the input as a sequence of (op, arg) byte pairs.
func FuzzMutatorOps(f *testing.F) {
	f.Add([]byte{0, 1, 0, 2, 2, 0, 5, 0})
	f.Add([]byte{0, 1, 0, 2, 2, 0, 0, 3, 0, 4, 2, 0, 4, 3, 4, 0, 5, 0})
	f.Add([]byte{0, 9, 3, 0, 3, 0, 5, 0, 0, 1})

	f.Fuzz(func(t *testing.T, data []byte) {
		v := newTestVM(t, 8, 6)
		for i := 0; i+1 < len(data); i += 2 {
			step(t, v, data[i], int(data[i+1]))
		}
		step(t, v, 5, 0)
	})
}
