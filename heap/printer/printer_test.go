package printer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/joshuapare/gckit/heap"
)

type rootList []heap.Ref

func (r rootList) Len() int            { return len(r) }
func (r rootList) Root(i int) heap.Ref { return r[i] }

// newTestHeap builds int 42 at slot 0 and pair (42 . nil) at slot 1.
func newTestHeap(t *testing.T, slots int) (*heap.Heap, rootList, heap.Ref) {
	t.Helper()
	h, err := heap.New(slots)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })

	i := heap.RefAt(0)
	h.Init(i, heap.KindInt)
	h.SetInt(i, 42)

	p := heap.RefAt(1)
	h.Init(p, heap.KindPair)
	h.SetHead(p, i)

	return h, rootList{p, heap.Nil}, heap.RefAt(2)
}

func TestPrinter_Text(t *testing.T) {
	h, roots, end := newTestHeap(t, 4)

	var buf bytes.Buffer
	p := New(h, roots, end, &buf, DefaultOptions())
	require.NoError(t, p.PrintHeap())

	output := buf.String()
	t.Logf("Text output:\n%s", output)

	require.Contains(t, output, "heap: 2 live / 4 slots (32 / 64 bytes)")
	require.Contains(t, output, "@0x0000  int  42")
	require.Contains(t, output, "@0x0010  pair (@0x0000 . nil)")
	require.Contains(t, output, "roots (2):")
	require.Contains(t, output, "[0] @0x0010")
	require.Contains(t, output, "[1] nil")
	require.NotContains(t, output, "fwd=")
}

func TestPrinter_Text_GroupsDigits(t *testing.T) {
	h, roots, end := newTestHeap(t, 256)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Language = language.English
	require.NoError(t, New(h, roots, end, &buf, opts).PrintHeap())
	require.Contains(t, buf.String(), "4,096 bytes")
}

func TestPrinter_Text_Forwarding(t *testing.T) {
	h, roots, end := newTestHeap(t, 4)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowForwarding = true
	require.NoError(t, New(h, roots, end, &buf, opts).PrintHeap())
	require.Contains(t, buf.String(), "fwd=nil")
}

func TestPrinter_Text_MaxSlots(t *testing.T) {
	h, roots, end := newTestHeap(t, 4)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxSlots = 1
	opts.ShowRoots = false
	require.NoError(t, New(h, roots, end, &buf, opts).PrintHeap())

	output := buf.String()
	require.Contains(t, output, "@0x0000")
	require.NotContains(t, output, "@0x0010  pair")
	require.Contains(t, output, "... 1 more")
	require.NotContains(t, output, "roots")
}

func TestPrinter_JSON(t *testing.T) {
	h, roots, end := newTestHeap(t, 4)

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, New(h, roots, end, &buf, opts).PrintHeap())

	var doc jsonHeap
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, 4, doc.Slots)
	require.Equal(t, 64, doc.Capacity)
	require.Equal(t, uint32(32), doc.Cursor)
	require.Equal(t, 2, doc.Live)
	require.Len(t, doc.Objects, 2)

	require.Equal(t, "int", doc.Objects[0].Kind)
	require.NotNil(t, doc.Objects[0].Value)
	require.Equal(t, int64(42), *doc.Objects[0].Value)

	require.Equal(t, "pair", doc.Objects[1].Kind)
	require.Equal(t, "@0x0000", doc.Objects[1].Head)
	require.Equal(t, "nil", doc.Objects[1].Tail)

	require.Equal(t, []string{"@0x0010", "nil"}, doc.Roots)
}

func TestPrinter_ClosedHeap(t *testing.T) {
	h, roots, end := newTestHeap(t, 4)
	require.NoError(t, h.Close())

	var buf bytes.Buffer
	err := New(h, roots, end, &buf, DefaultOptions()).PrintHeap()
	require.ErrorIs(t, err, heap.ErrClosed)
}
