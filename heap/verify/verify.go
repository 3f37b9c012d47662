package verify

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// Roots is the read-only view of a root set the checks need.
type Roots interface {
	Len() int
	Root(i int) heap.Ref
}

// ValidationError describes one invariant violation.
type ValidationError struct {
	Type    string
	Message string
	Offset  int
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates every invariant that must hold between collections.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(h *heap.Heap, roots Roots, end heap.Ref) error {
	if err := Cursor(h, end); err != nil {
		return err
	}
	if err := Slots(h, end); err != nil {
		return err
	}
	if err := Forwarding(h, end); err != nil {
		return err
	}
	return References(h, roots, end)
}

// Cursor validates the allocation cursor itself.
func Cursor(h *heap.Heap, end heap.Ref) error {
	if h.Closed() {
		return &ValidationError{Type: "Cursor", Message: "heap is closed", Offset: -1}
	}
	if !format.IsSlotAligned(int(end)) {
		return &ValidationError{
			Type:    "Cursor",
			Message: fmt.Sprintf("cursor %s not slot aligned", end),
			Offset:  int(end),
		}
	}
	if int(end) > h.Capacity() {
		return &ValidationError{
			Type:    "Cursor",
			Message: fmt.Sprintf("cursor %s beyond capacity 0x%X", end, h.Capacity()),
			Offset:  int(end),
			Details: map[string]interface{}{
				"cursor":   int(end),
				"capacity": h.Capacity(),
			},
		}
	}
	return nil
}

// Slots validates that every slot below the cursor decodes as an object.
func Slots(h *heap.Heap, end heap.Ref) error {
	it := h.Iter(end)
	for {
		s, err := it.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &ValidationError{
				Type:    "Slots",
				Message: err.Error(),
				Offset:  s.Offset,
				Details: map[string]interface{}{"kind": s.Kind},
			}
		}
	}
}

// Forwarding validates that no object below the cursor is still marked.
func Forwarding(h *heap.Heap, end heap.Ref) error {
	for r := heap.Ref(0); r < end; r += format.SlotSize {
		if fwd := h.Forward(r); !fwd.IsNil() {
			return &ValidationError{
				Type:    "Forwarding",
				Message: fmt.Sprintf("forwarding field set to %s outside collection", fwd),
				Offset:  int(r),
				Details: map[string]interface{}{"forward": uint32(fwd)},
			}
		}
	}
	return nil
}

// References validates every root and every pair field below the cursor.
func References(h *heap.Heap, roots Roots, end heap.Ref) error {
	for i := 0; i < roots.Len(); i++ {
		r := roots.Root(i)
		if r.IsNil() {
			continue
		}
		if err := h.Check(r, end); err != nil {
			return &ValidationError{
				Type:    "References",
				Message: fmt.Sprintf("root %d: %v", i, err),
				Offset:  -1,
				Details: map[string]interface{}{"root": i, "ref": uint32(r)},
			}
		}
	}

	for r := heap.Ref(0); r < end; r += format.SlotSize {
		if h.Kind(r) != heap.KindPair {
			continue
		}
		for _, f := range []struct {
			name string
			ref  heap.Ref
		}{{"head", h.Head(r)}, {"tail", h.Tail(r)}} {
			if f.ref.IsNil() {
				continue
			}
			if err := h.Check(f.ref, end); err != nil {
				return &ValidationError{
					Type:    "References",
					Message: fmt.Sprintf("pair %s: %v", f.name, err),
					Offset:  int(r),
					Details: map[string]interface{}{"field": f.name, "ref": uint32(f.ref)},
				}
			}
		}
	}
	return nil
}

// Compacted validates that every object below the cursor is reachable from
// the roots. This holds immediately after a collection and may be false at
// any other time. Call References first: Compacted assumes valid refs.
func Compacted(h *heap.Heap, roots Roots, end heap.Ref) error {
	n := end.Slot()
	seen := make([]bool, n)
	var work []heap.Ref

	for i := 0; i < roots.Len(); i++ {
		if r := roots.Root(i); !r.IsNil() {
			work = append(work, r)
		}
	}
	for len(work) > 0 {
		r := work[len(work)-1]
		work = work[:len(work)-1]
		if seen[r.Slot()] {
			continue
		}
		seen[r.Slot()] = true
		if h.Kind(r) == heap.KindPair {
			if hd := h.Head(r); !hd.IsNil() {
				work = append(work, hd)
			}
			if tl := h.Tail(r); !tl.IsNil() {
				work = append(work, tl)
			}
		}
	}

	for i, ok := range seen {
		if !ok {
			return &ValidationError{
				Type:    "Compacted",
				Message: fmt.Sprintf("unreachable object below cursor %s", end),
				Offset:  int(heap.RefAt(i)),
				Details: map[string]interface{}{"slot": i},
			}
		}
	}
	return nil
}
