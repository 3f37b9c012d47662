package printer

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// jsonHeap is the top-level JSON document.
type jsonHeap struct {
	Slots    int        `json:"slots"`
	Capacity int        `json:"capacity_bytes"`
	Cursor   uint32     `json:"cursor"`
	Live     int        `json:"live"`
	Objects  []jsonSlot `json:"objects,omitempty"`
	Roots    []string   `json:"roots,omitempty"`
}

// jsonSlot represents one object slot.
type jsonSlot struct {
	Ref     string `json:"ref"`
	Kind    string `json:"kind"`
	Value   *int64 `json:"value,omitempty"`
	Head    string `json:"head,omitempty"`
	Tail    string `json:"tail,omitempty"`
	Forward string `json:"forward,omitempty"`
}

// printHeapJSON prints the heap as one indented JSON object.
func (p *Printer) printHeapJSON() error {
	doc := jsonHeap{
		Slots:    p.heap.Slots(),
		Capacity: p.heap.Capacity(),
		Cursor:   uint32(p.end),
		Live:     p.end.Slot(),
	}

	if p.opts.ShowSlots {
		it := p.heap.Iter(heap.RefAt(p.limit()))
		for {
			s, err := it.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}
			doc.Objects = append(doc.Objects, slotJSON(s, p.opts.ShowForwarding))
		}
	}

	if p.opts.ShowRoots && p.roots != nil {
		doc.Roots = make([]string, p.roots.Len())
		for i := range doc.Roots {
			doc.Roots[i] = p.roots.Root(i).String()
		}
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func slotJSON(s format.Slot, forwarding bool) jsonSlot {
	js := jsonSlot{
		Ref:  heap.Ref(s.Offset).String(),
		Kind: format.KindName(s.Kind),
	}
	switch s.Kind {
	case format.KindInt:
		v := s.Value
		js.Value = &v
	case format.KindPair:
		js.Head = heap.Ref(s.Head).String()
		js.Tail = heap.Ref(s.Tail).String()
	}
	if forwarding {
		js.Forward = heap.Ref(s.Forward).String()
	}
	return js
}
