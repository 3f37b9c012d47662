package printer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// printHeapText prints the heap in human-readable text format.
func (p *Printer) printHeapText() error {
	mp := message.NewPrinter(p.opts.Language)
	indent := strings.Repeat(" ", p.opts.IndentSize)

	if _, err := mp.Fprintf(p.writer, "heap: %d live / %d slots (%d / %d bytes)\n",
		p.end.Slot(), p.heap.Slots(), int(p.end), p.heap.Capacity()); err != nil {
		return err
	}

	if p.opts.ShowSlots {
		n := p.limit()
		it := p.heap.Iter(heap.RefAt(n))
		for {
			s, err := it.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(p.writer, "%s%s\n", indent, slotText(s, p.opts.ShowForwarding))
		}
		if n < p.end.Slot() {
			mp.Fprintf(p.writer, "%s... %d more\n", indent, p.end.Slot()-n)
		}
	}

	if p.opts.ShowRoots && p.roots != nil {
		fmt.Fprintf(p.writer, "roots (%d):\n", p.roots.Len())
		// Top of stack first.
		for i := p.roots.Len() - 1; i >= 0; i-- {
			fmt.Fprintf(p.writer, "%s[%d] %s\n", indent, i, p.roots.Root(i))
		}
	}
	return nil
}

// slotText formats one decoded slot.
func slotText(s format.Slot, forwarding bool) string {
	ref := heap.Ref(s.Offset)
	var body string
	switch s.Kind {
	case format.KindInt:
		body = fmt.Sprintf("%-4s %d", format.KindName(s.Kind), s.Value)
	case format.KindPair:
		body = fmt.Sprintf("%-4s (%s . %s)", format.KindName(s.Kind), heap.Ref(s.Head), heap.Ref(s.Tail))
	default:
		body = format.KindName(s.Kind)
	}
	if forwarding {
		body += fmt.Sprintf("  fwd=%s", heap.Ref(s.Forward))
	}
	return fmt.Sprintf("%s  %s", ref, body)
}
