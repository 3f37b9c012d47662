package printer

import (
	"fmt"
	"io"

	"golang.org/x/text/language"

	"github.com/joshuapare/gckit/heap"
)

const (
	DefaultIndentSize = 2
	DefaultMaxSlots   = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable listing.
	FormatText Format = "text"

	// FormatJSON outputs a single JSON document.
	FormatJSON Format = "json"
)

// Roots is the read-only root set view the printer needs.
type Roots interface {
	Len() int
	Root(i int) heap.Ref
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxSlots limits how many slots are listed (0 = all).
	// Default: 0
	MaxSlots int

	// ShowSlots lists every slot below the cursor.
	// Default: true
	ShowSlots bool

	// ShowRoots lists the root set.
	// Default: true
	ShowRoots bool

	// ShowForwarding includes the forwarding field of each slot.
	// Default: false
	ShowForwarding bool

	// Language selects digit grouping in the text summary.
	// Default: language.English
	Language language.Tag
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:         FormatText,
		IndentSize:     DefaultIndentSize,
		MaxSlots:       DefaultMaxSlots,
		ShowSlots:      true,
		ShowRoots:      true,
		ShowForwarding: false,
		Language:       language.English,
	}
}

// Printer renders heap contents.
type Printer struct {
	opts   Options
	writer io.Writer
	heap   *heap.Heap
	roots  Roots
	end    heap.Ref
}

// New creates a new Printer over the slots in [0, end).
//
// Example:
//
//	p := printer.New(v.Heap(), v.Roots(), v.Cursor(), os.Stdout, printer.DefaultOptions())
//	p.PrintHeap()
func New(h *heap.Heap, roots Roots, end heap.Ref, w io.Writer, opts Options) *Printer {
	return &Printer{
		heap:   h,
		roots:  roots,
		end:    end,
		writer: w,
		opts:   opts,
	}
}

// PrintHeap prints a summary line, the live slots and the roots.
func (p *Printer) PrintHeap() error {
	if p.heap.Closed() {
		return fmt.Errorf("print heap: %w", heap.ErrClosed)
	}
	switch p.opts.Format {
	case FormatJSON:
		return p.printHeapJSON()
	case FormatText:
		return p.printHeapText()
	default:
		return p.printHeapText()
	}
}

// limit returns how many slots to list.
func (p *Printer) limit() int {
	n := p.end.Slot()
	if p.opts.MaxSlots > 0 && p.opts.MaxSlots < n {
		return p.opts.MaxSlots
	}
	return n
}
