package vm

import (
	"log/slog"

	"github.com/joshuapare/gckit/internal/format"
)

// Options controls VM construction.
type Options struct {
	// HeapSlots is the number of object slots in the heap.
	// Default: 256
	HeapSlots int

	// StackSlots is the capacity of the root stack.
	// Default: 256
	StackSlots int

	// Logger receives allocator and collector events at Debug and Warn.
	// Default: discard
	Logger *slog.Logger
}

// DefaultOptions returns the default heap and stack capacities.
func DefaultOptions() Options {
	return Options{
		HeapSlots:  format.DefaultHeapSlots,
		StackSlots: format.DefaultStackSlots,
	}
}

func (o Options) withDefaults() Options {
	if o.HeapSlots == 0 {
		o.HeapSlots = format.DefaultHeapSlots
	}
	if o.StackSlots == 0 {
		o.StackSlots = format.DefaultStackSlots
	}
	return o
}
