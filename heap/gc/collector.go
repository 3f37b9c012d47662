package gc

import (
	"io"
	"log/slog"
	"time"

	"github.com/joshuapare/gckit/heap"
)

// Cycle describes one completed collection.
type Cycle struct {
	Seq       uint64        // 1-based cycle number
	Before    int           // objects below the cursor on entry
	Marked    int           // objects reached from the roots
	After     int           // objects below the cursor on exit
	Reclaimed int           // Before - After
	Duration  time.Duration // wall time of the cycle
}

// Collector runs mark-compact cycles over one heap and one root set.
type Collector struct {
	h     *heap.Heap
	roots RootSet
	log   *slog.Logger

	// work is the mark work-list, kept between cycles to avoid reallocating.
	work []heap.Ref
	seq  uint64
}

// New creates a collector. A nil logger discards output.
func New(h *heap.Heap, roots RootSet, logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Collector{h: h, roots: roots, log: logger}
}

// Collect performs a full cycle over [0, end) and returns the new allocation
// cursor.
func (c *Collector) Collect(end heap.Ref) (heap.Ref, Cycle) {
	start := time.Now()
	c.seq++

	// Find out which objects are still in use.
	marked := c.markAll()
	// Determine where they will end up.
	next := c.calculateNewLocations(end)
	// Fix the references to them.
	c.updateAllObjectPointers(end)
	// Compact the memory.
	c.compact(end)

	cyc := Cycle{
		Seq:       c.seq,
		Before:    end.Slot(),
		Marked:    marked,
		After:     next.Slot(),
		Reclaimed: end.Slot() - next.Slot(),
		Duration:  time.Since(start),
	}
	c.log.Debug("gc cycle",
		"seq", cyc.Seq,
		"before", cyc.Before,
		"after", cyc.After,
		"reclaimed", cyc.Reclaimed,
		"marked", cyc.Marked,
		"duration", cyc.Duration,
	)
	return next, cyc
}

// Cycles returns the number of cycles run so far.
func (c *Collector) Cycles() uint64 { return c.seq }
