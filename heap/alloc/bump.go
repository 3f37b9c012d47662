package alloc

import (
	"io"
	"log/slog"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/internal/format"
)

// BumpAllocator is an O(1) cursor allocator. Every allocation is one slot;
// the cursor only moves down when a collection compacts the heap.
type BumpAllocator struct {
	h       *heap.Heap
	collect CollectFunc
	log     *slog.Logger

	// cursor is the bump pointer: the address where the next allocation
	// will occur. Slots in [0, cursor) hold objects.
	cursor heap.Ref

	stats Stats
}

// NewBump creates a BumpAllocator with an empty heap.
//
// Parameters:
//   - h: The heap to allocate from
//   - collect: Collection hook run on exhaustion (nil disables collection)
//   - logger: Destination for allocator events (nil discards)
func NewBump(h *heap.Heap, collect CollectFunc, logger *slog.Logger) (*BumpAllocator, error) {
	if h == nil {
		return nil, ErrNilHeap
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &BumpAllocator{
		h:       h,
		collect: collect,
		log:     logger,
		cursor:  0,
	}, nil
}

// Alloc allocates a slot for an object of kind k.
func (ba *BumpAllocator) Alloc(k heap.Kind) (heap.Ref, error) {
	if !k.Valid() {
		return heap.Nil, ErrBadKind
	}

	if !ba.fits() {
		if ba.collect != nil {
			ba.log.Debug("heap exhausted, collecting", "cursor", ba.cursor, "capacity", ba.h.Capacity())
			ba.stats.ForcedCycles++
			ba.cursor = ba.collect(ba.cursor)
		}
		// If there still isn't room after collection, we can't fit it.
		if !ba.fits() {
			ba.stats.Failed++
			ba.log.Warn("out of memory", "kind", k, "live", ba.cursor.Slot(), "slots", ba.h.Slots())
			return heap.Nil, ErrOutOfMemory
		}
	}

	ref := ba.cursor
	ba.h.Init(ref, k)
	ba.cursor += format.SlotSize
	ba.stats.Allocs++
	return ref, nil
}

// Collect runs the collection hook and moves the cursor to its result.
func (ba *BumpAllocator) Collect() {
	if ba.collect == nil {
		return
	}
	ba.cursor = ba.collect(ba.cursor)
}

// Cursor returns the current bump pointer.
func (ba *BumpAllocator) Cursor() heap.Ref { return ba.cursor }

// Free returns the number of unallocated bytes above the cursor.
func (ba *BumpAllocator) Free() int { return ba.h.Capacity() - int(ba.cursor) }

// Stats returns allocation counters.
func (ba *BumpAllocator) Stats() Stats { return ba.stats }

func (ba *BumpAllocator) fits() bool {
	return int(ba.cursor)+format.SlotSize <= ba.h.Capacity()
}

// Compile-time interface check
var _ Allocator = (*BumpAllocator)(nil)
