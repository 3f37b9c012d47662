// Package alloc provides bump-pointer object allocation over a heap.Heap.
//
// # Overview
//
// BumpAllocator hands out one slot per object by advancing a single cursor.
// Everything below the cursor is allocated; everything at or above it is
// free. There is no free list: space is reclaimed only by a compacting
// collection, which slides live objects to the bottom of the arena and moves
// the cursor down.
//
// # Exhaustion
//
// When the next slot would not fit, Alloc runs the registered CollectFunc
// exactly once and rechecks. If the heap is still full it returns
// ErrOutOfMemory. The collection has already happened at that point, so the
// heap is valid, just full of live objects.
//
//	ba, err := alloc.NewBump(h, collect, logger)
//	if err != nil {
//	    return err
//	}
//	ref, err := ba.Alloc(heap.KindInt)
//	if errors.Is(err, alloc.ErrOutOfMemory) {
//	    // redesign with a larger heap
//	}
//
// # Anchoring
//
// A freshly allocated ref is not a root. The caller must store it on the root
// set or in a reachable pair before the next Alloc, or a collection triggered
// by that Alloc will reclaim it.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. Callers must synchronize access
// externally.
//
// # Related Packages
//
//   - github.com/joshuapare/gckit/heap: Arena and slot accessors
//   - github.com/joshuapare/gckit/heap/gc: The collector run on exhaustion
package alloc
