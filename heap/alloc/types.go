package alloc

import "github.com/joshuapare/gckit/heap"

// CollectFunc runs a full collection over [0, end) and returns the new
// allocation cursor.
type CollectFunc func(end heap.Ref) heap.Ref

// Allocator defines the interface for object allocation.
//
// Implementations:
//   - BumpAllocator: cursor-based allocator with collect-on-exhaustion
type Allocator interface {
	// Alloc allocates and initialises one object of the given kind.
	Alloc(k heap.Kind) (heap.Ref, error)

	// Cursor returns the first free address.
	Cursor() heap.Ref

	// Collect forces a collection and moves the cursor to its result.
	Collect()
}

// Stats counts allocator activity since creation.
type Stats struct {
	Allocs       uint64 // successful allocations
	Failed       uint64 // allocations that returned ErrOutOfMemory
	ForcedCycles uint64 // collections triggered by exhaustion
}
