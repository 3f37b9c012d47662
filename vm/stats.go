package vm

import "github.com/joshuapare/gckit/heap/gc"

// Stats is a snapshot of VM activity since creation.
type Stats struct {
	Live         int    // objects below the cursor
	HeapSlots    int    // heap capacity in slots
	FreeSlots    int    // slots above the cursor
	StackDepth   int    // roots currently on the stack
	Allocs       uint64 // successful allocations
	FailedAllocs uint64 // allocations that ran out of memory
	Collections  uint64 // completed cycles, forced or explicit
	ForcedCycles uint64 // cycles triggered by heap exhaustion
	Reclaimed    uint64 // objects reclaimed over all cycles
	LastCycle    gc.Cycle
}
