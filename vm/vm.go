package vm

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joshuapare/gckit/heap"
	"github.com/joshuapare/gckit/heap/alloc"
	"github.com/joshuapare/gckit/heap/gc"
	"github.com/joshuapare/gckit/internal/format"
)

// VM owns exactly one heap, one root stack and the allocator cursor.
type VM struct {
	heap  *heap.Heap
	stack *Stack
	alloc *alloc.BumpAllocator
	gc    *gc.Collector
	log   *slog.Logger

	reclaimed uint64
	last      gc.Cycle
}

// New creates a VM with an empty, preallocated heap and an empty stack.
func New(opts Options) (*VM, error) {
	opts = opts.withDefaults()
	if opts.StackSlots < 0 {
		return nil, fmt.Errorf("vm: negative stack capacity %d", opts.StackSlots)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	h, err := heap.New(opts.HeapSlots)
	if err != nil {
		return nil, fmt.Errorf("vm: %w", err)
	}

	v := &VM{
		heap:  h,
		stack: NewStack(opts.StackSlots),
		log:   logger,
	}
	v.gc = gc.New(h, v.stack, logger)
	v.alloc, err = alloc.NewBump(h, v.collectAt, logger)
	if err != nil {
		_ = h.Close()
		return nil, fmt.Errorf("vm: %w", err)
	}

	logger.Debug("vm created", "heap_slots", h.Slots(), "stack_slots", opts.StackSlots)
	return v, nil
}

// Close releases the heap. The VM is unusable afterwards.
func (v *VM) Close() error {
	if v.heap.Closed() {
		return nil
	}
	v.stack.refs = v.stack.refs[:0]
	return v.heap.Close()
}

// PushInt allocates an int holding value and pushes it onto the stack.
func (v *VM) PushInt(value int64) (heap.Ref, error) {
	if v.heap.Closed() {
		return heap.Nil, ErrClosed
	}
	// Fail before allocating so an overflow leaves nothing behind.
	if v.stack.Len() == v.stack.Cap() {
		return heap.Nil, fmt.Errorf("%w: capacity %d", ErrStackOverflow, v.stack.Cap())
	}
	ref, err := v.alloc.Alloc(heap.KindInt)
	if err != nil {
		return heap.Nil, err
	}
	v.heap.SetInt(ref, value)
	if err := v.stack.Push(ref); err != nil {
		return heap.Nil, err
	}
	return ref, nil
}

// PushPair allocates a pair, pops its tail and then its head from the stack,
// and pushes the pair.
func (v *VM) PushPair() (heap.Ref, error) {
	if v.heap.Closed() {
		return heap.Nil, ErrClosed
	}
	if v.stack.Len() < 2 {
		return heap.Nil, fmt.Errorf("%w: pair needs 2 operands, have %d", ErrStackUnderflow, v.stack.Len())
	}

	// Allocate before popping so a collection here still sees the operands
	// as roots.
	ref, err := v.alloc.Alloc(heap.KindPair)
	if err != nil {
		return heap.Nil, err
	}
	tail, _ := v.stack.Pop()
	head, _ := v.stack.Pop()
	v.heap.SetTail(ref, tail)
	v.heap.SetHead(ref, head)
	// Two pops just freed room.
	_ = v.stack.Push(ref)
	return ref, nil
}

// Push pushes an existing ref (or heap.Nil) onto the stack.
func (v *VM) Push(ref heap.Ref) error {
	if v.heap.Closed() {
		return ErrClosed
	}
	if !ref.IsNil() {
		if err := v.heap.Check(ref, v.alloc.Cursor()); err != nil {
			return err
		}
	}
	return v.stack.Push(ref)
}

// Pop removes and returns the top of the stack.
func (v *VM) Pop() (heap.Ref, error) {
	if v.heap.Closed() {
		return heap.Nil, ErrClosed
	}
	return v.stack.Pop()
}

// Peek returns the ref depth entries below the top of the stack.
func (v *VM) Peek(depth int) (heap.Ref, error) {
	if v.heap.Closed() {
		return heap.Nil, ErrClosed
	}
	return v.stack.Peek(depth)
}

// Deref returns a mutable view of the object at ref. The view must not be
// used across a collection.
func (v *VM) Deref(ref heap.Ref) (heap.Object, error) {
	if v.heap.Closed() {
		return heap.Object{}, ErrClosed
	}
	return v.heap.View(ref, v.alloc.Cursor())
}

// Collect forces a full collection and returns its statistics.
func (v *VM) Collect() gc.Cycle {
	if v.heap.Closed() {
		return gc.Cycle{}
	}
	v.alloc.Collect()
	return v.last
}

// LiveObjectCount returns the number of objects below the allocation cursor.
// Right after a collection this is exactly the number of live objects.
func (v *VM) LiveObjectCount() int {
	return v.alloc.Cursor().Slot()
}

// Stats returns a snapshot of VM counters.
func (v *VM) Stats() Stats {
	as := v.alloc.Stats()
	return Stats{
		Live:         v.LiveObjectCount(),
		HeapSlots:    v.heap.Slots(),
		FreeSlots:    v.alloc.Free() / format.SlotSize,
		StackDepth:   v.stack.Len(),
		Allocs:       as.Allocs,
		FailedAllocs: as.Failed,
		Collections:  v.gc.Cycles(),
		ForcedCycles: as.ForcedCycles,
		Reclaimed:    v.reclaimed,
		LastCycle:    v.last,
	}
}

// Heap exposes the underlying heap for inspection tools.
func (v *VM) Heap() *heap.Heap { return v.heap }

// Roots exposes the root stack for inspection tools.
func (v *VM) Roots() *Stack { return v.stack }

// Cursor returns the allocation cursor.
func (v *VM) Cursor() heap.Ref { return v.alloc.Cursor() }

// collectAt is the allocator's collection hook.
func (v *VM) collectAt(end heap.Ref) heap.Ref {
	next, cyc := v.gc.Collect(end)
	v.reclaimed += uint64(cyc.Reclaimed)
	v.last = cyc
	return next
}
