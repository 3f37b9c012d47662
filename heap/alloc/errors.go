package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the heap is full even after a forced collection.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrBadKind indicates a request for an unknown object kind.
	ErrBadKind = errors.New("alloc: unknown object kind")

	// ErrNilHeap indicates NewBump was given no heap.
	ErrNilHeap = errors.New("alloc: nil heap")
)
