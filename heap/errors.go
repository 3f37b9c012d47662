package heap

import "errors"

var (
	// ErrBadRef indicates a ref that is out of bounds, misaligned, or above the
	// allocation cursor.
	ErrBadRef = errors.New("heap: bad object reference")

	// ErrKindMismatch indicates an Object accessor used on the wrong kind.
	ErrKindMismatch = errors.New("heap: object kind mismatch")

	// ErrClosed indicates use of a heap after Close.
	ErrClosed = errors.New("heap: closed")
)
