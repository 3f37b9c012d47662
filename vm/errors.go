package vm

import "errors"

var (
	// ErrStackOverflow indicates a push onto a full root stack.
	ErrStackOverflow = errors.New("vm: stack overflow")

	// ErrStackUnderflow indicates a pop from a root stack with too few entries.
	ErrStackUnderflow = errors.New("vm: stack underflow")

	// ErrClosed indicates use of a VM after Close.
	ErrClosed = errors.New("vm: closed")
)
