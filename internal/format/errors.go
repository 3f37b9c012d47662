package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a slot.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrMisaligned indicates an offset that does not start a slot.
	ErrMisaligned = errors.New("format: offset not slot aligned")
	// ErrBadKind indicates a slot whose kind tag is not a known object kind.
	ErrBadKind = errors.New("format: unknown object kind")
)
