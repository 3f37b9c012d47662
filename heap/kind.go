package heap

import "github.com/joshuapare/gckit/internal/format"

// Kind identifies the type of object stored in a slot.
type Kind uint8

const (
	KindInt  Kind = format.KindInt
	KindPair Kind = format.KindPair
)

// Valid reports whether k is an allocatable object kind.
func (k Kind) Valid() bool { return k == KindInt || k == KindPair }

func (k Kind) String() string { return format.KindName(uint8(k)) }
