package gc

import "github.com/joshuapare/gckit/heap"

// RootSet is the collector's view of the mutator's roots. Entries may be
// heap.Nil. Fixup rewrites entries in place through SetRoot.
type RootSet interface {
	Len() int
	Root(i int) heap.Ref
	SetRoot(i int, r heap.Ref)
}
