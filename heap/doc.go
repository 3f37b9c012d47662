// Package heap provides the fixed-capacity object arena managed by the
// collector.
//
// # Overview
//
// A Heap is a contiguous byte arena divided into equal-size slots
// (format.SlotSize bytes each). Every object, whether a boxed integer or a
// pair, occupies exactly one slot and is addressed by its byte offset from
// the arena base. Addresses are represented by Ref; Nil means "no
// reference".
//
// # Slot Layout
//
//	0x00  kind tag (int, pair)
//	0x04  forwarding field (Nil outside a collection cycle)
//	0x08  int value, or pair head
//	0x0C  pair tail
//
// The forwarding field is collector-private state. The mark pass sets it to a
// non-Nil sentinel, the planning pass overwrites it with the object's
// post-compaction address, and the compactor clears it on the moved copy.
//
// # Storage
//
// On Linux and macOS the arena is an anonymous private mapping obtained with
// mmap and released with munmap by Close. On other platforms it is an
// ordinary Go slice.
//
//	h, err := heap.New(256)
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//
// # Validation
//
// The raw accessors (Kind, Head, SetTail, ...) assume a valid Ref and are used
// on the collector's hot path. Code handling refs from outside should go
// through Check, or through the Object view which validates on every
// mutation.
//
// # Thread Safety
//
// A Heap is not safe for concurrent use. It is owned by exactly one VM.
package heap
