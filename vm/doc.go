// Package vm is the host-facing surface of the collector: a minimal virtual
// machine owning one heap, one root stack and one allocator.
//
// # Overview
//
// The VM supports two object kinds, boxed integers and pairs. Objects are
// created through the VM and kept alive only by being reachable from the
// root stack:
//
//	v, err := vm.New(vm.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer v.Close()
//
//	v.PushInt(1)
//	v.PushInt(2)
//	v.PushPair() // pops 2 and 1, pushes pair(1, 2)
//
//	v.Collect()
//	fmt.Println(v.LiveObjectCount()) // 3
//
// # Collection
//
// A full mark-compact cycle runs automatically when an allocation finds the
// heap full, and on demand through Collect. Collection moves objects: a Ref
// obtained before a cycle must be re-fetched from the root stack or a
// reachable field afterwards.
//
// # Errors
//
//   - alloc.ErrOutOfMemory: the heap is full of live data even after a
//     collection. The VM stays valid.
//   - ErrStackOverflow: the root stack is full. Nothing was changed.
//   - ErrStackUnderflow: too few roots for Pop or PushPair. Nothing was
//     changed.
//   - heap.ErrBadRef: Deref of a nil, misaligned or unallocated ref.
//
// # Thread Safety
//
// A VM is not safe for concurrent use.
package vm
