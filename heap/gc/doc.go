// Package gc implements a stop-the-world mark-compact (LISP2) collector over a
// heap.Heap.
//
// # Phases
//
// A cycle runs four passes over the heap, strictly in this order:
//
//  1. Mark: trace from every root with an explicit work-list, setting each
//     reached object's forwarding field to a non-Nil sentinel (its own
//     address). A set forwarding field is the visited guard, so cycles are
//     traced once.
//  2. Plan: walk [0, end) in address order, assigning each marked object the
//     next destination address. The final destination is the new cursor.
//  3. Fixup: rewrite every root and every field of every live pair to the
//     forwarding address of its target. This must happen before anything
//     moves, because it finds targets through their old addresses.
//  4. Compact: walk [0, end) in address order again, copying each live object
//     to its forwarding address and clearing the copy's forwarding field.
//     Destinations never exceed sources, so sliding in place is safe.
//
// # Roots
//
// The collector sees roots only through RootSet. Any ref not reachable from
// a root when Collect runs is reclaimed.
//
// # Thread Safety
//
// Collect must not run concurrently with any mutator operation on the same
// heap or root set.
package gc
