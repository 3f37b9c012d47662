// Package verify checks heap invariants.
//
// These helpers are used in tests after every collection, and by the gcctl
// check command, to ensure the collector left the heap consistent.
//
// Checks:
//   - Cursor: the allocation cursor is slot aligned and within the arena
//   - Slots: every slot below the cursor holds a known object kind
//   - Forwarding: no forwarding field is set outside a collection
//   - References: every root and pair field is Nil or a valid ref below the cursor
//   - Compacted: every object below the cursor is reachable from the roots,
//     i.e. live data forms one gap-free run from the heap base
//
// All checks return *ValidationError on failure:
//
//	if err := verify.AllInvariants(h, roots, cursor); err != nil {
//	    var verr *verify.ValidationError
//	    if errors.As(err, &verr) {
//	        fmt.Printf("%s at 0x%X\n", verr.Type, verr.Offset)
//	    }
//	}
//
// AllInvariants does NOT run Compacted, because a heap is allowed to hold
// garbage between collections. Call it directly right after a collection.
package verify
