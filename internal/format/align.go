package format

// IsSlotAligned reports whether off falls on a slot boundary.
func IsSlotAligned(off int) bool {
	return off&SlotAlignmentMask == 0
}
