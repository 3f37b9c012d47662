// Package buf contains overflow-safe bounds helpers for slicing the heap arena.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative values, returning ok = false on
// overflow or when either operand is negative.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// ArenaSize returns count*slotSize, or an error when the product overflows or
// exceeds limit.
//
//	size, err := buf.ArenaSize(opts.HeapSlots, format.SlotSize, format.MaxHeapBytes)
//	if err != nil {
//	    return fmt.Errorf("heap: %w", err)
//	}
func ArenaSize(count, slotSize, limit int) (int, error) {
	if count <= 0 {
		return 0, fmt.Errorf("non-positive slot count: %d", count)
	}
	if slotSize <= 0 {
		return 0, fmt.Errorf("non-positive slot size: %d", slotSize)
	}
	size, ok := MulOverflowSafe(count, slotSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * slotSize=%d", count, slotSize)
	}
	if size > limit {
		return 0, fmt.Errorf("bounds: size=%d > limit=%d", size, limit)
	}
	return size, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b).
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(b) {
		return nil, false
	}
	return b[off:end], true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, ok := Slice(b, off, n)
	return ok
}
