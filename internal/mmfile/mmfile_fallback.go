//go:build !linux && !darwin

// Package mmfile provides platform-specific backing storage for heap arenas.
package mmfile

import "fmt"

// Anon allocates a zeroed Go slice when anonymous mmap is not available.
func Anon(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mmfile: invalid arena size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
