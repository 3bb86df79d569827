//go:build !unix

package mmbuf

import "fmt"

// Alloc allocates the region from the Go heap when mmap is not available.
func Alloc(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmbuf: invalid region size %d", size)
	}
	return &Region{data: make([]byte, size), unmap: func([]byte) error { return nil }}, nil
}
