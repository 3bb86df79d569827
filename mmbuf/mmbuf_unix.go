//go:build unix

package mmbuf

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Alloc maps an anonymous, zero-filled region of at least size bytes. The
// region is page-aligned, which satisfies any storage layout alignment.
func Alloc(size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("mmbuf: invalid region size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmbuf: mmap %d bytes: %w", size, err)
	}
	return &Region{data: data, unmap: func(b []byte) error { return unix.Munmap(b) }}, nil
}
