package heapalloc

import (
	"unsafe"

	"github.com/joshuapare/slotkit/internal/mem"
	"github.com/joshuapare/slotkit/storage"
)

// Heap allocates from the Go heap and pins every live buffer in a table so
// the garbage collector cannot reclaim memory that is still reachable only
// through raw pointers.
//
// Heap is not safe for concurrent use.
type Heap struct {
	live map[unsafe.Pointer][]byte
}

// New creates an empty heap allocator.
func New() *Heap {
	return &Heap{live: make(map[unsafe.Pointer][]byte)}
}

// Live returns the number of outstanding allocations.
func (h *Heap) Live() int {
	return len(h.live)
}

// Allocate returns a zeroed buffer satisfying the layout.
func (h *Heap) Allocate(layout storage.Layout) (unsafe.Pointer, error) {
	buf := mem.AllocAligned(layout.Size, layout.Align)
	p := unsafe.Pointer(&buf[0])
	h.live[p] = buf
	return p, nil
}

// Grow moves the buffer to a larger layout, preserving the old contents.
func (h *Heap) Grow(ptr unsafe.Pointer, old, new storage.Layout) (unsafe.Pointer, error) {
	if new.Size < old.Size {
		return nil, storage.ErrAllocationFailed
	}
	return h.relocate(ptr, old, new, old.Size)
}

// Shrink moves the buffer to a smaller layout, truncating the contents.
func (h *Heap) Shrink(ptr unsafe.Pointer, old, new storage.Layout) (unsafe.Pointer, error) {
	if new.Size > old.Size {
		return nil, storage.ErrAllocationFailed
	}
	return h.relocate(ptr, old, new, new.Size)
}

// Deallocate releases the buffer. The pointer must come from this
// allocator's Allocate, Grow or Shrink and must not have been released.
func (h *Heap) Deallocate(ptr unsafe.Pointer, layout storage.Layout) {
	if _, ok := h.live[ptr]; !ok {
		panic("heapalloc: deallocate of unknown pointer")
	}
	delete(h.live, ptr)
}

func (h *Heap) relocate(ptr unsafe.Pointer, old, new storage.Layout, copyBytes uintptr) (unsafe.Pointer, error) {
	if _, ok := h.live[ptr]; !ok {
		panic("heapalloc: resize of unknown pointer")
	}
	next, err := h.Allocate(new)
	if err != nil {
		return nil, err
	}
	mem.Copy(next, ptr, copyBytes)
	h.Deallocate(ptr, old)
	return next, nil
}

var _ storage.Allocator = (*Heap)(nil)
