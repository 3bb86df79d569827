package allocator

import (
	"unsafe"

	"github.com/joshuapare/slotkit/storage"
)

// RangeHandle identifies one buffer obtained from the wrapped allocator. A
// zero-capacity handle is a dangling sentinel with no live allocation.
type RangeHandle struct {
	ptr unsafe.Pointer
	cap uintptr
}

// Range delegates resizable buffers to the wrapped allocator. Its capacity
// type is uintptr and its maximum capacity unbounded.
type Range struct {
	alloc storage.Allocator
}

// NewRange creates a range storage over alloc.
func NewRange(alloc storage.Allocator) *Range {
	return &Range{alloc: alloc}
}

// MaximumCapacity is unbounded for an allocator-backed range.
func (r *Range) MaximumCapacity(elem storage.Layout) uintptr {
	return ^uintptr(0)
}

// Allocate reserves capacity elements. A zero capacity never touches the
// allocator and yields the dangling sentinel.
func (r *Range) Allocate(elem storage.Layout, capacity uintptr) (RangeHandle, error) {
	if capacity == 0 {
		return RangeHandle{}, nil
	}
	layout, err := rangeLayout(elem, capacity)
	if err != nil {
		return RangeHandle{}, err
	}
	ptr, err := r.alloc.Allocate(layout)
	if err != nil {
		return RangeHandle{}, err
	}
	return RangeHandle{ptr: ptr, cap: capacity}, nil
}

// TryGrow resizes to newCapacity (strictly greater). Growing from zero is a
// fresh allocation; otherwise the allocator's resize capability is used.
func (r *Range) TryGrow(h RangeHandle, elem storage.Layout, newCapacity uintptr) (RangeHandle, error) {
	if newCapacity <= h.cap {
		return RangeHandle{}, storage.ErrAllocationFailed
	}
	if h.cap == 0 {
		return r.Allocate(elem, newCapacity)
	}
	oldLayout, err := rangeLayout(elem, h.cap)
	if err != nil {
		return RangeHandle{}, err
	}
	newLayout, err := rangeLayout(elem, newCapacity)
	if err != nil {
		return RangeHandle{}, err
	}
	ptr, err := r.alloc.Grow(h.ptr, oldLayout, newLayout)
	if err != nil {
		return RangeHandle{}, err
	}
	return RangeHandle{ptr: ptr, cap: newCapacity}, nil
}

// TryShrink resizes to newCapacity (strictly less). Shrinking to zero
// deallocates and returns the dangling sentinel.
func (r *Range) TryShrink(h RangeHandle, elem storage.Layout, newCapacity uintptr) (RangeHandle, error) {
	if h.cap == 0 || newCapacity >= h.cap {
		return RangeHandle{}, storage.ErrAllocationFailed
	}
	oldLayout, err := rangeLayout(elem, h.cap)
	if err != nil {
		return RangeHandle{}, err
	}
	if newCapacity == 0 {
		r.alloc.Deallocate(h.ptr, oldLayout)
		return RangeHandle{}, nil
	}
	newLayout, err := rangeLayout(elem, newCapacity)
	if err != nil {
		return RangeHandle{}, err
	}
	ptr, err := r.alloc.Shrink(h.ptr, oldLayout, newLayout)
	if err != nil {
		return RangeHandle{}, err
	}
	return RangeHandle{ptr: ptr, cap: newCapacity}, nil
}

// Resolve returns the buffer address; nil for the dangling sentinel.
func (r *Range) Resolve(h RangeHandle) unsafe.Pointer {
	return h.ptr
}

// CapacityOf returns the capacity the handle was produced with.
func (r *Range) CapacityOf(h RangeHandle) uintptr {
	return h.cap
}

// Deallocate releases the buffer. A safe no-op for the dangling sentinel.
func (r *Range) Deallocate(h RangeHandle, elem storage.Layout) {
	if h.cap == 0 {
		return
	}
	layout, err := rangeLayout(elem, h.cap)
	if err != nil {
		return
	}
	r.alloc.Deallocate(h.ptr, layout)
}

// rangeLayout computes the layout of capacity contiguous elements, failing
// when the byte size overflows.
func rangeLayout(elem storage.Layout, capacity uintptr) (storage.Layout, error) {
	if elem.Size != 0 && capacity > ^uintptr(0)/elem.Size {
		return storage.Layout{}, storage.ErrAllocationFailed
	}
	return storage.Layout{Size: elem.Size * capacity, Align: elem.Align}, nil
}

var _ storage.RangeStorage[uintptr, RangeHandle] = (*Range)(nil)
