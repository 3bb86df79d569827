package allocator

import (
	"unsafe"

	"github.com/joshuapare/slotkit/storage"
)

// ElementHandle identifies one slot obtained from the wrapped allocator.
type ElementHandle struct {
	ptr  unsafe.Pointer
	meta storage.Metadata
}

// Element delegates every single-value slot to the wrapped allocator.
type Element struct {
	alloc storage.Allocator
}

// NewElement creates an element storage over alloc.
func NewElement(alloc storage.Allocator) *Element {
	return &Element{alloc: alloc}
}

// Allocate reserves uninitialized space for one value of the given layout.
func (e *Element) Allocate(layout storage.Layout, meta storage.Metadata) (ElementHandle, error) {
	ptr, err := e.alloc.Allocate(layout)
	if err != nil {
		return ElementHandle{}, err
	}
	return ElementHandle{ptr: ptr, meta: meta}, nil
}

// Resolve returns the slot address.
func (e *Element) Resolve(h ElementHandle) unsafe.Pointer {
	return h.ptr
}

// Meta returns the metadata captured at allocation or the last Retag.
func (e *Element) Meta(h ElementHandle) storage.Metadata {
	return h.meta
}

// Retag is identity on the address; only the metadata component changes.
func (e *Element) Retag(h ElementHandle, meta storage.Metadata) ElementHandle {
	return ElementHandle{ptr: h.ptr, meta: meta}
}

// Deallocate releases the slot back to the allocator. layout must be the
// shape the slot was allocated with.
func (e *Element) Deallocate(h ElementHandle, layout storage.Layout) {
	e.alloc.Deallocate(h.ptr, layout)
}

var _ storage.ElementStorage[ElementHandle] = (*Element)(nil)
