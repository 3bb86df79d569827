package inline

import (
	"unsafe"

	"github.com/joshuapare/slotkit/internal/mem"
	"github.com/joshuapare/slotkit/storage"
)

// ElementHandle identifies the single slot of an inline Element. The slot
// position is implied; only the metadata travels with the handle.
type ElementHandle struct {
	meta storage.Metadata
}

// Element is a single inline slot sized and aligned for a fixed shape.
// There is no occupancy marker: with exactly one slot, correctness relies on
// the caller holding at most one live value at a time.
type Element struct {
	shape storage.Layout
	buf   []byte
}

// NewElement creates an element storage whose slot accepts any layout that
// fits shape.
func NewElement(shape storage.Layout) *Element {
	return &Element{shape: shape, buf: mem.AllocAligned(shape.Size, shape.Align)}
}

// NewElementOver lays the slot over a caller-provided region. The region
// must be at least shape.Size bytes and aligned to shape.Align.
func NewElementOver(buf []byte, shape storage.Layout) (*Element, error) {
	if len(buf) == 0 || uintptr(len(buf)) < shape.Size {
		return nil, storage.ErrAllocationFailed
	}
	if !mem.IsAligned(unsafe.Pointer(&buf[0]), shape.Align) {
		return nil, storage.ErrAllocationFailed
	}
	return &Element{shape: shape, buf: buf[:shape.Size:shape.Size]}, nil
}

// Allocate validates that the requested layout fits the slot's shape. It
// does not mark anything: the next Allocate simply reuses the same bytes.
func (e *Element) Allocate(layout storage.Layout, meta storage.Metadata) (ElementHandle, error) {
	if !layout.FitsIn(e.shape) {
		return ElementHandle{}, storage.ErrAllocationFailed
	}
	return ElementHandle{meta: meta}, nil
}

// Resolve returns the slot address.
func (e *Element) Resolve(h ElementHandle) unsafe.Pointer {
	return unsafe.Pointer(&e.buf[0])
}

// Meta returns the metadata captured at allocation or the last Retag.
func (e *Element) Meta(h ElementHandle) storage.Metadata {
	return h.meta
}

// Retag reinterprets the slot under new metadata.
func (e *Element) Retag(h ElementHandle, meta storage.Metadata) ElementHandle {
	return ElementHandle{meta: meta}
}

// Deallocate is a no-op: the slot is simply eligible for the next Allocate.
func (e *Element) Deallocate(h ElementHandle, layout storage.Layout) {}

var _ storage.ElementStorage[ElementHandle] = (*Element)(nil)
