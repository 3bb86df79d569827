package allocator

import "github.com/joshuapare/slotkit/storage"

// Builder converts between an allocator and the storages built from it,
// letting a composite materialize a fresh allocator-backed storage without
// knowing its construction details.
type Builder struct {
	Allocator storage.Allocator
}

// Build materializes a fresh element storage over the wrapped allocator.
func (b Builder) Build() storage.ElementStorage[ElementHandle] {
	return NewElement(b.Allocator)
}

// Unwrap returns the allocator an element storage was built from.
func (b Builder) Unwrap(e *Element) storage.Allocator {
	return e.alloc
}

// BuildRange materializes a fresh range storage over the wrapped allocator.
func (b Builder) BuildRange() storage.RangeStorage[uintptr, RangeHandle] {
	return NewRange(b.Allocator)
}
