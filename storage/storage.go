package storage

import "unsafe"

// ElementStorage is the single-slot storage contract. H is the backend's
// handle type: one handle family per backend, opaque to callers.
//
// The methods are the untyped backend SPI; the typed surface (Create, Get,
// Coerce, ...) lives in the package-level generic functions, which compute
// layouts from element types and forward them here.
type ElementStorage[H any] interface {
	// Allocate reserves uninitialized space for a value of the given
	// layout, capturing meta for later reconstruction. Fails with
	// ErrAllocationFailed when the backend has no room or does not accept
	// the shape.
	Allocate(layout Layout, meta Metadata) (H, error)

	// Resolve returns the address of the slot's bytes. The address is
	// valid only while the handle is.
	Resolve(h H) unsafe.Pointer

	// Meta returns the metadata captured when the handle was produced.
	Meta(h H) Metadata

	// Retag returns a handle addressing the same slot under different
	// metadata. The slot bytes are not moved or copied.
	Retag(h H, meta Metadata) H

	// Deallocate releases the slot. The layout must match the one used to
	// allocate; no destructor runs, the storage only manages raw space.
	Deallocate(h H, layout Layout)
}

// RangeStorage is the resizable-buffer storage contract: a handle addresses
// up to CapacityOf(h) uninitialized element slots. C is the backend's
// capacity type, H its handle type.
type RangeStorage[C Capacity, H any] interface {
	// MaximumCapacity reports the largest capacity this backend could ever
	// satisfy for the given element layout. Composites use it to reason
	// about routing; it does not promise any particular Allocate succeeds.
	MaximumCapacity(elem Layout) C

	// Allocate reserves space for capacity elements of the given layout.
	// A zero capacity yields a dangling handle without any live
	// allocation.
	Allocate(elem Layout, capacity C) (H, error)

	// TryGrow resizes the buffer to newCapacity, which must be strictly
	// greater than CapacityOf(h). On success the returned handle replaces
	// h; the old handle must be discarded whether or not the bit pattern
	// changed. The first CapacityOf(h) elements are preserved.
	TryGrow(h H, elem Layout, newCapacity C) (H, error)

	// TryShrink resizes the buffer to newCapacity, which must be strictly
	// less than CapacityOf(h). Same handle-invalidation rules as TryGrow;
	// the first newCapacity elements are preserved.
	TryShrink(h H, elem Layout, newCapacity C) (H, error)

	// Resolve returns the address of the first element slot. nil for
	// zero-capacity handles.
	Resolve(h H) unsafe.Pointer

	// CapacityOf returns the capacity the handle was produced with.
	CapacityOf(h H) C

	// Deallocate releases the buffer. A no-op for zero-capacity handles.
	Deallocate(h H, elem Layout)
}

// Allocator is the general-purpose allocation capability wrapped by the
// allocator-backed storages. Implementations must be safe to call from a
// single goroutine at a time; nothing more is assumed.
type Allocator interface {
	// Allocate returns uninitialized memory for the given layout, or
	// ErrAllocationFailed.
	Allocate(layout Layout) (unsafe.Pointer, error)

	// Grow resizes an allocation from old to new (new.Size > old.Size).
	// The returned pointer may equal ptr (in-place growth) or not; either
	// way the old pointer is invalid after success. The old contents are
	// preserved up to old.Size bytes.
	Grow(ptr unsafe.Pointer, old, new Layout) (unsafe.Pointer, error)

	// Shrink resizes an allocation from old to new (new.Size < old.Size),
	// with the same pointer rules as Grow.
	Shrink(ptr unsafe.Pointer, old, new Layout) (unsafe.Pointer, error)

	// Deallocate releases an allocation. The layout must match the one the
	// memory was last allocated or resized with.
	Deallocate(ptr unsafe.Pointer, layout Layout)
}
