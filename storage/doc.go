// Package storage defines the contracts shared by all slotkit storage
// backends: raw, untyped space for a single value (ElementStorage) or for a
// resizable buffer of values (RangeStorage).
//
// # Overview
//
// A generic container owns one concrete storage instance and addresses its
// contents only through opaque handles returned by that storage. The storage
// alone knows how to turn a handle back into a raw view of memory. Backends
// are interchangeable: a container written against these contracts works
// unchanged whether its nodes live in an inline buffer, a tracked slot
// array, a general-purpose allocator, or a composite of those.
//
// # Contracts
//
// ElementStorage[H] manages single-value slots:
//
//   - Allocate(layout, meta): reserve uninitialized space for one value
//   - Resolve(h): raw address of the slot bytes
//   - Meta(h) / Retag(h, meta): read or reinterpret the stored metadata
//   - Deallocate(h, layout): release the slot (no destructor runs)
//
// RangeStorage[C, H] manages resizable buffers of capacity C:
//
//   - Allocate(elem, capacity) / Deallocate(h, elem)
//   - TryGrow / TryShrink: strictly monotonic capacity changes; a success
//     invalidates the old handle unconditionally
//   - MaximumCapacity(elem): largest capacity the backend could ever satisfy
//   - CapacityOf(h) / Resolve(h)
//
// Handles carry no lifetime: they are valid only for the storage instance
// that produced them, and only until that instance deallocates them,
// invalidates them through a successful grow or shrink, or is itself
// discarded. Using a stale handle is the caller's bug, not a recoverable
// condition.
//
// # Typed layer
//
// The interfaces above are untyped on purpose: Go methods cannot be generic
// per call, so the typed surface lives in package-level generic functions.
// Create, Get, Coerce, AllocateRange, View and friends reconstruct typed
// views from raw slot addresses and the metadata captured at allocation:
//
//	s := inline.NewTracking(storage.Of[uint32](), 16)
//	h, err := storage.Create(s, uint32(42))
//	v := storage.Get(s, h) // *uint32
//	storage.Deallocate(s, h)
//
// # Failure model
//
// Every fallible operation reports the single sentinel ErrAllocationFailed,
// meaning "no space, or this backend does not accept the requested shape".
// Callers, composites included, branch only on success or failure.
//
// # Thread safety
//
// No storage is safe for concurrent use. Exactly one mutator may act on an
// instance at a time; callers needing concurrency must serialize access
// externally or use one instance per goroutine.
package storage
