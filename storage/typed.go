package storage

import "unsafe"

// Handle is a typed element handle: a backend handle H bound to the element
// type T it addresses. Handles are small values; copying one never copies
// the stored bytes.
type Handle[T any, H any] struct {
	raw H
}

// Raw returns the backend handle.
func (h Handle[T, H]) Raw() H {
	return h.raw
}

// SliceHandle addresses a slice view of E elements inside a single-value
// slot, produced by Coerce or AllocateSlice.
type SliceHandle[E any, H any] struct {
	raw H
}

// Raw returns the backend handle.
func (h SliceHandle[E, H]) Raw() H {
	return h.raw
}

// Allocate reserves an uninitialized slot for one T. The caller must write
// a value through Get before reading it back.
func Allocate[T any, H any](s ElementStorage[H]) (Handle[T, H], error) {
	raw, err := s.Allocate(Of[T](), SizedMeta())
	if err != nil {
		return Handle[T, H]{}, err
	}
	return Handle[T, H]{raw: raw}, nil
}

// Create allocates a slot for one T and stores value in it. On failure the
// storage is left exactly as it was and the caller's value is untouched, so
// a retry against another backend loses nothing.
func Create[T any, H any](s ElementStorage[H], value T) (Handle[T, H], error) {
	raw, err := s.Allocate(Of[T](), SizedMeta())
	if err != nil {
		return Handle[T, H]{}, err
	}
	*(*T)(s.Resolve(raw)) = value
	return Handle[T, H]{raw: raw}, nil
}

// Get reconstructs a typed pointer from a handle. The pointer is valid only
// while the handle is.
func Get[T any, H any](s ElementStorage[H], h Handle[T, H]) *T {
	return (*T)(s.Resolve(h.raw))
}

// Deallocate releases the slot behind h. The stored value is not finalized
// in any way; the storage only reclaims raw space.
func Deallocate[T any, H any](s ElementStorage[H], h Handle[T, H]) {
	s.Deallocate(h.raw, Of[T]())
}

// AllocateSlice reserves a slot for n contiguous E, capturing the count as
// the handle's metadata.
func AllocateSlice[E any, H any](s ElementStorage[H], n uintptr) (SliceHandle[E, H], error) {
	raw, err := s.Allocate(ArrayOf[E](n), SliceMeta(n))
	if err != nil {
		return SliceHandle[E, H]{}, err
	}
	return SliceHandle[E, H]{raw: raw}, nil
}

// GetSlice reconstructs the slice view from a handle and its metadata.
func GetSlice[E any, H any](s ElementStorage[H], h SliceHandle[E, H]) []E {
	n := s.Meta(h.raw).Length()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*E)(s.Resolve(h.raw)), n)
}

// DeallocateSlice releases the slot behind a coerced or slice-allocated
// handle, recomputing the layout from the stored metadata.
func DeallocateSlice[E any, H any](s ElementStorage[H], h SliceHandle[E, H]) {
	s.Deallocate(h.raw, ArrayOf[E](s.Meta(h.raw).Length()))
}

// Coerce reinterprets a handle for a statically sized T as a handle for a
// slice of E covering the same bytes, e.g. a [2]byte slot viewed as []byte.
// The slot does not move; only the handle's metadata changes. T's size must
// be a whole multiple of E's.
func Coerce[E any, T any, H any](s ElementStorage[H], h Handle[T, H]) SliceHandle[E, H] {
	var t T
	var e E
	n := unsafe.Sizeof(t) / unsafe.Sizeof(e)
	return SliceHandle[E, H]{raw: s.Retag(h.raw, SliceMeta(n))}
}
