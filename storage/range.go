package storage

import "unsafe"

// RangeHandle is a typed range handle: a backend handle H bound to the
// element type E of the buffer it addresses.
type RangeHandle[E any, H any] struct {
	raw H
}

// Raw returns the backend handle.
func (h RangeHandle[E, H]) Raw() H {
	return h.raw
}

// AllocateRange reserves a buffer of capacity elements of type E. A zero
// capacity yields a dangling handle that never touched the backend.
func AllocateRange[E any, C Capacity, H any](s RangeStorage[C, H], capacity C) (RangeHandle[E, H], error) {
	raw, err := s.Allocate(Of[E](), capacity)
	if err != nil {
		return RangeHandle[E, H]{}, err
	}
	return RangeHandle[E, H]{raw: raw}, nil
}

// View reconstructs the buffer's slice view: up to CapacityOf slots, not
// necessarily initialized. Callers track their own logical length on top.
func View[E any, C Capacity, H any](s RangeStorage[C, H], h RangeHandle[E, H]) []E {
	n := CapacityToSize(s.CapacityOf(h.raw))
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*E)(s.Resolve(h.raw)), n)
}

// Grow resizes the buffer to newCapacity, strictly greater than the current
// capacity. On success the old handle is invalid regardless of whether the
// backend resized in place.
func Grow[E any, C Capacity, H any](s RangeStorage[C, H], h RangeHandle[E, H], newCapacity C) (RangeHandle[E, H], error) {
	raw, err := s.TryGrow(h.raw, Of[E](), newCapacity)
	if err != nil {
		return RangeHandle[E, H]{}, err
	}
	return RangeHandle[E, H]{raw: raw}, nil
}

// Shrink resizes the buffer to newCapacity, strictly less than the current
// capacity, with the same handle-invalidation rules as Grow.
func Shrink[E any, C Capacity, H any](s RangeStorage[C, H], h RangeHandle[E, H], newCapacity C) (RangeHandle[E, H], error) {
	raw, err := s.TryShrink(h.raw, Of[E](), newCapacity)
	if err != nil {
		return RangeHandle[E, H]{}, err
	}
	return RangeHandle[E, H]{raw: raw}, nil
}

// RangeCapacity returns the capacity the handle was produced with.
func RangeCapacity[E any, C Capacity, H any](s RangeStorage[C, H], h RangeHandle[E, H]) C {
	return s.CapacityOf(h.raw)
}

// DeallocateRange releases the buffer. A no-op for dangling handles.
func DeallocateRange[E any, C Capacity, H any](s RangeStorage[C, H], h RangeHandle[E, H]) {
	s.Deallocate(h.raw, Of[E]())
}

// MaximumRangeCapacity reports the largest capacity s could ever satisfy
// for element type E.
func MaximumRangeCapacity[E any, C Capacity, H any](s RangeStorage[C, H]) C {
	return s.MaximumCapacity(Of[E]())
}
