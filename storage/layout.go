package storage

import "unsafe"

// Layout describes the shape of a value: the number of bytes it occupies and
// the alignment its address must satisfy. Every operation that allocates or
// deallocates a slot must agree on the exact layout at both ends of the
// lifecycle; the typed layer guarantees this by always recomputing the
// layout from the metadata captured at allocation.
type Layout struct {
	Size  uintptr
	Align uintptr
}

// Of returns the layout of a statically sized value of type T.
func Of[T any]() Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero), Align: unsafe.Alignof(zero)}
}

// ArrayOf returns the layout of n contiguous values of type T.
func ArrayOf[T any](n uintptr) Layout {
	var zero T
	return Layout{Size: unsafe.Sizeof(zero) * n, Align: unsafe.Alignof(zero)}
}

// For returns the layout of a value of element type T whose dynamic part is
// described by meta: SizedMeta yields the plain layout of T, SliceMeta(n)
// the layout of n contiguous T.
func For[T any](meta Metadata) Layout {
	if meta.Sized() {
		return Of[T]()
	}
	return ArrayOf[T](meta.Length())
}

// FitsIn reports whether a value of layout l can live in a slot of layout
// outer: the slot must be at least as large and at least as aligned.
func (l Layout) FitsIn(outer Layout) bool {
	return l.Size <= outer.Size && l.Align <= outer.Align
}

// Metadata carries the information needed to rebuild a dynamically sized
// view from a raw slot address: for slice views, the element count. The
// storages store and forward metadata values; they never interpret them.
type Metadata struct {
	length uintptr
	slice  bool
}

// SizedMeta describes a plain, statically sized value.
func SizedMeta() Metadata {
	return Metadata{}
}

// SliceMeta describes a slice view of n elements.
func SliceMeta(n uintptr) Metadata {
	return Metadata{length: n, slice: true}
}

// Sized reports whether the metadata describes a statically sized value.
func (m Metadata) Sized() bool {
	return !m.slice
}

// Length returns the element count of a slice view, or 1 for a sized value.
func (m Metadata) Length() uintptr {
	if !m.slice {
		return 1
	}
	return m.length
}
