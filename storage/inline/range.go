package inline

import (
	"unsafe"

	"github.com/joshuapare/slotkit/internal/mem"
	"github.com/joshuapare/slotkit/storage"
)

// RangeHandle identifies the single fixed buffer of an inline Range,
// recording the capacity it was handed out with (always the entire array,
// measured in the requested element type).
type RangeHandle[C storage.Capacity] struct {
	cap C
}

// Range is a fixed array of slots of a construction-time shape. Allocate
// validates the request and then unconditionally hands out the whole array;
// callers wanting partial use track their own logical length on top. The
// capacity is fixed by construction, so grow and shrink always fail.
type Range[C storage.Capacity] struct {
	shape storage.Layout
	slots uintptr
	buf   []byte
}

// NewRange creates a range storage of slots fixed-size slots of the given
// shape.
func NewRange[C storage.Capacity](shape storage.Layout, slots int) *Range[C] {
	n := uintptr(slots)
	return &Range[C]{
		shape: shape,
		slots: n,
		buf:   mem.AllocAligned(shape.Size*n, shape.Align),
	}
}

// NewRangeOver lays the array over a caller-provided region, which must be
// large and aligned enough for slots slots of the given shape.
func NewRangeOver[C storage.Capacity](buf []byte, shape storage.Layout, slots int) (*Range[C], error) {
	n := uintptr(slots)
	size := shape.Size * n
	if len(buf) == 0 || uintptr(len(buf)) < size {
		return nil, storage.ErrAllocationFailed
	}
	if !mem.IsAligned(unsafe.Pointer(&buf[0]), shape.Align) {
		return nil, storage.ErrAllocationFailed
	}
	return &Range[C]{shape: shape, slots: n, buf: buf[:size:size]}, nil
}

// MaximumCapacity scales the fixed slot count into elements of the given
// layout, clamped to what C can represent.
func (r *Range[C]) MaximumCapacity(elem storage.Layout) C {
	capacity := r.slots
	if m := uintptr(storage.MaxCapacity[C]()); capacity > m {
		capacity = m
	}
	if elem.Size == 0 {
		return C(capacity)
	}
	if scaled, ok := storage.CapacityFromSize[C](r.shape.Size * capacity / elem.Size); ok {
		return scaled
	}
	return C(capacity)
}

// Allocate validates that capacity elements of the given layout fit the
// fixed array, then returns a handle describing the entire array length,
// not the requested capacity.
func (r *Range[C]) Allocate(elem storage.Layout, capacity C) (RangeHandle[C], error) {
	n := storage.CapacityToSize(capacity)
	if elem.Size != 0 && n > ^uintptr(0)/elem.Size {
		return RangeHandle[C]{}, storage.ErrAllocationFailed
	}
	need := storage.Layout{Size: elem.Size * n, Align: elem.Align}
	total := storage.Layout{Size: r.shape.Size * r.slots, Align: r.shape.Align}
	if !need.FitsIn(total) {
		return RangeHandle[C]{}, storage.ErrAllocationFailed
	}
	return RangeHandle[C]{cap: r.fullCapacity(elem, capacity)}, nil
}

// TryGrow always fails: the array is fixed by construction.
func (r *Range[C]) TryGrow(h RangeHandle[C], elem storage.Layout, newCapacity C) (RangeHandle[C], error) {
	return RangeHandle[C]{}, storage.ErrAllocationFailed
}

// TryShrink always fails: the array is fixed by construction.
func (r *Range[C]) TryShrink(h RangeHandle[C], elem storage.Layout, newCapacity C) (RangeHandle[C], error) {
	return RangeHandle[C]{}, storage.ErrAllocationFailed
}

// Resolve returns the array address.
func (r *Range[C]) Resolve(h RangeHandle[C]) unsafe.Pointer {
	return unsafe.Pointer(&r.buf[0])
}

// CapacityOf returns the capacity the handle was produced with.
func (r *Range[C]) CapacityOf(h RangeHandle[C]) C {
	return h.cap
}

// Deallocate is a no-op: the array is owned by the storage itself.
func (r *Range[C]) Deallocate(h RangeHandle[C], elem storage.Layout) {}

// fullCapacity converts the whole fixed array into elements of the given
// layout, falling back to the requested capacity when the element count is
// not representable in C.
func (r *Range[C]) fullCapacity(elem storage.Layout, requested C) C {
	if elem.Size == 0 {
		return requested
	}
	if full, ok := storage.CapacityFromSize[C](r.shape.Size * r.slots / elem.Size); ok {
		return full
	}
	return requested
}

var _ storage.RangeStorage[uint8, RangeHandle[uint8]] = (*Range[uint8])(nil)
