package fallback

import (
	"unsafe"

	"github.com/joshuapare/slotkit/internal/mem"
	"github.com/joshuapare/slotkit/storage"
)

// RangeHandle is the tagged union of the two backends' range handles.
type RangeHandle[HF, HS any] struct {
	arm    uint8
	first  HF
	second HS
}

// IsFirst reports whether the buffer currently lives in the first backend.
func (h RangeHandle[HF, HS]) IsFirst() bool {
	return h.arm == armFirst
}

// First returns the first backend's handle; panics on a Second-tagged one.
func (h RangeHandle[HF, HS]) First() HF {
	if h.arm != armFirst {
		panic(wrongArm)
	}
	return h.first
}

// Second returns the second backend's handle; panics on a First-tagged one.
func (h RangeHandle[HF, HS]) Second() HS {
	if h.arm != armSecond {
		panic(wrongArm)
	}
	return h.second
}

// Range composes two range storages, preferring the first and migrating
// live data across the boundary as capacity demands cross it. The composite
// counts capacity in the second backend's width C2.
type Range[C1, C2 storage.Capacity, HF, HS any] struct {
	first  storage.RangeStorage[C1, HF]
	second storage.RangeStorage[C2, HS]
}

// NewRange creates a composite that allocates from first when the capacity
// fits and from second otherwise.
func NewRange[C1, C2 storage.Capacity, HF, HS any](first storage.RangeStorage[C1, HF], second storage.RangeStorage[C2, HS]) *Range[C1, C2, HF, HS] {
	return &Range[C1, C2, HF, HS]{first: first, second: second}
}

// MaximumCapacity is the saturating sum of both maxima, clamped to C2;
// when the sum is not representable, the second backend's maximum stands.
func (r *Range[C1, C2, HF, HS]) MaximumCapacity(elem storage.Layout) C2 {
	first := storage.CapacityToSize(r.first.MaximumCapacity(elem))
	second := storage.CapacityToSize(r.second.MaximumCapacity(elem))
	sum := first + second
	if sum < first {
		sum = ^uintptr(0)
	}
	if c, ok := storage.CapacityFromSize[C2](sum); ok {
		return c
	}
	return r.second.MaximumCapacity(elem)
}

// Allocate tries the first backend at the full requested capacity, then the
// second at the full requested capacity. There is no partial fallback.
func (r *Range[C1, C2, HF, HS]) Allocate(elem storage.Layout, capacity C2) (RangeHandle[HF, HS], error) {
	if c1, ok := r.intoFirst(capacity); ok {
		if h, err := r.first.Allocate(elem, c1); err == nil {
			return RangeHandle[HF, HS]{arm: armFirst, first: h}, nil
		}
	}
	h, err := r.second.Allocate(elem, capacity)
	if err != nil {
		return RangeHandle[HF, HS]{}, err
	}
	return RangeHandle[HF, HS]{arm: armSecond, second: h}, nil
}

// TryGrow grows a First buffer in place when possible, and otherwise
// migrates it wholesale into the second backend: allocate the full new
// capacity there, byte-copy the preserved prefix, free the First buffer.
// Second buffers always grow in Second.
func (r *Range[C1, C2, HF, HS]) TryGrow(h RangeHandle[HF, HS], elem storage.Layout, newCapacity C2) (RangeHandle[HF, HS], error) {
	switch h.arm {
	case armFirst:
		if c1, ok := r.intoFirst(newCapacity); ok {
			if grown, err := r.first.TryGrow(h.first, elem, c1); err == nil {
				return RangeHandle[HF, HS]{arm: armFirst, first: grown}, nil
			}
		}
		second, err := r.second.Allocate(elem, newCapacity)
		if err != nil {
			return RangeHandle[HF, HS]{}, err
		}
		transfer(elem,
			r.first.Resolve(h.first), storage.CapacityToSize(r.first.CapacityOf(h.first)),
			r.second.Resolve(second), storage.CapacityToSize(r.second.CapacityOf(second)))
		r.first.Deallocate(h.first, elem)
		return RangeHandle[HF, HS]{arm: armSecond, second: second}, nil
	case armSecond:
		grown, err := r.second.TryGrow(h.second, elem, newCapacity)
		if err != nil {
			return RangeHandle[HF, HS]{}, err
		}
		return RangeHandle[HF, HS]{arm: armSecond, second: grown}, nil
	}
	panic(wrongArm)
}

// TryShrink mirrors TryGrow: a Second buffer shrinking to a capacity the
// first backend can hold migrates back (freeing Second), otherwise Second
// shrinks in place. First buffers shrink in First.
func (r *Range[C1, C2, HF, HS]) TryShrink(h RangeHandle[HF, HS], elem storage.Layout, newCapacity C2) (RangeHandle[HF, HS], error) {
	c1, okFirst := r.intoFirst(newCapacity)
	switch h.arm {
	case armFirst:
		if !okFirst {
			return RangeHandle[HF, HS]{}, storage.ErrAllocationFailed
		}
		shrunk, err := r.first.TryShrink(h.first, elem, c1)
		if err != nil {
			return RangeHandle[HF, HS]{}, err
		}
		return RangeHandle[HF, HS]{arm: armFirst, first: shrunk}, nil
	case armSecond:
		if okFirst {
			if first, err := r.first.Allocate(elem, c1); err == nil {
				transfer(elem,
					r.second.Resolve(h.second), storage.CapacityToSize(r.second.CapacityOf(h.second)),
					r.first.Resolve(first), storage.CapacityToSize(r.first.CapacityOf(first)))
				r.second.Deallocate(h.second, elem)
				return RangeHandle[HF, HS]{arm: armFirst, first: first}, nil
			}
		}
		shrunk, err := r.second.TryShrink(h.second, elem, newCapacity)
		if err != nil {
			return RangeHandle[HF, HS]{}, err
		}
		return RangeHandle[HF, HS]{arm: armSecond, second: shrunk}, nil
	}
	panic(wrongArm)
}

// Resolve dispatches on the handle's tag.
func (r *Range[C1, C2, HF, HS]) Resolve(h RangeHandle[HF, HS]) unsafe.Pointer {
	switch h.arm {
	case armFirst:
		return r.first.Resolve(h.first)
	case armSecond:
		return r.second.Resolve(h.second)
	}
	panic(wrongArm)
}

// CapacityOf reports the buffer's capacity in the composite width, clamped
// to C2's maximum in the degenerate case of a First buffer larger than C2
// can express.
func (r *Range[C1, C2, HF, HS]) CapacityOf(h RangeHandle[HF, HS]) C2 {
	switch h.arm {
	case armFirst:
		if c, ok := storage.CapacityFromSize[C2](storage.CapacityToSize(r.first.CapacityOf(h.first))); ok {
			return c
		}
		return storage.MaxCapacity[C2]()
	case armSecond:
		return r.second.CapacityOf(h.second)
	}
	panic(wrongArm)
}

// Deallocate releases the buffer through the backend that holds it.
func (r *Range[C1, C2, HF, HS]) Deallocate(h RangeHandle[HF, HS], elem storage.Layout) {
	switch h.arm {
	case armFirst:
		r.first.Deallocate(h.first, elem)
	case armSecond:
		r.second.Deallocate(h.second, elem)
	default:
		panic(wrongArm)
	}
}

// intoFirst converts a composite capacity into the first backend's width.
func (r *Range[C1, C2, HF, HS]) intoFirst(capacity C2) (C1, bool) {
	return storage.CapacityFromSize[C1](storage.CapacityToSize(capacity))
}

// transfer byte-copies min(srcCap, dstCap) elements between buffers.
func transfer(elem storage.Layout, src unsafe.Pointer, srcCap uintptr, dst unsafe.Pointer, dstCap uintptr) {
	n := srcCap
	if dstCap < n {
		n = dstCap
	}
	mem.Copy(dst, src, n*elem.Size)
}

var _ storage.RangeStorage[uintptr, RangeHandle[int, int]] = (*Range[uint8, uintptr, int, int])(nil)
