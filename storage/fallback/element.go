package fallback

import (
	"unsafe"

	"github.com/joshuapare/slotkit/storage"
)

const (
	armFirst uint8 = iota + 1
	armSecond
)

const wrongArm = "fallback: handle read through wrong arm"

// ElementHandle is the tagged union of the two backends' handles. Exactly
// one arm is valid, determined by which backend produced the slot.
type ElementHandle[HF, HS any] struct {
	arm    uint8
	first  HF
	second HS
}

// IsFirst reports whether the handle was produced by the first backend.
func (h ElementHandle[HF, HS]) IsFirst() bool {
	return h.arm == armFirst
}

// First returns the first backend's handle; panics on a Second-tagged one.
func (h ElementHandle[HF, HS]) First() HF {
	if h.arm != armFirst {
		panic(wrongArm)
	}
	return h.first
}

// Second returns the second backend's handle; panics on a First-tagged one.
func (h ElementHandle[HF, HS]) Second() HS {
	if h.arm != armSecond {
		panic(wrongArm)
	}
	return h.second
}

// Element composes two element storages, preferring the first.
type Element[HF, HS any] struct {
	first  storage.ElementStorage[HF]
	second storage.ElementStorage[HS]
}

// NewElement creates a composite that allocates from first when possible
// and from second otherwise.
func NewElement[HF, HS any](first storage.ElementStorage[HF], second storage.ElementStorage[HS]) *Element[HF, HS] {
	return &Element[HF, HS]{first: first, second: second}
}

// Allocate tries the first backend, then the second.
func (e *Element[HF, HS]) Allocate(layout storage.Layout, meta storage.Metadata) (ElementHandle[HF, HS], error) {
	if h, err := e.first.Allocate(layout, meta); err == nil {
		return ElementHandle[HF, HS]{arm: armFirst, first: h}, nil
	}
	h, err := e.second.Allocate(layout, meta)
	if err != nil {
		return ElementHandle[HF, HS]{}, err
	}
	return ElementHandle[HF, HS]{arm: armSecond, second: h}, nil
}

// Resolve dispatches on the handle's tag.
func (e *Element[HF, HS]) Resolve(h ElementHandle[HF, HS]) unsafe.Pointer {
	switch h.arm {
	case armFirst:
		return e.first.Resolve(h.first)
	case armSecond:
		return e.second.Resolve(h.second)
	}
	panic(wrongArm)
}

// Meta dispatches on the handle's tag.
func (e *Element[HF, HS]) Meta(h ElementHandle[HF, HS]) storage.Metadata {
	switch h.arm {
	case armFirst:
		return e.first.Meta(h.first)
	case armSecond:
		return e.second.Meta(h.second)
	}
	panic(wrongArm)
}

// Retag reinterprets the slot in whichever backend holds it.
func (e *Element[HF, HS]) Retag(h ElementHandle[HF, HS], meta storage.Metadata) ElementHandle[HF, HS] {
	switch h.arm {
	case armFirst:
		return ElementHandle[HF, HS]{arm: armFirst, first: e.first.Retag(h.first, meta)}
	case armSecond:
		return ElementHandle[HF, HS]{arm: armSecond, second: e.second.Retag(h.second, meta)}
	}
	panic(wrongArm)
}

// Deallocate releases the slot through the backend that produced it.
func (e *Element[HF, HS]) Deallocate(h ElementHandle[HF, HS], layout storage.Layout) {
	switch h.arm {
	case armFirst:
		e.first.Deallocate(h.first, layout)
	case armSecond:
		e.second.Deallocate(h.second, layout)
	default:
		panic(wrongArm)
	}
}

var _ storage.ElementStorage[ElementHandle[int, int]] = (*Element[int, int])(nil)
