package alternative

import (
	"unsafe"

	"github.com/joshuapare/slotkit/storage"
)

// Builder materializes a storage backend on demand. The composite holds a
// Builder for its Second backend and invokes it at most once.
type Builder[H any] interface {
	Build() storage.ElementStorage[H]
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc[H any] func() storage.ElementStorage[H]

// Build calls f.
func (f BuilderFunc[H]) Build() storage.ElementStorage[H] {
	return f()
}

const (
	stateFirst uint8 = iota + 1
	stateSecond
	statePoisoned
)

const (
	wrongArm = "alternative: handle read through wrong arm"
	poisoned = "alternative: storage is poisoned"
)

// Handle is the tagged union of the two backends' handles.
type Handle[HF, HS any] struct {
	arm    uint8
	first  HF
	second HS
}

// IsFirst reports whether the handle was produced by the First backend.
func (h Handle[HF, HS]) IsFirst() bool {
	return h.arm == stateFirst
}

// First returns the First backend's handle; panics on a Second-tagged one.
func (h Handle[HF, HS]) First() HF {
	if h.arm != stateFirst {
		panic(wrongArm)
	}
	return h.first
}

// Second returns the Second backend's handle; panics on a First-tagged one.
func (h Handle[HF, HS]) Second() HS {
	if h.arm != stateSecond {
		panic(wrongArm)
	}
	return h.second
}

// Element routes allocations to one of two backends, switching from First
// to Second exactly once, on the first allocation First refuses.
type Element[HF, HS any] struct {
	state       uint8
	first       storage.ElementStorage[HF]
	second      storage.ElementStorage[HS]
	buildSecond Builder[HS]
}

// First creates a composite that starts in the First backend and builds the
// Second from the builder when First first refuses an allocation.
func First[HF, HS any](first storage.ElementStorage[HF], second Builder[HS]) *Element[HF, HS] {
	return &Element[HF, HS]{state: stateFirst, first: first, buildSecond: second}
}

// Second creates a composite already switched to the Second backend. First
// never serves; the composite only dispatches First-tagged handles to it.
func Second[HF, HS any](first storage.ElementStorage[HF], second storage.ElementStorage[HS]) *Element[HF, HS] {
	return &Element[HF, HS]{state: stateSecond, first: first, second: second}
}

// InSecond reports whether the switch has happened.
func (e *Element[HF, HS]) InSecond() bool {
	e.check()
	return e.state == stateSecond
}

// Allocate serves from the active backend. A refusal by First triggers the
// permanent switch to Second and retries there once.
func (e *Element[HF, HS]) Allocate(layout storage.Layout, meta storage.Metadata) (Handle[HF, HS], error) {
	e.check()
	if e.state == stateFirst {
		if h, err := e.first.Allocate(layout, meta); err == nil {
			return Handle[HF, HS]{arm: stateFirst, first: h}, nil
		}
		e.switchToSecond()
	}
	h, err := e.second.Allocate(layout, meta)
	if err != nil {
		return Handle[HF, HS]{}, err
	}
	return Handle[HF, HS]{arm: stateSecond, second: h}, nil
}

// Resolve dispatches on the handle's tag.
func (e *Element[HF, HS]) Resolve(h Handle[HF, HS]) unsafe.Pointer {
	e.check()
	switch h.arm {
	case stateFirst:
		return e.first.Resolve(h.first)
	case stateSecond:
		return e.second.Resolve(h.second)
	}
	panic(wrongArm)
}

// Meta dispatches on the handle's tag.
func (e *Element[HF, HS]) Meta(h Handle[HF, HS]) storage.Metadata {
	e.check()
	switch h.arm {
	case stateFirst:
		return e.first.Meta(h.first)
	case stateSecond:
		return e.second.Meta(h.second)
	}
	panic(wrongArm)
}

// Retag reinterprets the slot in whichever backend holds it.
func (e *Element[HF, HS]) Retag(h Handle[HF, HS], meta storage.Metadata) Handle[HF, HS] {
	e.check()
	switch h.arm {
	case stateFirst:
		return Handle[HF, HS]{arm: stateFirst, first: e.first.Retag(h.first, meta)}
	case stateSecond:
		return Handle[HF, HS]{arm: stateSecond, second: e.second.Retag(h.second, meta)}
	}
	panic(wrongArm)
}

// Deallocate releases the slot through the backend that produced it.
func (e *Element[HF, HS]) Deallocate(h Handle[HF, HS], layout storage.Layout) {
	e.check()
	switch h.arm {
	case stateFirst:
		e.first.Deallocate(h.first, layout)
	case stateSecond:
		e.second.Deallocate(h.second, layout)
	default:
		panic(wrongArm)
	}
}

// switchToSecond builds the Second backend and commits the switch. The
// composite is poisoned for the duration of the build: if Build panics the
// poisoned state sticks and every later operation panics.
func (e *Element[HF, HS]) switchToSecond() {
	e.state = statePoisoned
	e.second = e.buildSecond.Build()
	e.buildSecond = nil
	e.state = stateSecond
}

func (e *Element[HF, HS]) check() {
	if e.state == statePoisoned {
		panic(poisoned)
	}
}

var _ storage.ElementStorage[Handle[int, int]] = (*Element[int, int])(nil)
