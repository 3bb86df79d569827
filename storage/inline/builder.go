package inline

import "github.com/joshuapare/slotkit/storage"

// ElementBuilder rebuilds an inline element storage of a fixed shape, for
// composites that materialize a fresh backend on demand.
type ElementBuilder struct {
	Shape storage.Layout
}

// Build materializes a fresh single-slot storage of the configured shape.
func (b ElementBuilder) Build() storage.ElementStorage[ElementHandle] {
	return NewElement(b.Shape)
}

// TrackingBuilder rebuilds a tracking storage with a fixed shape and slot
// count.
type TrackingBuilder struct {
	Shape storage.Layout
	Slots int
}

// Build materializes a fresh tracking storage of the configured geometry.
func (b TrackingBuilder) Build() storage.ElementStorage[TrackingHandle] {
	return NewTracking(b.Shape, b.Slots)
}
