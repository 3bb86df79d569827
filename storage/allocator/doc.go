// Package allocator implements element and range storage on top of an
// injected general-purpose allocator. It is a thin adaptor: shapes are
// computed by the typed layer, handed to the allocator verbatim, and the
// allocator's in-place resize capability backs TryGrow and TryShrink.
//
// These are the only backends with unbounded capacity. The correctness
// invariant is that Deallocate is always called with the layout recomputed
// from the metadata captured at allocation; the storage.Create/Deallocate
// typed layer guarantees this by construction.
package allocator
