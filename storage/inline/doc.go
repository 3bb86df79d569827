// Package inline implements fixed-capacity storage over a byte buffer the
// storage owns outright: no allocator is consulted after construction.
//
// Three backends are provided:
//
//   - Element: exactly one slot, no bookkeeping. Deallocate is a no-op; the
//     single-value-at-a-time discipline is the caller's.
//   - Range: a fixed array of slots. Allocate validates the request and then
//     hands out the entire fixed array; there is no grow or shrink.
//   - Tracking: N equal slots threaded on an embedded LIFO free list, so
//     multiple independent values can coexist. Allocate pops the head in
//     constant time, Deallocate pushes back; free slots store their "next"
//     link in the same bytes the data would occupy.
//
// Every backend is constructed with a shape layout: the size and alignment
// budget of one slot. Allocate fails with storage.ErrAllocationFailed when
// the requested shape does not fit the budget, or (for Tracking) when the
// free list is exhausted.
//
// The ...Over constructors lay the storage over a caller-provided region,
// e.g. one obtained from package mmbuf, instead of an internally allocated
// buffer.
package inline
