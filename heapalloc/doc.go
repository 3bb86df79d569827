// Package heapalloc implements the storage.Allocator contract on the Go
// heap. Buffers are kept alive in an internal table keyed by their aligned
// address, so handing raw pointers across unsafe boundaries never races the
// garbage collector. It is the general-purpose allocator the rest of the
// module defaults to in tests and examples.
package heapalloc
