// Package testutil provides instrumented allocators for exercising the
// storage backends under controlled failure and accounting.
package testutil

import (
	"unsafe"

	"github.com/joshuapare/slotkit/heapalloc"
	"github.com/joshuapare/slotkit/storage"
)

// Spy wraps an allocator and counts every call, so tests can assert that a
// backend touched (or never touched) its allocator.
type Spy struct {
	Inner storage.Allocator

	Allocates   int
	Grows       int
	Shrinks     int
	Deallocates int
}

// NewSpy creates a Spy over a fresh heap allocator.
func NewSpy() *Spy {
	return &Spy{Inner: heapalloc.New()}
}

func (s *Spy) Allocate(layout storage.Layout) (unsafe.Pointer, error) {
	s.Allocates++
	return s.Inner.Allocate(layout)
}

func (s *Spy) Grow(ptr unsafe.Pointer, old, new storage.Layout) (unsafe.Pointer, error) {
	s.Grows++
	return s.Inner.Grow(ptr, old, new)
}

func (s *Spy) Shrink(ptr unsafe.Pointer, old, new storage.Layout) (unsafe.Pointer, error) {
	s.Shrinks++
	return s.Inner.Shrink(ptr, old, new)
}

func (s *Spy) Deallocate(ptr unsafe.Pointer, layout storage.Layout) {
	s.Deallocates++
	s.Inner.Deallocate(ptr, layout)
}

// Outstanding returns allocations minus deallocations, which is zero when
// the code under test released everything it acquired.
func (s *Spy) Outstanding() int {
	return s.Allocates - s.Deallocates
}

// NonAllocator refuses every request. Deallocate panics because no pointer
// can legitimately originate from it.
type NonAllocator struct{}

func (NonAllocator) Allocate(storage.Layout) (unsafe.Pointer, error) {
	return nil, storage.ErrAllocationFailed
}

func (NonAllocator) Grow(unsafe.Pointer, storage.Layout, storage.Layout) (unsafe.Pointer, error) {
	return nil, storage.ErrAllocationFailed
}

func (NonAllocator) Shrink(unsafe.Pointer, storage.Layout, storage.Layout) (unsafe.Pointer, error) {
	return nil, storage.ErrAllocationFailed
}

func (NonAllocator) Deallocate(unsafe.Pointer, storage.Layout) {
	panic("testutil: deallocate through NonAllocator")
}

// Limit wraps an allocator and fails every acquiring call after a budget of
// successes, for driving fallback paths deterministically.
type Limit struct {
	Inner     storage.Allocator
	Remaining int
}

// NewLimit creates a Limit over a fresh heap allocator with the given
// budget of successful acquisitions.
func NewLimit(budget int) *Limit {
	return &Limit{Inner: heapalloc.New(), Remaining: budget}
}

func (l *Limit) Allocate(layout storage.Layout) (unsafe.Pointer, error) {
	if l.Remaining <= 0 {
		return nil, storage.ErrAllocationFailed
	}
	l.Remaining--
	return l.Inner.Allocate(layout)
}

func (l *Limit) Grow(ptr unsafe.Pointer, old, new storage.Layout) (unsafe.Pointer, error) {
	if l.Remaining <= 0 {
		return nil, storage.ErrAllocationFailed
	}
	l.Remaining--
	return l.Inner.Grow(ptr, old, new)
}

func (l *Limit) Shrink(ptr unsafe.Pointer, old, new storage.Layout) (unsafe.Pointer, error) {
	if l.Remaining <= 0 {
		return nil, storage.ErrAllocationFailed
	}
	l.Remaining--
	return l.Inner.Shrink(ptr, old, new)
}

func (l *Limit) Deallocate(ptr unsafe.Pointer, layout storage.Layout) {
	l.Inner.Deallocate(ptr, layout)
}

var (
	_ storage.Allocator = (*Spy)(nil)
	_ storage.Allocator = NonAllocator{}
	_ storage.Allocator = (*Limit)(nil)
)
