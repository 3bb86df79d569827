package allocator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotkit/internal/testutil"
	"github.com/joshuapare/slotkit/storage"
	"github.com/joshuapare/slotkit/storage/allocator"
)

func TestRangeAllocateZeroNeverTouchesAllocator(t *testing.T) {
	spy := testutil.NewSpy()
	r := allocator.NewRange(spy)

	h, err := storage.AllocateRange[uint32](r, 0)
	require.NoError(t, err)
	require.Equal(t, uintptr(0), storage.RangeCapacity[uint32](r, h))
	require.Empty(t, storage.View[uint32](r, h))

	storage.DeallocateRange[uint32](r, h)
	require.Zero(t, spy.Allocates)
	require.Zero(t, spy.Deallocates)
}

func TestRangeGrowShrinkPreservesPrefix(t *testing.T) {
	spy := testutil.NewSpy()
	r := allocator.NewRange(spy)

	h, err := storage.AllocateRange[uint32](r, 4)
	require.NoError(t, err)

	view := storage.View[uint32](r, h)
	require.Len(t, view, 4)
	copy(view, []uint32{10, 20, 30, 40})

	h, err = storage.Grow[uint32](r, h, 8)
	require.NoError(t, err)
	require.Equal(t, []uint32{10, 20, 30, 40}, storage.View[uint32](r, h)[:4])

	h, err = storage.Shrink[uint32](r, h, 2)
	require.NoError(t, err)
	require.Equal(t, []uint32{10, 20}, storage.View[uint32](r, h))

	storage.DeallocateRange[uint32](r, h)
	require.Zero(t, spy.Outstanding())
}

func TestRangeGrowRequiresLargerCapacity(t *testing.T) {
	r := allocator.NewRange(testutil.NewSpy())

	h, err := r.Allocate(storage.Of[byte](), 4)
	require.NoError(t, err)

	_, err = r.TryGrow(h, storage.Of[byte](), 4)
	require.ErrorIs(t, err, storage.ErrAllocationFailed)
	_, err = r.TryGrow(h, storage.Of[byte](), 2)
	require.ErrorIs(t, err, storage.ErrAllocationFailed)

	r.Deallocate(h, storage.Of[byte]())
}

func TestRangeGrowFromZero(t *testing.T) {
	spy := testutil.NewSpy()
	r := allocator.NewRange(spy)

	h, err := r.Allocate(storage.Of[uint64](), 0)
	require.NoError(t, err)

	h, err = r.TryGrow(h, storage.Of[uint64](), 3)
	require.NoError(t, err)
	require.Equal(t, uintptr(3), r.CapacityOf(h))
	require.Equal(t, 1, spy.Allocates)
	require.Zero(t, spy.Grows)

	r.Deallocate(h, storage.Of[uint64]())
}

func TestRangeShrinkToZeroDeallocates(t *testing.T) {
	spy := testutil.NewSpy()
	r := allocator.NewRange(spy)

	h, err := r.Allocate(storage.Of[uint64](), 5)
	require.NoError(t, err)

	h, err = r.TryShrink(h, storage.Of[uint64](), 0)
	require.NoError(t, err)
	require.Equal(t, uintptr(0), r.CapacityOf(h))
	require.Zero(t, spy.Outstanding())

	// Deallocating the dangling sentinel is a no-op.
	r.Deallocate(h, storage.Of[uint64]())
	require.Zero(t, spy.Outstanding())
}

func TestRangeAllocationFailure(t *testing.T) {
	r := allocator.NewRange(testutil.NonAllocator{})

	_, err := r.Allocate(storage.Of[byte](), 16)
	require.ErrorIs(t, err, storage.ErrAllocationFailed)

	// Zero capacity still succeeds; it never needs the allocator.
	h, err := r.Allocate(storage.Of[byte](), 0)
	require.NoError(t, err)
	require.Equal(t, uintptr(0), r.CapacityOf(h))
}

func TestRangeMaximumCapacity(t *testing.T) {
	r := allocator.NewRange(testutil.NewSpy())
	require.Equal(t, ^uintptr(0), r.MaximumCapacity(storage.Of[byte]()))
}
