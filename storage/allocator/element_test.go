package allocator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotkit/internal/testutil"
	"github.com/joshuapare/slotkit/storage"
	"github.com/joshuapare/slotkit/storage/allocator"
)

func TestElementCreateGet(t *testing.T) {
	spy := testutil.NewSpy()
	s := allocator.NewElement(spy)

	h, err := storage.Create(s, uint64(0xfeedface))
	require.NoError(t, err)
	require.Equal(t, uint64(0xfeedface), *storage.Get(s, h))

	*storage.Get(s, h) = 42
	require.Equal(t, uint64(42), *storage.Get(s, h))

	storage.Deallocate(s, h)
	require.Zero(t, spy.Outstanding())
}

func TestElementAllocateUninitialized(t *testing.T) {
	s := allocator.NewElement(testutil.NewSpy())

	h, err := storage.Allocate[int32](s)
	require.NoError(t, err)
	*storage.Get(s, h) = -7
	require.Equal(t, int32(-7), *storage.Get(s, h))
	storage.Deallocate(s, h)
}

func TestElementCreateFailure(t *testing.T) {
	s := allocator.NewElement(testutil.NonAllocator{})

	_, err := storage.Create(s, "payload")
	require.ErrorIs(t, err, storage.ErrAllocationFailed)
}

func TestElementBudgetExhaustion(t *testing.T) {
	s := allocator.NewElement(testutil.NewLimit(2))

	a, err := storage.Create(s, 1)
	require.NoError(t, err)
	b, err := storage.Create(s, 2)
	require.NoError(t, err)

	_, err = storage.Create(s, 3)
	require.ErrorIs(t, err, storage.ErrAllocationFailed)
	require.Equal(t, 1, *storage.Get(s, a))
	require.Equal(t, 2, *storage.Get(s, b))
}

func TestElementSlice(t *testing.T) {
	spy := testutil.NewSpy()
	s := allocator.NewElement(spy)

	h, err := storage.AllocateSlice[uint16](s, 4)
	require.NoError(t, err)

	view := storage.GetSlice(s, h)
	require.Len(t, view, 4)
	for i := range view {
		view[i] = uint16(i * 11)
	}
	require.Equal(t, []uint16{0, 11, 22, 33}, storage.GetSlice(s, h))

	storage.DeallocateSlice(s, h)
	require.Zero(t, spy.Outstanding())
}

func TestElementCoerce(t *testing.T) {
	spy := testutil.NewSpy()
	s := allocator.NewElement(spy)

	h, err := storage.Create(s, [4]byte{'a', 'b', 'c', 'd'})
	require.NoError(t, err)

	coerced := storage.Coerce[byte](s, h)
	view := storage.GetSlice(s, coerced)
	require.Equal(t, []byte("abcd"), view)

	// Same slot, new view: writes through the slice land in the array.
	view[0] = 'z'
	require.Equal(t, byte('z'), storage.Get(s, h)[0])
	require.Equal(t, 1, spy.Allocates)

	storage.DeallocateSlice(s, coerced)
	require.Zero(t, spy.Outstanding())
}

func TestElementDistinctSlots(t *testing.T) {
	s := allocator.NewElement(testutil.NewSpy())

	a, err := storage.Create(s, 1)
	require.NoError(t, err)
	b, err := storage.Create(s, 2)
	require.NoError(t, err)

	require.Equal(t, 1, *storage.Get(s, a))
	require.Equal(t, 2, *storage.Get(s, b))

	storage.Deallocate(s, a)
	require.Equal(t, 2, *storage.Get(s, b))
	storage.Deallocate(s, b)
}

func TestBuilder(t *testing.T) {
	spy := testutil.NewSpy()
	b := allocator.Builder{Allocator: spy}

	s := b.Build()
	h, err := storage.Create(s, int64(9))
	require.NoError(t, err)
	require.Equal(t, int64(9), *storage.Get(s, h))
	storage.Deallocate(s, h)

	elem, ok := s.(*allocator.Element)
	require.True(t, ok)
	require.Same(t, storage.Allocator(spy), b.Unwrap(elem))
}
