package inline_test

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotkit/storage"
	"github.com/joshuapare/slotkit/storage/inline"
)

// alignedBuf returns a word-aligned byte region for the Over constructors.
func alignedBuf(words int) []byte {
	backing := make([]uint64, words)
	return unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), words*8)
}

func TestElementCreateGet(t *testing.T) {
	s := inline.NewElement(storage.Of[uint64]())

	h, err := storage.Create(s, uint64(0xdeadbeef))
	require.NoError(t, err)
	require.Equal(t, uint64(0xdeadbeef), *storage.Get(s, h))

	*storage.Get(s, h) = 1
	require.Equal(t, uint64(1), *storage.Get(s, h))

	storage.Deallocate(s, h)
}

func TestElementRejectsOversized(t *testing.T) {
	s := inline.NewElement(storage.Of[uint32]())

	_, err := storage.Create(s, uint64(1))
	require.ErrorIs(t, err, storage.ErrAllocationFailed)
}

func TestElementRejectsOveraligned(t *testing.T) {
	s := inline.NewElement(storage.Layout{Size: 8, Align: 1})

	_, err := s.Allocate(storage.Layout{Size: 8, Align: 8}, storage.SizedMeta())
	require.ErrorIs(t, err, storage.ErrAllocationFailed)
}

func TestElementSmallerValueFits(t *testing.T) {
	s := inline.NewElement(storage.Of[uint64]())

	h, err := storage.Create(s, uint16(77))
	require.NoError(t, err)
	require.Equal(t, uint16(77), *storage.Get(s, h))
	storage.Deallocate(s, h)
}

func TestElementSlotReuse(t *testing.T) {
	s := inline.NewElement(storage.Of[int]())

	h, err := storage.Create(s, 1)
	require.NoError(t, err)
	storage.Deallocate(s, h)

	h, err = storage.Create(s, 2)
	require.NoError(t, err)
	require.Equal(t, 2, *storage.Get(s, h))
	storage.Deallocate(s, h)
}

func TestElementCoerce(t *testing.T) {
	s := inline.NewElement(storage.Of[[8]byte]())

	h, err := storage.Create(s, [8]byte{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	coerced := storage.Coerce[byte](s, h)
	view := storage.GetSlice(s, coerced)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, view)

	view[7] = 99
	require.Equal(t, byte(99), storage.Get(s, h)[7])

	storage.DeallocateSlice(s, coerced)
}

func TestElementOver(t *testing.T) {
	shape := storage.Of[uint64]()

	s, err := inline.NewElementOver(alignedBuf(2), shape)
	require.NoError(t, err)

	h, err := storage.Create(s, uint64(5))
	require.NoError(t, err)
	require.Equal(t, uint64(5), *storage.Get(s, h))
	storage.Deallocate(s, h)
}

func TestElementOverTooSmall(t *testing.T) {
	_, err := inline.NewElementOver(make([]byte, 4), storage.Of[uint64]())
	require.ErrorIs(t, err, storage.ErrAllocationFailed)

	_, err = inline.NewElementOver(nil, storage.Of[uint64]())
	require.ErrorIs(t, err, storage.ErrAllocationFailed)
}
