package heapalloc

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotkit/internal/mem"
	"github.com/joshuapare/slotkit/storage"
)

func TestAllocateZeroed(t *testing.T) {
	h := New()

	p, err := h.Allocate(storage.Layout{Size: 32, Align: 8})
	require.NoError(t, err)
	require.True(t, mem.IsAligned(p, 8))
	for _, b := range mem.Bytes(p, 32) {
		require.Zero(t, b)
	}
	require.Equal(t, 1, h.Live())

	h.Deallocate(p, storage.Layout{Size: 32, Align: 8})
	require.Zero(t, h.Live())
}

func TestGrowPreservesContents(t *testing.T) {
	h := New()
	old := storage.Layout{Size: 4, Align: 4}
	grown := storage.Layout{Size: 16, Align: 4}

	p, err := h.Allocate(old)
	require.NoError(t, err)
	copy(mem.Bytes(p, 4), []byte{1, 2, 3, 4})

	p, err = h.Grow(p, old, grown)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4}, mem.Bytes(p, 4))
	require.Equal(t, 1, h.Live())

	h.Deallocate(p, grown)
}

func TestShrinkTruncates(t *testing.T) {
	h := New()
	old := storage.Layout{Size: 8, Align: 8}
	small := storage.Layout{Size: 2, Align: 2}

	p, err := h.Allocate(old)
	require.NoError(t, err)
	copy(mem.Bytes(p, 8), []byte{9, 8, 7, 6, 5, 4, 3, 2})

	p, err = h.Shrink(p, old, small)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 8}, mem.Bytes(p, 2))

	h.Deallocate(p, small)
	require.Zero(t, h.Live())
}

func TestResizeDirectionEnforced(t *testing.T) {
	h := New()
	small := storage.Layout{Size: 4, Align: 4}
	big := storage.Layout{Size: 8, Align: 4}

	p, err := h.Allocate(big)
	require.NoError(t, err)

	_, err = h.Grow(p, big, small)
	require.ErrorIs(t, err, storage.ErrAllocationFailed)
	_, err = h.Shrink(p, small, big)
	require.ErrorIs(t, err, storage.ErrAllocationFailed)

	h.Deallocate(p, big)
}

func TestUnknownPointerPanics(t *testing.T) {
	h := New()
	var x int

	require.Panics(t, func() {
		h.Deallocate(unsafe.Pointer(&x), storage.Of[int]())
	})
}
