package arena

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slotkit/internal/mem"
	"github.com/joshuapare/slotkit/storage"
)

func TestAllocateAlignedAndZeroed(t *testing.T) {
	a := New()

	p, err := a.Allocate(storage.Layout{Size: 24, Align: 8})
	require.NoError(t, err)
	require.True(t, mem.IsAligned(p, 8))
	for _, b := range mem.Bytes(p, 24) {
		require.Zero(t, b)
	}
}

func TestBumpStaysInChunk(t *testing.T) {
	a := NewWithChunkSize(1024)

	for i := 0; i < 8; i++ {
		_, err := a.Allocate(storage.Layout{Size: 64, Align: 8})
		require.NoError(t, err)
	}
	require.Equal(t, 1, a.Metrics().Chunks)
}

func TestOversizedRequestGetsOwnChunk(t *testing.T) {
	a := NewWithChunkSize(256)

	_, err := a.Allocate(storage.Layout{Size: 4096, Align: 8})
	require.NoError(t, err)
	require.Equal(t, 1, a.Metrics().Chunks)

	_, err = a.Allocate(storage.Layout{Size: 64, Align: 8})
	require.NoError(t, err)
	require.Equal(t, 2, a.Metrics().Chunks)
}

func TestGrowInPlaceAtTail(t *testing.T) {
	a := NewWithChunkSize(1024)
	old := storage.Layout{Size: 16, Align: 8}
	grown := storage.Layout{Size: 64, Align: 8}

	p, err := a.Allocate(old)
	require.NoError(t, err)
	copy(mem.Bytes(p, 16), []byte("0123456789abcdef"))

	q, err := a.Grow(p, old, grown)
	require.NoError(t, err)
	require.Equal(t, p, q)
	require.Equal(t, []byte("0123456789abcdef"), mem.Bytes(q, 16))
	require.Equal(t, uint64(1), a.Metrics().InPlaceGrows)
}

func TestGrowRelocatesWhenNotTail(t *testing.T) {
	a := NewWithChunkSize(1024)
	old := storage.Layout{Size: 16, Align: 8}
	grown := storage.Layout{Size: 64, Align: 8}

	p, err := a.Allocate(old)
	require.NoError(t, err)
	copy(mem.Bytes(p, 16), []byte("0123456789abcdef"))

	// A later allocation takes over the tail.
	_, err = a.Allocate(storage.Layout{Size: 8, Align: 8})
	require.NoError(t, err)

	q, err := a.Grow(p, old, grown)
	require.NoError(t, err)
	require.NotEqual(t, p, q)
	require.Equal(t, []byte("0123456789abcdef"), mem.Bytes(q, 16))
	require.Zero(t, a.Metrics().InPlaceGrows)
}

func TestDeallocateReclaimsOnlyTail(t *testing.T) {
	a := NewWithChunkSize(1024)
	l := storage.Layout{Size: 32, Align: 8}

	p, err := a.Allocate(l)
	require.NoError(t, err)
	a.Deallocate(p, l)

	// The freed tail is handed out again.
	q, err := a.Allocate(l)
	require.NoError(t, err)
	require.Equal(t, p, q)
}

func TestReset(t *testing.T) {
	a := NewWithChunkSize(128)

	for i := 0; i < 10; i++ {
		_, err := a.Allocate(storage.Layout{Size: 100, Align: 8})
		require.NoError(t, err)
	}
	require.Greater(t, a.Metrics().Chunks, 1)

	a.Reset()
	require.Equal(t, 1, a.Metrics().Chunks)

	p, err := a.Allocate(storage.Layout{Size: 16, Align: 8})
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestArenaBacksRangeStorage(t *testing.T) {
	a := New()
	var alloc storage.Allocator = a
	require.NotNil(t, alloc)
}

func BenchmarkAllocate(b *testing.B) {
	a := New()
	l := storage.Layout{Size: 48, Align: 8}
	for i := 0; i < b.N; i++ {
		if i%1024 == 0 {
			a.Reset()
		}
		if _, err := a.Allocate(l); err != nil {
			b.Fatal(err)
		}
	}
}
