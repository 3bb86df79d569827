package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	l := Of[uint64]()
	require.Equal(t, uintptr(8), l.Size)
	require.Equal(t, uintptr(8), l.Align)

	type pair struct {
		a uint32
		b uint8
	}
	p := Of[pair]()
	require.Equal(t, uintptr(8), p.Size)
	require.Equal(t, uintptr(4), p.Align)
}

func TestArrayOf(t *testing.T) {
	l := ArrayOf[uint32](5)
	require.Equal(t, uintptr(20), l.Size)
	require.Equal(t, uintptr(4), l.Align)

	empty := ArrayOf[uint32](0)
	require.Equal(t, uintptr(0), empty.Size)
	require.Equal(t, uintptr(4), empty.Align)
}

func TestFitsIn(t *testing.T) {
	slot := Layout{Size: 16, Align: 8}

	require.True(t, Layout{Size: 16, Align: 8}.FitsIn(slot))
	require.True(t, Layout{Size: 8, Align: 4}.FitsIn(slot))
	require.True(t, Layout{Size: 0, Align: 1}.FitsIn(slot))
	require.False(t, Layout{Size: 24, Align: 8}.FitsIn(slot))
	require.False(t, Layout{Size: 16, Align: 16}.FitsIn(slot))
}

func TestMetadata(t *testing.T) {
	sized := SizedMeta()
	require.True(t, sized.Sized())
	require.Equal(t, uintptr(1), sized.Length())

	sl := SliceMeta(7)
	require.False(t, sl.Sized())
	require.Equal(t, uintptr(7), sl.Length())

	require.Equal(t, uintptr(0), SliceMeta(0).Length())
}

func TestForLayout(t *testing.T) {
	require.Equal(t, Of[uint16](), For[uint16](SizedMeta()))
	require.Equal(t, ArrayOf[uint16](3), For[uint16](SliceMeta(3)))
}
