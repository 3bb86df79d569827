package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaxCapacity(t *testing.T) {
	require.Equal(t, uint8(255), MaxCapacity[uint8]())
	require.Equal(t, uint16(65535), MaxCapacity[uint16]())
	require.Equal(t, ^uintptr(0), MaxCapacity[uintptr]())
}

func TestCapacityRoundTrip(t *testing.T) {
	c, ok := CapacityFromSize[uint8](200)
	require.True(t, ok)
	require.Equal(t, uint8(200), c)
	require.Equal(t, uintptr(200), CapacityToSize(c))

	_, ok = CapacityFromSize[uint8](256)
	require.False(t, ok)

	wide, ok := CapacityFromSize[uint32](1 << 20)
	require.True(t, ok)
	require.Equal(t, uintptr(1<<20), CapacityToSize(wide))
}

func TestCapacityFromSizeZero(t *testing.T) {
	c, ok := CapacityFromSize[uint8](0)
	require.True(t, ok)
	require.Equal(t, uint8(0), c)
}
