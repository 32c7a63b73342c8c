package mfc1k

import (
	"testing"

	"github.com/Firefox2100/librfidx/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAccessBitsPackingScenario reproduces scenario S6: block 2 set to
// (c1, c2, c3) = (1, 0, 1) must read back as (1, 0, 1), with complement
// bits (0, 1, 0).
func TestAccessBitsPackingScenario(t *testing.T) {
	trailer := make([]byte, BlockSize)
	require.NoError(t, SetAccessBitsForBlock(trailer, 2, 1, 0, 1))

	c1, c2, c3, err := GetAccessBitsForBlock(trailer, 2)
	require.NoError(t, err)
	assert.Equal(t, byte(1), c1)
	assert.Equal(t, byte(0), c2)
	assert.Equal(t, byte(1), c3)

	ab := TrailerAccessBits(trailer)
	assert.Equal(t, byte(0), getBit(ab[0], 2))
	assert.Equal(t, byte(1), getBit(ab[0], 6))
	assert.Equal(t, byte(0), getBit(ab[1], 6))

	require.NoError(t, ValidateAccessBits(trailer))
}

func TestGetSetAccessBitsRoundTripAllBlocks(t *testing.T) {
	trailer := make([]byte, BlockSize)
	want := [4][3]byte{{0, 0, 0}, {1, 1, 1}, {1, 0, 1}, {0, 1, 0}}
	for b, tuple := range want {
		require.NoError(t, SetAccessBitsForBlock(trailer, b, tuple[0], tuple[1], tuple[2]))
	}
	for b, tuple := range want {
		c1, c2, c3, err := GetAccessBitsForBlock(trailer, b)
		require.NoError(t, err)
		assert.Equal(t, tuple[0], c1)
		assert.Equal(t, tuple[1], c2)
		assert.Equal(t, tuple[2], c3)
	}
	assert.NoError(t, ValidateAccessBits(trailer))
}

func TestAccessBitsOutOfRangeBlock(t *testing.T) {
	trailer := make([]byte, BlockSize)
	_, _, _, err := GetAccessBitsForBlock(trailer, 4)
	require.Error(t, err)
	assert.True(t, status.Is(err, status.MFCAccessBitsError))

	err = SetAccessBitsForBlock(trailer, -1, 0, 0, 0)
	require.Error(t, err)
	assert.True(t, status.Is(err, status.MFCAccessBitsError))
}

func TestValidateAccessBitsRejectsBrokenComplements(t *testing.T) {
	trailer := make([]byte, BlockSize)
	require.NoError(t, SetAccessBitsForBlock(trailer, 1, 1, 0, 1))
	ab := TrailerAccessBits(trailer)
	setBit(&ab[0], 1, getBit(ab[1], 1))

	err := ValidateAccessBits(trailer)
	require.Error(t, err)
	assert.True(t, status.Is(err, status.MFCAccessBitsError))
}
