package mfc1k

import (
	"testing"

	"github.com/Firefox2100/librfidx/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() *Data {
	var d Data
	for i := 0; i < NumBlocks; i++ {
		b := d.Block(i)
		b[0], b[1], b[2], b[3] = byte(i), byte(i+1), byte(i+2), byte(i+3)
	}
	return &d
}

func TestParseBinaryRoundTrip(t *testing.T) {
	d := sampleData()
	raw := SerializeBinary(d)
	require.Len(t, raw, Size)

	data, header, err := ParseBinary(raw)
	require.NoError(t, err)
	assert.Equal(t, d.Bytes(), data.Bytes())
	assert.Equal(t, [2]byte{0x00, 0x04}, header.ATQA)
	assert.Equal(t, byte(0x08), header.SAK)
	assert.Equal(t, d.Block(0)[0:4], header.UID[0:4])
}

func TestParseBinaryRejectsBadSize(t *testing.T) {
	_, _, err := ParseBinary(make([]byte, 1023))
	require.Error(t, err)
	assert.True(t, status.Is(err, status.BinaryFileSizeError))
}

func TestSerializeBinaryOmitsHeader(t *testing.T) {
	raw := SerializeBinary(&Data{})
	assert.Len(t, raw, Size)
}
