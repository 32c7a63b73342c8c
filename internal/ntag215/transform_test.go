package ntag215

import (
	"testing"

	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/internal/rng"
	"github.com/Firefox2100/librfidx/internal/tagmodel"
	"github.com/Firefox2100/librfidx/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequiresRNG(t *testing.T) {
	rng.Free()
	var d Data
	var h ntag21x.Header
	err := Generate(&d, &h)
	require.Error(t, err)
	assert.True(t, status.IsDRNGError(err))
}

func TestGenerateZeroesAndRandomizesUID(t *testing.T) {
	require.NoError(t, rng.Init(nil))
	defer rng.Free()

	d := sampleData()
	h := sampleHeader()
	require.NoError(t, Generate(d, h))

	assert.Equal(t, byte(0x04), d.ManufacturerData().UID0()[0])
	assert.Equal(t, [4]byte{}, [4]byte(d.Page(10)), "non-manufacturer pages must be zeroed")
	assert.Equal(t, ntag21x.Header{}, *h)
}

func TestWipePreservesManufacturerAndCapability(t *testing.T) {
	d := sampleData()
	manBefore := append([]byte(nil), d.ManufacturerData()...)
	capBefore := append([]byte(nil), d.Capability()...)

	Wipe(d)

	assert.Equal(t, manBefore, []byte(d.ManufacturerData()))
	assert.Equal(t, capBefore, d.Capability())
	for _, b := range d.UserMemory() {
		assert.Equal(t, byte(0), b)
	}
	for _, b := range d.Passwd() {
		assert.Equal(t, byte(0), b)
	}
	for _, b := range d.Pack() {
		assert.Equal(t, byte(0), b)
	}
	for _, b := range d.DynamicLock() {
		assert.Equal(t, byte(0), b)
	}
}

func TestTransformNoneIsNoop(t *testing.T) {
	d := sampleData()
	h := sampleHeader()
	before := append([]byte(nil), d.Bytes()...)
	out, _, err := Transform(d, h, tagmodel.CmdNone)
	require.NoError(t, err)
	assert.Equal(t, before, out.Bytes())
}

func TestTransformUnknownCommand(t *testing.T) {
	_, _, err := Transform(sampleData(), sampleHeader(), tagmodel.TransformCommand(99))
	require.Error(t, err)
	assert.True(t, status.Is(err, status.UnknownEnumError))
}

func TestTransformGenerateAllocates(t *testing.T) {
	require.NoError(t, rng.Init(nil))
	defer rng.Free()

	data, header, err := Transform(nil, nil, tagmodel.CmdGenerate)
	require.NoError(t, err)
	require.NotNil(t, data)
	require.NotNil(t, header)
	assert.Equal(t, byte(0x04), data.ManufacturerData().UID0()[0])
}

func TestTransformRandomizeUIDOnlyTouchesManufacturer(t *testing.T) {
	require.NoError(t, rng.Init(nil))
	defer rng.Free()

	d := sampleData()
	h := sampleHeader()
	pagesBefore := append([]byte(nil), d.UserMemory()...)

	_, _, err := Transform(d, h, tagmodel.CmdRandomizeUID)
	require.NoError(t, err)
	assert.Equal(t, pagesBefore, d.UserMemory())
}
