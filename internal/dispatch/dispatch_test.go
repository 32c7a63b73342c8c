package dispatch

import (
	"testing"

	"github.com/Firefox2100/librfidx/internal/amiibo"
	"github.com/Firefox2100/librfidx/internal/mfc1k"
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/internal/ntag215"
	"github.com/Firefox2100/librfidx/internal/rng"
	"github.com/Firefox2100/librfidx/internal/tagmodel"
	"github.com/Firefox2100/librfidx/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransformNTAG215Generate(t *testing.T) {
	require.NoError(t, rng.Init([]byte("dispatch-ntag215")))
	defer rng.Free()

	data, header, err := Transform(tagmodel.TagNTAG215, tagmodel.CmdGenerate, nil, nil, Extra{})
	require.NoError(t, err)

	_, ok := data.(*ntag215.Data)
	assert.True(t, ok)
	_, ok = header.(*ntag21x.Header)
	assert.True(t, ok)
}

func TestTransformMFC1KGenerate(t *testing.T) {
	require.NoError(t, rng.Init([]byte("dispatch-mfc1k")))
	defer rng.Free()

	data, header, err := Transform(tagmodel.TagMFC1K, tagmodel.CmdGenerate, &mfc1k.Data{}, &mfc1k.Header{}, Extra{})
	require.NoError(t, err)

	_, ok := data.(*mfc1k.Data)
	assert.True(t, ok)
	_, ok = header.(*mfc1k.Header)
	assert.True(t, ok)
}

func TestTransformAmiiboRequiresKeys(t *testing.T) {
	_, _, err := Transform(tagmodel.TagAmiibo, tagmodel.CmdWipe, &amiibo.Data{}, &ntag21x.Header{}, Extra{})
	require.Error(t, err)
	assert.True(t, status.Is(err, status.MemoryError))
}

func TestTransformAmiiboGenerate(t *testing.T) {
	require.NoError(t, rng.Init([]byte("dispatch-amiibo")))
	defer rng.Free()

	keys := &amiibo.DumpedKeyPair{}
	uuid := []byte{0x09, 0xD0, 0x03, 0x01, 0x02, 0xBB, 0x0E, 0x02}

	data, header, err := Transform(tagmodel.TagAmiibo, tagmodel.CmdGenerate, nil, nil, Extra{UUID: uuid, Keys: keys})
	require.NoError(t, err)

	_, ok := data.(*amiibo.Data)
	assert.True(t, ok)
	_, ok = header.(*ntag21x.Header)
	assert.True(t, ok)
}

func TestTransformWrongConcreteTypeRejected(t *testing.T) {
	_, _, err := Transform(tagmodel.TagNTAG215, tagmodel.CmdWipe, &mfc1k.Data{}, nil, Extra{})
	require.Error(t, err)
	assert.True(t, status.Is(err, status.MemoryError))
}

func TestTransformUnknownKind(t *testing.T) {
	_, _, err := Transform(tagmodel.TagUnknown, tagmodel.CmdNone, nil, nil, Extra{})
	require.Error(t, err)
	assert.True(t, status.Is(err, status.UnknownEnumError))
}
