package format

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

func TestExtensionToFormat(t *testing.T) {
	cases := map[string]tagmodel.FileFormat{
		"bin":  tagmodel.FormatBinary,
		".bin": tagmodel.FormatBinary,
		"JSON": tagmodel.FormatJSON,
		"nfc":  tagmodel.FormatNFC,
	}
	for ext, want := range cases {
		got, err := ExtensionToFormat(ext)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestExtensionToFormatRejectsEML(t *testing.T) {
	_, err := ExtensionToFormat(".eml")
	require.Error(t, err)
	assert.True(t, status.Is(err, status.FileFormatError))
}

func TestExtensionToFormatRejectsUnknown(t *testing.T) {
	_, err := ExtensionToFormat(".xyz")
	require.Error(t, err)
	assert.True(t, status.Is(err, status.FileFormatError))
}

func TestNTAG215RoundTripBinary(t *testing.T) {
	require.NoError(t, rng.Init([]byte("format-ntag215-binary")))
	defer rng.Free()

	var data ntag215.Data
	var header ntag21x.Header
	require.NoError(t, ntag215.Generate(&data, &header))

	raw := ntag215.SerializeBinary(&data, &header)
	parsedData, _, err := Parse(tagmodel.TagNTAG215, tagmodel.FormatBinary, raw)
	require.NoError(t, err)
	assert.Equal(t, data.Bytes(), parsedData.(*ntag215.Data).Bytes())

	out, err := Serialize(tagmodel.TagNTAG215, tagmodel.FormatBinary, parsedData, &header)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestMFC1KRoundTripBinary(t *testing.T) {
	require.NoError(t, rng.Init([]byte("format-mfc1k-binary")))
	defer rng.Free()

	var data mfc1k.Data
	var header mfc1k.Header
	require.NoError(t, mfc1k.Generate(&data, &header))

	raw := mfc1k.SerializeBinary(&data)
	parsedData, _, err := Parse(tagmodel.TagMFC1K, tagmodel.FormatBinary, raw)
	require.NoError(t, err)
	assert.Equal(t, data.Bytes(), parsedData.(*mfc1k.Data).Bytes())
}

func TestAmiiboParseRoutesThroughNTAG215Codec(t *testing.T) {
	require.NoError(t, rng.Init([]byte("format-amiibo")))
	defer rng.Free()

	uuid := []byte{0x09, 0xD0, 0x03, 0x01, 0x02, 0xBB, 0x0E, 0x02}
	var data amiibo.Data
	var header ntag21x.Header
	require.NoError(t, amiibo.Generate(&data, &header, uuid))

	raw := ntag215.SerializeBinary(mustNTAG215FromAmiibo(t, &data), &header)

	parsedData, parsedHeader, err := Parse(tagmodel.TagAmiibo, tagmodel.FormatBinary, raw)
	require.NoError(t, err)
	ad, ok := parsedData.(*amiibo.Data)
	require.True(t, ok)
	assert.Equal(t, data.Bytes(), ad.Bytes())
	_, ok = parsedHeader.(*ntag21x.Header)
	assert.True(t, ok)
}

func TestAmiiboSerializeRoutesThroughNTAG215Codec(t *testing.T) {
	require.NoError(t, rng.Init([]byte("format-amiibo-serialize")))
	defer rng.Free()

	uuid := []byte{0x09, 0xD0, 0x03, 0x01, 0x02, 0xBB, 0x0E, 0x02}
	var data amiibo.Data
	var header ntag21x.Header
	require.NoError(t, amiibo.Generate(&data, &header, uuid))

	out, err := Serialize(tagmodel.TagAmiibo, tagmodel.FormatBinary, &data, &header)
	require.NoError(t, err)
	assert.Equal(t, data.Bytes(), out[ntag21x.HeaderSize:])
}

func TestParseEMLNotImplemented(t *testing.T) {
	_, _, err := Parse(tagmodel.TagNTAG215, tagmodel.FormatEML, nil)
	require.Error(t, err)
	assert.True(t, status.Is(err, status.FileFormatError))
}

func mustNTAG215FromAmiibo(t *testing.T, data *amiibo.Data) *ntag215.Data {
	t.Helper()
	nd, err := ntag215.FromBytes(data.Bytes())
	require.NoError(t, err)
	return nd
}
