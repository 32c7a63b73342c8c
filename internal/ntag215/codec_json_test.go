package ntag215

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONRoundTripUserPages(t *testing.T) {
	d := sampleData()
	h := sampleHeader()

	s, err := SerializeJSON(d, h)
	require.NoError(t, err)

	parsed, parsedHeader, err := ParseJSON(s)
	require.NoError(t, err)

	for i := 0; i < NumUserPages; i++ {
		assert.Equal(t, d.Page(i), parsed.Page(i), "page %d", i)
	}
	assert.Equal(t, byte(134), parsedHeader.MemoryMax(), "memory_max must be forced to 134")
	assert.Equal(t, h.Version(), parsedHeader.Version())
}

func TestJSONParseIgnoresPagesBeyond125(t *testing.T) {
	d := sampleData()
	h := sampleHeader()
	s, err := SerializeJSON(d, h)
	require.NoError(t, err)

	parsed, _, err := ParseJSON(s)
	require.NoError(t, err)

	for i := NumUserPages; i < NumPages; i++ {
		assert.Equal(t, [4]byte{}, [4]byte(parsed.Page(i)), "page %d beyond 125 must stay zero", i)
	}
}

func TestJSONParseRejectsMissingBlock(t *testing.T) {
	_, _, err := ParseJSON(`{"Created":"x","FileType":"mfu","Card":{"Version":"0004040201001103","TBO_0":"0000","TBO_1":"00","Signature":"0000000000000000000000000000000000000000000000000000000000000000","Counter0":"000000","Tearing0":"00","Counter1":"000000","Tearing1":"00","Counter2":"000000","Tearing2":"00"},"blocks":{}}`)
	require.Error(t, err)
}

func TestJSONParseRejectsMalformedDocument(t *testing.T) {
	_, _, err := ParseJSON("not json")
	require.Error(t, err)
}
