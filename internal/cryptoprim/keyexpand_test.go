package cryptoprim

import (
	"crypto/hmac"
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandHMACCTRMatchesManualBlocks(t *testing.T) {
	key := []byte("amiibo-key")
	seed := []byte("seed-bytes")

	got, err := ExpandHMACCTR(key, seed, 48)
	require.NoError(t, err)
	require.Len(t, got, 48)

	block0 := hmac.New(sha256.New, key)
	block0.Write(append([]byte{0x00, 0x00}, seed...))
	want0 := block0.Sum(nil)

	block1 := hmac.New(sha256.New, key)
	block1.Write(append([]byte{0x00, 0x01}, seed...))
	want1 := block1.Sum(nil)[:16]

	assert.Equal(t, want0, got[:32])
	assert.Equal(t, want1, got[32:48])
}

func TestExpandHMACCTRDeterministic(t *testing.T) {
	key := []byte("k")
	seed := []byte("s")
	a, err := ExpandHMACCTR(key, seed, 100)
	require.NoError(t, err)
	b, err := ExpandHMACCTR(key, seed, 100)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExpandHMACCTRZeroLength(t *testing.T) {
	got, err := ExpandHMACCTR([]byte("k"), []byte("s"), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpandHMACCTRRejectsEmptyKey(t *testing.T) {
	_, err := ExpandHMACCTR(nil, []byte("s"), 10)
	require.Error(t, err)
}
