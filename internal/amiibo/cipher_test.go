package amiibo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipherIsSelfInverse(t *testing.T) {
	keys := sampleKeyPair(t)
	var data Data
	for i := range data.ApplicationData() {
		data.ApplicationData()[i] = byte(i)
	}
	for i := range data.KeygenSalt() {
		data.KeygenSalt()[i] = byte(i * 7)
	}
	key, err := DeriveKey(&keys.Data, &data)
	require.NoError(t, err)

	original := append([]byte(nil), data.Bytes()...)

	require.NoError(t, Cipher(key, &data))
	assert.NotEqual(t, original, data.Bytes())

	require.NoError(t, Cipher(key, &data))
	assert.Equal(t, original, data.Bytes())
}

func TestCipherOnlyTouchesTagConfigsAndApplicationData(t *testing.T) {
	keys := sampleKeyPair(t)
	var data Data
	copy(data.ManufacturerData()[0:8], []byte{0x04, 1, 2, 3, 4, 5, 6, 7})
	copy(data.ModelInfo(), []byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9})
	key, err := DeriveKey(&keys.Data, &data)
	require.NoError(t, err)

	manufacturerBefore := append([]byte(nil), data.ManufacturerData()...)
	modelInfoBefore := append([]byte(nil), data.ModelInfo()...)

	require.NoError(t, Cipher(key, &data))

	assert.Equal(t, manufacturerBefore, []byte(data.ManufacturerData()))
	assert.Equal(t, modelInfoBefore, data.ModelInfo())
}
