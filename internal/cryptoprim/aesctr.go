// Package cryptoprim implements the three primitive operations the rest of
// this module is built on: AES-128-CTR streaming, HMAC-SHA256, and the
// HMAC-CTR key-stream expander used by Amiibo key derivation. Coding style
// is grounded on pkg/ntag424/crypto.go's habit of hand-rolling block-level
// primitives over crypto/aes and crypto/cipher rather than reaching for the
// single highest-level stdlib helper, because the counter-increment and
// per-block semantics here need to be directly testable.
package cryptoprim

import (
	"crypto/aes"

	"github.com/Firefox2100/librfidx/status"
)

const blockSize = 16

// CipherCTR XORs data in place with the AES-128-CTR keystream generated
// from key and the 16-byte initial counter block. The counter is
// incremented as a big-endian 128-bit integer once per 16-byte stride; data
// need not be a multiple of the block size, in which case the final stride
// is partial. The operation is its own inverse: calling it twice with the
// same key and initial counter restores the original bytes.
func CipherCTR(key, counter []byte, data []byte) error {
	if len(key) != 16 {
		return status.New(status.NumericalOperationFailed, "AES-CTR key must be 16 bytes")
	}
	if len(counter) != blockSize {
		return status.New(status.NumericalOperationFailed, "AES-CTR counter must be 16 bytes")
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return status.Wrap(status.NumericalOperationFailed, "failed to construct AES cipher", err)
	}

	ctr := make([]byte, blockSize)
	copy(ctr, counter)
	keystream := make([]byte, blockSize)

	for off := 0; off < len(data); off += blockSize {
		block.Encrypt(keystream, ctr)
		end := off + blockSize
		if end > len(data) {
			end = len(data)
		}
		for i := off; i < end; i++ {
			data[i] ^= keystream[i-off]
		}
		incrementCounterBE128(ctr)
	}
	return nil
}

// incrementCounterBE128 increments a 16-byte buffer in place as a
// big-endian 128-bit integer.
func incrementCounterBE128(ctr []byte) {
	for i := len(ctr) - 1; i >= 0; i-- {
		ctr[i]++
		if ctr[i] != 0 {
			return
		}
	}
}
