package cryptoprim

import (
	"crypto/hmac"
	"crypto/sha256"
	"hash"

	"github.com/Firefox2100/librfidx/status"
)

// HMACSHA256 computes a single HMAC-SHA256 digest of msg under key.
func HMACSHA256(key, msg []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, status.New(status.NumericalOperationFailed, "HMAC key must not be empty")
	}
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil), nil
}

// HMACContext is a reusable HMAC-SHA256 context supporting
// reset/update/finalize, matching the reusable-context shape spec.md §4.2
// asks for. Reset clears accumulated state but keeps the key, so a single
// context can compute many independent digests under the same key without
// reallocating the underlying hash.Hash.
type HMACContext struct {
	key []byte
	h   hash.Hash
}

// NewHMACContext constructs a context keyed with key.
func NewHMACContext(key []byte) *HMACContext {
	return &HMACContext{key: key, h: hmac.New(sha256.New, key)}
}

// Reset clears any accumulated input, leaving the key in place.
func (c *HMACContext) Reset() {
	c.h.Reset()
}

// Update feeds additional input into the digest.
func (c *HMACContext) Update(p []byte) {
	c.h.Write(p)
}

// Finalize returns the 32-byte digest of everything written since the last
// Reset (or construction).
func (c *HMACContext) Finalize() []byte {
	return c.h.Sum(nil)
}
