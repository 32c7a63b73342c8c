package cryptoprim

import "github.com/Firefox2100/librfidx/status"

// ExpandHMACCTR implements the HMAC-CTR key-stream expander of spec.md
// §4.2: starting from a 16-bit big-endian counter i = 0, each 32-byte
// output block is HMAC-SHA256(key, counter_be16 || seed), after which i is
// incremented; the final block is truncated to fit length. The HMAC
// context is reset and reused between blocks rather than reconstructed, so
// behavior is identical to (and this is verified against) computing fresh
// HMACs per block.
func ExpandHMACCTR(key, seed []byte, length int) ([]byte, error) {
	if length < 0 {
		return nil, status.New(status.NumericalOperationFailed, "expansion length must not be negative")
	}
	if len(key) == 0 {
		return nil, status.New(status.NumericalOperationFailed, "HMAC-CTR key must not be empty")
	}

	out := make([]byte, 0, length)
	ctx := NewHMACContext(key)
	var counter uint16

	prefixed := make([]byte, 2+len(seed))
	copy(prefixed[2:], seed)

	for len(out) < length {
		prefixed[0] = byte(counter >> 8)
		prefixed[1] = byte(counter)

		ctx.Reset()
		ctx.Update(prefixed)
		block := ctx.Finalize()

		remaining := length - len(out)
		if remaining < len(block) {
			block = block[:remaining]
		}
		out = append(out, block...)
		counter++
	}
	return out, nil
}
