// Package bytesutil provides the low-level byte/hex/text helpers every
// codec in this module builds on: hex<->byte conversion, whitespace
// stripping, and an amortized-append text builder.
package bytesutil

import (
	"encoding/hex"
	"strings"
	"unicode"

	"github.com/Firefox2100/librfidx/status"
)

// HexToBytes decodes an even-length hex string into exactly n bytes. It
// fails with status.NumericalOperationFailed on non-hex characters, an odd
// length, or a decoded length that does not equal n.
func HexToBytes(s string, n int) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, status.Wrap(status.NumericalOperationFailed, "hex decode failed", err)
	}
	if len(b) != n {
		return nil, status.New(status.NumericalOperationFailed, "hex decoded length mismatch")
	}
	return b, nil
}

// BytesToHex renders exactly n bytes of b as 2n uppercase hex characters.
// If len(b) < n it still encodes whatever is present; callers that need a
// fixed-width guarantee slice b themselves.
func BytesToHex(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return strings.ToUpper(hex.EncodeToString(b))
}

// StripWhitespace returns a copy of s with every Unicode whitespace rune
// removed.
func StripWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
