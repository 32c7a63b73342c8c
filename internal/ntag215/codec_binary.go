package ntag215

import (
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/status"
)

// ParseBinary accepts either a bare 540-byte dump (header fields left
// zeroed) or a 596-byte blob (56-byte metadata header followed by the
// 540-byte dump). Any other length fails with BinaryFileSizeError.
func ParseBinary(raw []byte) (*Data, *ntag21x.Header, error) {
	var data Data
	var header ntag21x.Header

	switch len(raw) {
	case Size:
		copy(data[:], raw)
	case ntag21x.HeaderSize + Size:
		copy(header[:], raw[:ntag21x.HeaderSize])
		copy(data[:], raw[ntag21x.HeaderSize:])
	default:
		return nil, nil, status.New(status.BinaryFileSizeError, "NTAG215 binary must be 540 or 596 bytes")
	}
	return &data, &header, nil
}

// SerializeBinary always emits header || data (596 bytes), regardless of
// whether the header was populated, matching the original's
// serialize_binary behavior.
func SerializeBinary(data *Data, header *ntag21x.Header) []byte {
	out := make([]byte, 0, ntag21x.HeaderSize+Size)
	out = append(out, header.Bytes()...)
	out = append(out, data.Bytes()...)
	return out
}
