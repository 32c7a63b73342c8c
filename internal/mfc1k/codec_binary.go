package mfc1k

import "github.com/Firefox2100/librfidx/status"

// ParseBinary accepts exactly 1024 bytes. The metadata header is not
// present in the binary format and is synthesized: atqa = 00 04, sak =
// 0x08, UID copied from block 0 bytes 0..3 and zero-padded to 7 bytes.
func ParseBinary(raw []byte) (*Data, *Header, error) {
	if len(raw) != Size {
		return nil, nil, status.New(status.BinaryFileSizeError, "Mifare Classic 1K binary must be exactly 1024 bytes")
	}
	var data Data
	copy(data[:], raw)

	header := &Header{ATQA: [2]byte{0x00, 0x04}, SAK: 0x08}
	copy(header.UID[:4], data.Block(0)[0:4])
	return &data, header, nil
}

// SerializeBinary emits the raw 1024 bytes; the header is not written
// (the binary format carries no metadata header).
func SerializeBinary(data *Data) []byte {
	out := make([]byte, Size)
	copy(out, data.Bytes())
	return out
}
