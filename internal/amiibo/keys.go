package amiibo

import "github.com/Firefox2100/librfidx/status"

// DumpedKeySize is the fixed size of a single dumped key record (spec.md
// §3.8), matching the layout produced by console key dumps and compatible
// with amiitool/Proxmark3 key_retail.bin files.
const DumpedKeySize = 80

// DumpedKeyPairSize is the size of a data-key-then-tag-key pair file.
const DumpedKeyPairSize = 2 * DumpedKeySize

// DumpedKey is a single 80-byte dumped key record: hmac_key[16] |
// type_string[14] | rfu | magic_bytes_size | magic_bytes[16] |
// xor_table[32].
type DumpedKey struct {
	HMACKey        [16]byte
	TypeString     [14]byte
	RFU            byte
	MagicBytesSize byte
	MagicBytes     [16]byte
	XORTable       [32]byte
}

// DumpedKeyPair is the combined 160-byte retail key file: the data key
// followed by the tag key.
type DumpedKeyPair struct {
	Data DumpedKey
	Tag  DumpedKey
}

// ParseDumpedKey decodes a single 80-byte dumped key record.
// magic_bytes_size greater than 16 is rejected, matching the original's
// sole validation of dumped key files.
func ParseDumpedKey(raw []byte) (*DumpedKey, error) {
	if len(raw) != DumpedKeySize {
		return nil, status.New(status.AmiiboKeyIOError, "dumped key record must be 80 bytes")
	}
	var k DumpedKey
	copy(k.HMACKey[:], raw[0:16])
	copy(k.TypeString[:], raw[16:30])
	k.RFU = raw[30]
	k.MagicBytesSize = raw[31]
	copy(k.MagicBytes[:], raw[32:48])
	copy(k.XORTable[:], raw[48:80])

	if k.MagicBytesSize > 16 {
		return nil, status.New(status.AmiiboKeyIOError, "magic_bytes_size exceeds 16")
	}
	return &k, nil
}

// Bytes re-serializes a dumped key record to its 80-byte wire form.
func (k *DumpedKey) Bytes() []byte {
	out := make([]byte, DumpedKeySize)
	copy(out[0:16], k.HMACKey[:])
	copy(out[16:30], k.TypeString[:])
	out[30] = k.RFU
	out[31] = k.MagicBytesSize
	copy(out[32:48], k.MagicBytes[:])
	copy(out[48:80], k.XORTable[:])
	return out
}

// LoadDumpedKeys decodes a 160-byte retail key file into its data and tag
// key halves.
func LoadDumpedKeys(raw []byte) (*DumpedKeyPair, error) {
	if len(raw) != DumpedKeyPairSize {
		return nil, status.New(status.AmiiboKeyIOError, "dumped key pair file must be 160 bytes")
	}
	data, err := ParseDumpedKey(raw[0:DumpedKeySize])
	if err != nil {
		return nil, err
	}
	tag, err := ParseDumpedKey(raw[DumpedKeySize:DumpedKeyPairSize])
	if err != nil {
		return nil, err
	}
	return &DumpedKeyPair{Data: *data, Tag: *tag}, nil
}

// SaveDumpedKeys re-serializes a key pair to its 160-byte wire form.
func SaveDumpedKeys(keys *DumpedKeyPair) []byte {
	out := make([]byte, 0, DumpedKeyPairSize)
	out = append(out, keys.Data.Bytes()...)
	out = append(out, keys.Tag.Bytes()...)
	return out
}
