package amiibo

import (
	"bytes"

	"github.com/Firefox2100/librfidx/internal/cryptoprim"
)

// DerivedKeySize is the size of a derived key (spec.md §3.9): aes_key[16]
// | aes_iv[16] | hmac_key[16].
const DerivedKeySize = 48

// DerivedKey is a key derived from a dumped key and a specific Amiibo's
// keygen salt and UID.
type DerivedKey struct {
	AESKey  [16]byte
	AESIV   [16]byte
	HMACKey [16]byte
}

// DeriveKey implements spec.md §4.6.1. The prepared seed is built from:
//  1. the key's type string, up to and including its first NUL byte
//  2. (16 - magic_bytes_size) leading bytes of write_counter
//  3. magic_bytes_size bytes of magic_bytes
//  4. the first 8 bytes of the manufacturer block, copied twice (16 bytes)
//     -- this double copy is a deliberate quirk of the original, not a
//     typo, and is reproduced bit-for-bit here
//  5. keygen_salt XORed with xor_table (32 bytes)
//
// The seed is expanded to 48 bytes via HMAC-CTR keyed with the dumped
// key's hmac_key.
func DeriveKey(key *DumpedKey, data *Data) (*DerivedKey, error) {
	seed := make([]byte, 0, 14+16+16+32)

	idx := bytes.IndexByte(key.TypeString[:], 0)
	n := len(key.TypeString)
	if idx >= 0 {
		n = idx + 1
	}
	seed = append(seed, key.TypeString[:n]...)

	leadingSeedBytes := 16 - int(key.MagicBytesSize)
	seed = append(seed, data.WriteCounter()[:leadingSeedBytes]...)
	seed = append(seed, key.MagicBytes[:key.MagicBytesSize]...)

	manufacturerPrefix := data.ManufacturerData()[0:8]
	seed = append(seed, manufacturerPrefix...)
	seed = append(seed, manufacturerPrefix...)

	keygenSalt := data.KeygenSalt()
	salted := make([]byte, 32)
	for i := 0; i < 32; i++ {
		salted[i] = keygenSalt[i] ^ key.XORTable[i]
	}
	seed = append(seed, salted...)

	expanded, err := cryptoprim.ExpandHMACCTR(key.HMACKey[:], seed, DerivedKeySize)
	if err != nil {
		return nil, err
	}

	var out DerivedKey
	copy(out.AESKey[:], expanded[0:16])
	copy(out.AESIV[:], expanded[16:32])
	copy(out.HMACKey[:], expanded[32:48])
	return &out, nil
}
