package amiibo

import "github.com/Firefox2100/librfidx/internal/cryptoprim"

// cipherRegionSize is the size of the tag_configs || application_data
// region the cipher runs over (spec.md §4.6.2). The two regions are not
// contiguous in Data (tag_hash, model_info, keygen_salt and data_hash sit
// between them), so the cipher operates on a scratch copy and writes the
// result back into each region separately.
const cipherRegionSize = tagConfigsSize + applicationSize

// Cipher runs AES-128-CTR over tag_configs and application_data in place,
// keyed and IV'd from key. The operation is self-inverse: calling it twice
// with the same key restores the original bytes.
func Cipher(key *DerivedKey, data *Data) error {
	buf := make([]byte, cipherRegionSize)
	copy(buf[0:tagConfigsSize], data.TagConfigs())
	copy(buf[tagConfigsSize:], data.ApplicationData())

	if err := cryptoprim.CipherCTR(key.AESKey[:], key.AESIV[:], buf); err != nil {
		return err
	}

	copy(data.TagConfigs(), buf[0:tagConfigsSize])
	copy(data.ApplicationData(), buf[tagConfigsSize:])
	return nil
}
