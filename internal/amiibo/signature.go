package amiibo

import (
	"bytes"

	"github.com/Firefox2100/librfidx/internal/cryptoprim"
	"github.com/Firefox2100/librfidx/status"
)

// signingBufferSize is the size of the scratch buffer the two HMAC
// signatures are computed over (spec.md §4.6.3).
const signingBufferSize = 480

// buildSigningBuffer assembles the 480-byte signing buffer from data's
// non-contiguous regions:
//
//	[0:36)    fixed_a5 through the end of tag_configs
//	[36:396)  application_data
//	[396:428) left zero here; filled with the tag signature below
//	[428:436) the first 8 bytes of the manufacturer block
//	[436:480) model_info followed by keygen_salt
func buildSigningBuffer(data *Data) []byte {
	buf := make([]byte, signingBufferSize)
	copy(buf[0:36], data.tagBytesForSigning())
	copy(buf[36:396], data.ApplicationData())
	copy(buf[428:436], data.ManufacturerData()[0:8])
	copy(buf[436:448], data.ModelInfo())
	copy(buf[448:480], data.KeygenSalt())
	return buf
}

// GenerateSignature computes the tag and data signatures without writing
// them into data. Must only be called on decrypted Amiibo data.
func GenerateSignature(tagKey, dataKey *DerivedKey, data *Data) (tagHash, dataHash []byte, err error) {
	buf := buildSigningBuffer(data)

	tagHash, err = cryptoprim.HMACSHA256(tagKey.HMACKey[:], buf[428:480])
	if err != nil {
		return nil, nil, err
	}
	copy(buf[396:428], tagHash)

	// Offset 1, not 0: the fixed 0xA5 byte is deliberately excluded from
	// the data signature.
	dataHash, err = cryptoprim.HMACSHA256(dataKey.HMACKey[:], buf[1:480])
	if err != nil {
		return nil, nil, err
	}
	return tagHash, dataHash, nil
}

// Sign computes both signatures and writes them into data's tag_hash and
// data_hash fields.
func Sign(tagKey, dataKey *DerivedKey, data *Data) error {
	tagHash, dataHash, err := GenerateSignature(tagKey, dataKey, data)
	if err != nil {
		return err
	}
	copy(data.TagHash(), tagHash)
	copy(data.DataHash(), dataHash)
	return nil
}

// Validate recomputes both signatures and compares them against the ones
// stored in data, returning status.AmiiboHMACValidationError on mismatch.
func Validate(tagKey, dataKey *DerivedKey, data *Data) error {
	tagHash, dataHash, err := GenerateSignature(tagKey, dataKey, data)
	if err != nil {
		return err
	}
	if !bytes.Equal(tagHash, data.TagHash()) {
		return status.New(status.AmiiboHMACValidationError, "tag signature mismatch")
	}
	if !bytes.Equal(dataHash, data.DataHash()) {
		return status.New(status.AmiiboHMACValidationError, "data signature mismatch")
	}
	return nil
}
