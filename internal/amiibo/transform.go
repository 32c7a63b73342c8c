package amiibo

import (
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/internal/rng"
	"github.com/Firefox2100/librfidx/internal/tagmodel"
	"github.com/Firefox2100/librfidx/status"
)

// Generate zeros data and header, draws a fresh 32-byte keygen salt,
// copies the 8-byte uuid into the start of model_info, randomizes the
// NTAG UID and runs the format pass. Per spec.md §4.6.5.
func Generate(data *Data, header *ntag21x.Header, uuid []byte) error {
	if len(uuid) != 8 {
		return status.New(status.NumericalOperationFailed, "amiibo uuid must be 8 bytes")
	}
	*data = Data{}
	*header = ntag21x.Header{}

	if err := rng.Read(data.KeygenSalt()); err != nil {
		return err
	}
	copy(data.ModelInfo()[0:8], uuid)

	if err := ntag21x.RandomizeUID(data.ManufacturerData()); err != nil {
		return err
	}
	FormatDump(data, header)
	return nil
}

// Wipe resets application_data (360 bytes) only, leaving the UID, model
// information and tag configuration untouched. Per spec.md §4.6.6. Must
// only be called on decrypted data.
func Wipe(data *Data) {
	app := data.ApplicationData()
	for i := range app {
		app[i] = 0
	}
}

// Transform implements the derive -> mutate -> format -> sign -> encrypt
// state machine of spec.md §4.6.7. CmdNone returns data and header
// unchanged without looking at keys; every other command requires keys
// (even GENERATE, since the freshly generated tag must still be signed
// and encrypted before it can be written). uuid is required only for
// GENERATE. The derived keys are zeroed before Transform returns.
//
// The final encryption step uses tagKey, not dataKey, although the
// mutate step decrypts with dataKey: this quirk of the original
// implementation is reproduced bit-for-bit.
func Transform(
	data *Data,
	header *ntag21x.Header,
	cmd tagmodel.TransformCommand,
	uuid []byte,
	keys *DumpedKeyPair,
) (*Data, *ntag21x.Header, error) {
	if cmd == tagmodel.CmdNone {
		return data, header, nil
	}
	if keys == nil {
		return nil, nil, status.New(status.MemoryError, "amiibo transform requires dumped keys")
	}

	switch cmd {
	case tagmodel.CmdGenerate:
		if data == nil {
			data = &Data{}
		}
		if header == nil {
			header = &ntag21x.Header{}
		}
		if err := Generate(data, header, uuid); err != nil {
			return nil, nil, err
		}
	case tagmodel.CmdWipe, tagmodel.CmdRandomizeUID:
		if data == nil {
			return nil, nil, status.New(status.MemoryError, "transform requires existing amiibo data")
		}
	default:
		return nil, nil, status.New(status.UnknownEnumError, "unknown transform command")
	}

	tagKey, err := DeriveKey(&keys.Tag, data)
	if err != nil {
		return nil, nil, err
	}
	dataKey, err := DeriveKey(&keys.Data, data)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		*tagKey = DerivedKey{}
		*dataKey = DerivedKey{}
	}()

	switch cmd {
	case tagmodel.CmdWipe:
		if err := Cipher(dataKey, data); err != nil {
			return nil, nil, err
		}
		Wipe(data)
	case tagmodel.CmdRandomizeUID:
		if err := Cipher(dataKey, data); err != nil {
			return nil, nil, err
		}
		if err := ntag21x.RandomizeUID(data.ManufacturerData()); err != nil {
			return nil, nil, err
		}
	}

	FormatDump(data, header)
	if err := Sign(tagKey, dataKey, data); err != nil {
		return nil, nil, err
	}
	if err := Cipher(tagKey, data); err != nil {
		return nil, nil, err
	}

	return data, header, nil
}
