package ntag215

import (
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/internal/tagmodel"
	"github.com/Firefox2100/librfidx/status"
)

// Generate zeros data and header, then randomizes the manufacturer UID.
// Fails with DRNGError if the process-scoped RNG is not initialized.
func Generate(data *Data, header *ntag21x.Header) error {
	*data = Data{}
	*header = ntag21x.Header{}
	return ntag21x.RandomizeUID(data.ManufacturerData())
}

// Wipe zeros every user page, the password, the password-acknowledge
// bytes, and the dynamic lock region; manufacturer data, capability and
// the static lock bytes are left untouched.
func Wipe(data *Data) {
	for i := range data.UserMemory() {
		data.UserMemory()[i] = 0
	}
	for i := range data.Passwd() {
		data.Passwd()[i] = 0
	}
	for i := range data.Pack() {
		data.Pack()[i] = 0
	}
	for i := range data.DynamicLock() {
		data.DynamicLock()[i] = 0
	}
}

// Transform dispatches on cmd: CmdNone is a no-op; CmdWipe calls Wipe;
// CmdGenerate allocates fresh data/header if either is nil, then calls
// Generate; CmdRandomizeUID randomizes only the manufacturer block. Any
// other command fails with UnknownEnumError.
func Transform(data *Data, header *ntag21x.Header, cmd tagmodel.TransformCommand) (*Data, *ntag21x.Header, error) {
	switch cmd {
	case tagmodel.CmdNone:
		return data, header, nil
	case tagmodel.CmdWipe:
		if data == nil {
			return nil, nil, status.New(status.MemoryError, "wipe requires existing data")
		}
		Wipe(data)
		return data, header, nil
	case tagmodel.CmdGenerate:
		if data == nil {
			data = &Data{}
		}
		if header == nil {
			header = &ntag21x.Header{}
		}
		if err := Generate(data, header); err != nil {
			return nil, nil, err
		}
		return data, header, nil
	case tagmodel.CmdRandomizeUID:
		if data == nil {
			return nil, nil, status.New(status.MemoryError, "randomize-uid requires existing data")
		}
		if err := ntag21x.RandomizeUID(data.ManufacturerData()); err != nil {
			return nil, nil, err
		}
		return data, header, nil
	default:
		return nil, nil, status.New(status.UnknownEnumError, "unknown transform command")
	}
}
