package mfc1k

import (
	"github.com/Firefox2100/librfidx/internal/rng"
	"github.com/Firefox2100/librfidx/internal/tagmodel"
	"github.com/Firefox2100/librfidx/status"
)

// RandomizeUID rewrites the start of block 0, depending on the detected
// UID length: the 4-byte branch writes a random NUID to bytes 0..3 and its
// BCC to byte 4; the 7-byte branch writes random bytes to bytes 0..6 and
// computes no BCC. Detection reproduces the original
// ambiguity documented in spec.md §9 and DESIGN.md: the 4-byte NUID branch
// is taken whenever b0^b1^b2^b3 == b4 on the existing block, which is
// trivially true on an all-zero block (so Generate always takes it).
func RandomizeUID(data *Data) error {
	block0 := data.Block(0)
	if block0[0]^block0[1]^block0[2]^block0[3] == block0[4] {
		random := make([]byte, 4)
		if err := rng.Read(random); err != nil {
			return err
		}
		copy(block0[0:4], random)
		block0[4] = random[0] ^ random[1] ^ random[2] ^ random[3]
	} else {
		random := make([]byte, 7)
		if err := rng.Read(random); err != nil {
			return err
		}
		copy(block0[0:7], random)
	}
	return nil
}

// syncHeaderUID re-derives header.UID from the current block 0 contents
// using the same 4-byte-vs-7-byte detection RandomizeUID uses, so the
// carried-alongside Header stays consistent after a UID-affecting
// transform.
func syncHeaderUID(data *Data, header *Header) {
	block0 := data.Block(0)
	header.UID = [7]byte{}
	if block0[0]^block0[1]^block0[2]^block0[3] == block0[4] {
		copy(header.UID[:4], block0[0:4])
	} else {
		copy(header.UID[:], block0[0:7])
	}
}

// Generate zeros everything, then randomizes the NUID in block 0 (the
// zeroed block always takes the 4-byte branch).
func Generate(data *Data, header *Header) error {
	*data = Data{}
	if err := RandomizeUID(data); err != nil {
		return err
	}
	*header = Header{ATQA: [2]byte{0x00, 0x04}, SAK: 0x08}
	syncHeaderUID(data, header)
	return nil
}

// Wipe preserves sector 0 block 0 (the read-only manufacturer block),
// zeros all other data blocks, and resets every trailer (including sector
// 0's) to key_a = FF×6, access_bits = FF 07 80, user_data = 0x69, key_b =
// FF×6.
func Wipe(data *Data) {
	for s := 0; s < NumSectors; s++ {
		db := data.SectorDataBlocks(s)
		start := 0
		if s == 0 {
			start = BlockSize // preserve block 0
		}
		for i := start; i < len(db); i++ {
			db[i] = 0
		}

		trailer := data.SectorTrailer(s)
		ka := TrailerKeyA(trailer)
		kb := TrailerKeyB(trailer)
		for i := range ka {
			ka[i] = 0xFF
		}
		for i := range kb {
			kb[i] = 0xFF
		}
		ab := TrailerAccessBits(trailer)
		ab[0], ab[1], ab[2] = 0xFF, 0x07, 0x80
		SetTrailerUserData(trailer, 0x69)
	}
}

// Transform dispatches on cmd, mirroring ntag215.Transform's shape.
func Transform(data *Data, header *Header, cmd tagmodel.TransformCommand) (*Data, *Header, error) {
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
			header = &Header{}
		}
		if err := Generate(data, header); err != nil {
			return nil, nil, err
		}
		return data, header, nil
	case tagmodel.CmdRandomizeUID:
		if data == nil {
			return nil, nil, status.New(status.MemoryError, "randomize-uid requires existing data")
		}
		if err := RandomizeUID(data); err != nil {
			return nil, nil, err
		}
		if header != nil {
			syncHeaderUID(data, header)
		}
		return data, header, nil
	default:
		return nil, nil, status.New(status.UnknownEnumError, "unknown transform command")
	}
}
