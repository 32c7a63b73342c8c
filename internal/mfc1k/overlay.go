// Package mfc1k implements the 1024-byte Mifare Classic 1K memory overlay:
// the binary, JSON and NFC codecs, access-bit packing, and the
// generate/wipe/transform operations (component C5). Grounded on
// original_source/include/librfidx/mifare/mifare_classic_1k_core.h and
// src/core/mifare/mifare_classic_1k.c.
package mfc1k

const (
	NumSectors       = 16
	BlocksPerSector  = 4
	BlockSize        = 16
	NumBlocks        = NumSectors * BlocksPerSector // 64
	Size             = NumBlocks * BlockSize        // 1024
	trailerBlockOff  = (BlocksPerSector - 1) * BlockSize
	accessBitsOffset = 6 // within a 16-byte trailer: key_a[6] | access_bits[3] | ...
)

var _ [Size - 1024]int // compile-time size assertion

// Data is the single owned 1024-byte backing array for one Mifare Classic
// 1K tag. Block and sector-trailer accessors alias this array directly.
type Data [Size]byte

// Block returns the 16-byte block at absolute index i (0..63).
func (d *Data) Block(i int) []byte { return d[i*BlockSize : i*BlockSize+BlockSize] }

// SectorDataBlocks returns the three non-trailer 16-byte blocks of sector
// s (0..15) as one contiguous 48-byte slice.
func (d *Data) SectorDataBlocks(s int) []byte {
	base := s * BlocksPerSector * BlockSize
	return d[base : base+trailerBlockOff]
}

// SectorTrailer returns the 16-byte trailer of sector s (0..15):
// key_a[6] | access_bits[3] | user_data | key_b[6].
func (d *Data) SectorTrailer(s int) []byte {
	base := s*BlocksPerSector*BlockSize + trailerBlockOff
	return d[base : base+BlockSize]
}

// Bytes returns the whole 1024-byte flat view.
func (d *Data) Bytes() []byte { return d[:] }

// TrailerKeyA returns the 6-byte key A of a sector trailer.
func TrailerKeyA(trailer []byte) []byte { return trailer[0:6] }

// TrailerAccessBits returns the 3-byte packed access-bit field of a sector
// trailer.
func TrailerAccessBits(trailer []byte) []byte { return trailer[6:9] }

// TrailerUserData returns the single user-data byte of a sector trailer.
func TrailerUserData(trailer []byte) byte { return trailer[9] }

// SetTrailerUserData sets the single user-data byte of a sector trailer.
func SetTrailerUserData(trailer []byte, v byte) { trailer[9] = v }

// TrailerKeyB returns the 6-byte key B of a sector trailer.
func TrailerKeyB(trailer []byte) []byte { return trailer[10:16] }
