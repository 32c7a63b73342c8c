// Package ntag215 implements the 540-byte NTAG215 memory overlay: the
// binary, JSON and NFC codecs, and the generate/wipe/transform operations
// (component C4). Grounded on
// original_source/include/librfidx/ntag/ntag215_core.h and
// src/core/ntag/ntag215.c.
package ntag215

import (
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/status"
)

// NumPages is the total number of 4-byte pages in an NTAG215 tag.
const NumPages = 135

// NumUserPages is the number of pages readable/writable as general user
// memory (the rest is manufacturer data, capability, dynamic lock and
// configuration).
const NumUserPages = 126

// Size is the fixed size, in bytes, of an NTAG215 memory image.
const Size = NumPages * 4

const (
	offManufacturer = 0
	offCapability   = 12
	offUserMemory   = 16
	offDynamicLock  = offUserMemory + NumUserPages*4 // 520
	offReserved     = offDynamicLock + 3             // 523
	offConfig       = offReserved + 1                // 524
	offCfg0         = offConfig
	offCfg1         = offConfig + 4
	offPasswd       = offConfig + 8
	offPack         = offConfig + 12
	offConfigRFU    = offConfig + 14
)

var _ [Size - 540]int // compile-time size assertion

// Data is the single owned 540-byte backing array for one NTAG215 tag.
// Every accessor below returns a slice aliasing this array, so a mutation
// through any one view (manufacturer data, pages, typed fields) is
// observable through every other view at the next read, per spec.md §4.9.
type Data [Size]byte

// ManufacturerData returns the manufacturer-block view (spec.md §3.3).
func (d *Data) ManufacturerData() ntag21x.ManufacturerData {
	return ntag21x.ManufacturerData(d[offManufacturer : offManufacturer+ntag21x.ManufacturerDataSize])
}

// Capability returns the 4-byte capability container view.
func (d *Data) Capability() []byte { return d[offCapability : offCapability+4] }

// UserMemory returns all 126 user pages as a flat 504-byte slice.
func (d *Data) UserMemory() []byte { return d[offUserMemory:offDynamicLock] }

// DynamicLock returns the 3-byte dynamic lock region.
func (d *Data) DynamicLock() []byte { return d[offDynamicLock:offReserved] }

// Reserved returns the single reserved byte between dynamic lock and
// configuration.
func (d *Data) Reserved() byte { return d[offReserved] }

// Cfg0 returns the first 4-byte configuration word.
func (d *Data) Cfg0() []byte { return d[offCfg0 : offCfg0+4] }

// Cfg1 returns the second 4-byte configuration word.
func (d *Data) Cfg1() []byte { return d[offCfg1 : offCfg1+4] }

// Passwd returns the 4-byte password.
func (d *Data) Passwd() []byte { return d[offPasswd : offPasswd+4] }

// Pack returns the 2-byte password acknowledge.
func (d *Data) Pack() []byte { return d[offPack : offPack+2] }

// ConfigReserved returns the final 2 reserved configuration bytes.
func (d *Data) ConfigReserved() []byte { return d[offConfigRFU : offConfigRFU+2] }

// Page returns the 4-byte page at index i (0..134).
func (d *Data) Page(i int) []byte { return d[i*4 : i*4+4] }

// Bytes returns the whole 540-byte flat view.
func (d *Data) Bytes() []byte { return d[:] }

// FromBytes copies raw into a new Data, failing if raw is not exactly
// Size bytes. Used by the format layer to reinterpret an Amiibo memory
// image (which shares NTAG215's byte layout) back as plain NTAG215 data.
func FromBytes(raw []byte) (*Data, error) {
	if len(raw) != Size {
		return nil, status.New(status.BinaryFileSizeError, "NTAG215 memory must be exactly 540 bytes")
	}
	var d Data
	copy(d[:], raw)
	return &d, nil
}
