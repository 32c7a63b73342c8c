// Package amiibo implements the Amiibo cryptographic application layer that
// sits on top of an NTAG215 memory image (component C6): key derivation,
// the AES-CTR cipher over the encrypted region, the two HMAC-SHA256
// signatures, the format pass, and generate/wipe/transform composition.
// Grounded on original_source/include/librfidx/application/amiibo_core.h
// and src/core/application/amiibo.c.
package amiibo

import (
	"github.com/Firefox2100/librfidx/internal/ntag21x"
	"github.com/Firefox2100/librfidx/status"
)

// Size is the fixed size, in bytes, of an Amiibo memory image. It is
// layout-identical to an NTAG215 image: the Amiibo application data
// occupies the same 540 bytes, just interpreted through a different typed
// view (spec.md §4.9).
const Size = 540

const (
	offManufacturer    = 0
	offCapability      = 12
	offFixedA5         = 16
	offWriteCounter    = 17
	offUnknown1        = 19
	offTagConfigs      = 20
	tagConfigsSize     = 32
	offTagHash         = offTagConfigs + tagConfigsSize // 52
	offModelInfo       = offTagHash + 32                // 84
	modelInfoSize      = 12
	offKeygenSalt      = offModelInfo + modelInfoSize // 96
	offDataHash        = offKeygenSalt + 32           // 128
	offApplicationData = offDataHash + 32             // 160
	applicationSize    = 360
	offDynamicLock     = offApplicationData + applicationSize // 520
	offReserved        = offDynamicLock + 3                   // 523
	offConfig          = offReserved + 1                      // 524
	offCfg0            = offConfig
	offCfg1            = offConfig + 4
	offPasswd          = offConfig + 8
	offPack            = offConfig + 12
	offConfigRFU       = offConfig + 14
)

var _ [Size - 540]int // compile-time size assertion

// Data is the single owned 540-byte backing array for one Amiibo tag.
// Every accessor aliases this array, consistent with the multi-view
// overlay used by ntag215.Data and mfc1k.Data.
type Data [Size]byte

// ManufacturerData returns the manufacturer-block view (spec.md §3.3).
func (d *Data) ManufacturerData() ntag21x.ManufacturerData {
	return ntag21x.ManufacturerData(d[offManufacturer : offManufacturer+ntag21x.ManufacturerDataSize])
}

// Capability returns the 4-byte capability container.
func (d *Data) Capability() []byte { return d[offCapability : offCapability+4] }

// FixedA5 returns the fixed byte expected to hold 0xA5.
func (d *Data) FixedA5() byte { return d[offFixedA5] }

// SetFixedA5 sets the fixed byte.
func (d *Data) SetFixedA5(v byte) { d[offFixedA5] = v }

// WriteCounter returns the 2-byte write counter.
func (d *Data) WriteCounter() []byte { return d[offWriteCounter : offWriteCounter+2] }

// Unknown1 returns the single unidentified byte between write_counter and
// tag_configs.
func (d *Data) Unknown1() byte { return d[offUnknown1] }

// TagConfigs returns the 32-byte tag configuration region (settings,
// counters, dates, CRC, nickname). AES-CTR encrypted.
func (d *Data) TagConfigs() []byte { return d[offTagConfigs : offTagConfigs+tagConfigsSize] }

// TagHash returns the 32-byte tag signature.
func (d *Data) TagHash() []byte { return d[offTagHash : offTagHash+32] }

// ModelInfo returns the 12-byte model information block.
func (d *Data) ModelInfo() []byte { return d[offModelInfo : offModelInfo+modelInfoSize] }

// KeygenSalt returns the 32-byte key generation salt.
func (d *Data) KeygenSalt() []byte { return d[offKeygenSalt : offKeygenSalt+32] }

// DataHash returns the 32-byte application data signature.
func (d *Data) DataHash() []byte { return d[offDataHash : offDataHash+32] }

// ApplicationData returns the 360-byte application data region. AES-CTR
// encrypted and covered by the data signature.
func (d *Data) ApplicationData() []byte {
	return d[offApplicationData : offApplicationData+applicationSize]
}

// DynamicLock returns the 3-byte dynamic lock region.
func (d *Data) DynamicLock() []byte { return d[offDynamicLock:offReserved] }

// Reserved returns the reserved byte between dynamic lock and
// configuration.
func (d *Data) Reserved() byte { return d[offReserved] }

// SetReserved sets the reserved byte.
func (d *Data) SetReserved(v byte) { d[offReserved] = v }

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

// Bytes returns the whole 540-byte flat view.
func (d *Data) Bytes() []byte { return d[:] }

// tagBytesForSigning returns the 36 bytes (fixed_a5 through the end of
// tag_configs) that form the first segment of the 480-byte signing
// buffer.
func (d *Data) tagBytesForSigning() []byte { return d[offFixedA5:offTagHash] }

// FromBytes reinterprets a 540-byte NTAG215-shaped memory image as Amiibo
// data. The two are layout-identical (spec.md §4.9): an Amiibo is always
// loaded and saved through the NTAG215 binary/JSON/NFC codecs, then
// reinterpreted through this typed view, exactly as the original overlays
// an AmiiboData union onto an Ntag215Data union.
func FromBytes(raw []byte) (*Data, error) {
	if len(raw) != Size {
		return nil, status.New(status.BinaryFileSizeError, "Amiibo data must be 540 bytes")
	}
	var d Data
	copy(d[:], raw)
	return &d, nil
}
