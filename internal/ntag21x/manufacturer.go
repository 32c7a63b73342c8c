// Package ntag21x holds the manufacturer-block layout and metadata-header
// type shared by every NTAG21x-family tag (NTAG215 and, transitively,
// Amiibo). Grounded on original_source/include/librfidx/ntag/ntag21x.h and
// src/core/ntag/ntag21x.c for exact field order and BCC computation.
package ntag21x

import (
	"github.com/Firefox2100/librfidx/internal/rng"
	"github.com/Firefox2100/librfidx/status"
)

// ManufacturerDataSize is the fixed size of the manufacturer data block
// (spec.md §3.3).
const ManufacturerDataSize = 12

// ManufacturerData is a view over exactly 12 bytes of a tag's backing
// storage: uid0[3] | bcc0 | uid1[4] | bcc1 | internal | lock[2]. It is a
// slice, not a copy: every accessor aliases the parent overlay's storage,
// so a write through these methods is observable through any other
// projection (pages, flat bytes) of the same tag at the next read.
type ManufacturerData []byte

// UID0 returns the first three UID bytes.
func (m ManufacturerData) UID0() []byte { return m[0:3] }

// BCC0 returns the first block check character.
func (m ManufacturerData) BCC0() byte { return m[3] }

// SetBCC0 sets the first block check character.
func (m ManufacturerData) SetBCC0(v byte) { m[3] = v }

// UID1 returns the remaining four UID bytes.
func (m ManufacturerData) UID1() []byte { return m[4:8] }

// BCC1 returns the second block check character.
func (m ManufacturerData) BCC1() byte { return m[8] }

// SetBCC1 sets the second block check character.
func (m ManufacturerData) SetBCC1(v byte) { m[8] = v }

// Internal returns the internal/lock-class byte, nominally 0x48.
func (m ManufacturerData) Internal() byte { return m[9] }

// Lock returns the static lock bytes.
func (m ManufacturerData) Lock() []byte { return m[10:12] }

// ValidateManufacturer enforces the four invariants of spec.md §3.3. A
// violated UID byte or either BCC yields NTAG21xUIDError; an unexpected
// internal byte yields NTAG21xFixedBytesError so callers can downgrade it
// to a warning instead of a hard failure.
func ValidateManufacturer(m ManufacturerData) error {
	if len(m) != ManufacturerDataSize {
		return status.New(status.NTAG21xUIDError, "manufacturer data must be 12 bytes")
	}
	uid0 := m.UID0()
	if uid0[0] != 0x04 {
		return status.New(status.NTAG21xUIDError, "uid0[0] must be 0x04")
	}
	wantBCC0 := uint8(0x88) ^ uid0[0] ^ uid0[1] ^ uid0[2]
	if m.BCC0() != wantBCC0 {
		return status.New(status.NTAG21xUIDError, "bcc0 mismatch")
	}
	uid1 := m.UID1()
	wantBCC1 := uid1[0] ^ uid1[1] ^ uid1[2] ^ uid1[3]
	if m.BCC1() != wantBCC1 {
		return status.New(status.NTAG21xUIDError, "bcc1 mismatch")
	}
	if m.Internal() != 0x48 {
		return status.New(status.NTAG21xFixedBytesError, "internal byte is not 0x48")
	}
	return nil
}

// RandomizeUID fixes uid0[0] = 0x04, draws six random bytes for the
// remaining UID (the last two bytes of uid0 and all four bytes of uid1),
// and recomputes both BCCs. It fails with status.DRNGError if the
// process-scoped RNG context has not been initialized.
func RandomizeUID(m ManufacturerData) error {
	if len(m) != ManufacturerDataSize {
		return status.New(status.NTAG21xUIDError, "manufacturer data must be 12 bytes")
	}

	random := make([]byte, 6)
	if err := rng.Read(random); err != nil {
		return err
	}

	uid0 := m.UID0()
	uid0[0] = 0x04
	uid0[1] = random[0]
	uid0[2] = random[1]

	uid1 := m.UID1()
	copy(uid1, random[2:6])

	m.SetBCC0(uint8(0x88) ^ uid0[0] ^ uid0[1] ^ uid0[2])
	m.SetBCC1(uid1[0] ^ uid1[1] ^ uid1[2] ^ uid1[3])
	return nil
}
