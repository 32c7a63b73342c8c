package amiibo

import "github.com/Firefox2100/librfidx/internal/ntag21x"

// FormatDump reimposes the fixed control values an Amiibo dump must carry
// to simulate or write cleanly, per spec.md §4.6.4.
func FormatDump(data *Data, header *ntag21x.Header) {
	data.SetFixedA5(0xA5)

	dl := data.DynamicLock()
	dl[0], dl[1], dl[2] = 0x01, 0x00, 0x0F
	data.SetReserved(0xBD)

	copy(data.Cfg0(), []byte{0x00, 0x00, 0x00, 0x04})
	copy(data.Cfg1(), []byte{0x5F, 0x00, 0x00, 0x00})
	copy(data.Capability(), []byte{0xF1, 0x10, 0xFF, 0xEE})
	copy(data.Pack(), []byte{0x80, 0x80})
	cr := data.ConfigReserved()
	cr[0], cr[1] = 0x00, 0x00

	m := data.ManufacturerData()
	m[9] = 0x48 // internal
	copy(m.Lock(), []byte{0x0F, 0xE0})

	uid0 := m.UID0()
	uid1 := m.UID1()
	passwd := data.Passwd()
	passwd[0] = uid0[1] ^ uid1[0] ^ 0xAA
	passwd[1] = uid0[2] ^ uid1[1] ^ 0x55
	passwd[2] = uid1[0] ^ uid1[2] ^ 0xAA
	passwd[3] = uid1[1] ^ uid1[3] ^ 0x55

	copy(header.Version(), []byte{0x00, 0x04, 0x04, 0x02, 0x01, 0x00, 0x11, 0x03})
	header.SetMemoryMax(0x86)
}
