package ntag21x

// HeaderSize is the fixed size of the NTAG21x metadata header (spec.md
// §3.2). This block is not part of tag memory; it represents data readable
// only via NTAG-specific commands and is carried alongside the dump.
const HeaderSize = 56

// Header is a 56-byte metadata block: version[8] | tbo0[2] | tbo1 |
// memory_max | signature[32] | counter0[3] | tearing0 | counter1[3] |
// tearing1 | counter2[3] | tearing2.
type Header [HeaderSize]byte

const (
	offVersion   = 0
	offTBO0      = 8
	offTBO1      = 10
	offMemoryMax = 11
	offSignature = 12
	offCounter0  = 44
	offTearing0  = 47
	offCounter1  = 48
	offTearing1  = 51
	offCounter2  = 52
	offTearing2  = 55
)

func (h *Header) Version() []byte    { return h[offVersion : offVersion+8] }
func (h *Header) TBO0() []byte       { return h[offTBO0 : offTBO0+2] }
func (h *Header) TBO1() byte         { return h[offTBO1] }
func (h *Header) SetTBO1(v byte)     { h[offTBO1] = v }
func (h *Header) MemoryMax() byte    { return h[offMemoryMax] }
func (h *Header) SetMemoryMax(v byte) { h[offMemoryMax] = v }
func (h *Header) Signature() []byte  { return h[offSignature : offSignature+32] }
func (h *Header) Counter0() []byte   { return h[offCounter0 : offCounter0+3] }
func (h *Header) Tearing0() byte     { return h[offTearing0] }
func (h *Header) SetTearing0(v byte) { h[offTearing0] = v }
func (h *Header) Counter1() []byte   { return h[offCounter1 : offCounter1+3] }
func (h *Header) Tearing1() byte     { return h[offTearing1] }
func (h *Header) SetTearing1(v byte) { h[offTearing1] = v }
func (h *Header) Counter2() []byte   { return h[offCounter2 : offCounter2+3] }
func (h *Header) Tearing2() byte     { return h[offTearing2] }
func (h *Header) SetTearing2(v byte) { h[offTearing2] = v }

// Bytes returns the full 56-byte slice, aliasing the header's own storage.
func (h *Header) Bytes() []byte { return h[:] }
