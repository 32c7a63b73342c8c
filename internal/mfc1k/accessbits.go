package mfc1k

import "github.com/Firefox2100/librfidx/status"

func getBit(v byte, pos int) byte { return (v >> uint(pos)) & 1 }

func setBit(v *byte, pos int, bit byte) {
	if bit != 0 {
		*v |= 1 << uint(pos)
	} else {
		*v &^= 1 << uint(pos)
	}
}

// GetAccessBitsForBlock unpacks the (c1, c2, c3) access-bit tuple for
// block b (0..3) of a sector trailer, per spec.md §3.5.
func GetAccessBitsForBlock(trailer []byte, b int) (c1, c2, c3 byte, err error) {
	if b < 0 || b > 3 {
		return 0, 0, 0, status.New(status.MFCAccessBitsError, "block index out of range")
	}
	ab := TrailerAccessBits(trailer)
	c1 = getBit(ab[1], b)
	c2 = getBit(ab[2], b)
	c3 = getBit(ab[2], 4+b)
	return c1, c2, c3, nil
}

// SetAccessBitsForBlock writes the (c1, c2, c3) tuple for block b (0..3)
// and its three complement bits, per spec.md §3.5's packing rule.
func SetAccessBitsForBlock(trailer []byte, b int, c1, c2, c3 byte) error {
	if b < 0 || b > 3 {
		return status.New(status.MFCAccessBitsError, "block index out of range")
	}
	ab := TrailerAccessBits(trailer)
	setBit(&ab[1], b, c1&1)
	setBit(&ab[2], b, c2&1)
	setBit(&ab[2], 4+b, c3&1)
	setBit(&ab[0], b, 1^(c1&1))
	setBit(&ab[0], 4+b, 1^(c2&1))
	setBit(&ab[1], 4+b, 1^(c3&1))
	return nil
}

// ValidateAccessBits rejects a trailer whose complement bits do not
// actually complement their corresponding access bits, for every block
//0..3.
func ValidateAccessBits(trailer []byte) error {
	ab := TrailerAccessBits(trailer)
	for b := 0; b < 4; b++ {
		c1 := getBit(ab[1], b)
		c2 := getBit(ab[2], b)
		c3 := getBit(ab[2], 4+b)
		nc1 := getBit(ab[0], b)
		nc2 := getBit(ab[0], 4+b)
		nc3 := getBit(ab[1], 4+b)
		if nc1 == c1 || nc2 == c2 || nc3 == c3 {
			return status.New(status.MFCAccessBitsError, "access bit complement mismatch")
		}
	}
	return nil
}
