package bitmap

import "math/bits"

// Words is a bitmap backed by 32-bit words, for callers that keep their
// storage word-granular. Bit 0 is the LSB of word 0.
type Words []uint32

// Set sets bit id and reports whether it was previously clear.
func (u Words) Set(id int32) bool {
	k, b := id/32, uint32(1)<<uint32(id&31)
	v := u[k]
	if v&b == 0 {
		u[k] = v | b
		return true
	}
	return false
}

// Unset clears bit id and reports whether it was previously set.
func (u Words) Unset(id int32) bool {
	k, b := id/32, uint32(1)<<uint32(id&31)
	v := u[k]
	if v&b != 0 {
		u[k] = v ^ b
		return true
	}
	return false
}

// Has reports whether bit id is set.
func (u Words) Has(id int32) bool {
	k, b := id/32, uint32(1)<<uint32(id&31)
	return u[k]&b != 0
}

// Count returns the number of set bits.
func (u Words) Count() uint32 {
	n := uint32(0)
	for _, v := range u {
		n += uint32(bits.OnesCount32(v))
	}
	return n
}
