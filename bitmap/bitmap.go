// Package bitmap provides helpers for dynamically sized bitmaps.
//
// A bitmap is a plain byte slice; the LSB of byte 0 is bit 0.
// Allocation and sizing are left to the caller, and the helpers never
// grow the slice. Addressing a bit beyond the slice panics through the
// ordinary bounds check.
package bitmap

import (
	"math/bits"

	"github.com/go-sundry/sundry/num"
)

// Test reports whether bit is set in bm.
func Test(bm []byte, bit uint) bool {
	return bm[bit/8]&(1<<(bit%8)) != 0
}

// Set sets bit in bm.
func Set(bm []byte, bit uint) {
	bm[bit/8] |= 1 << (bit % 8)
}

// Clear clears bit in bm.
func Clear(bm []byte, bit uint) {
	bm[bit/8] &^= 1 << (bit % 8)
}

// SetAll sets the first nbits bits of bm, rounded up to whole bytes.
func SetAll(bm []byte, nbits uint) {
	n := num.DivRoundUp(nbits, 8)
	for i := range bm[:n] {
		bm[i] = 0xff
	}
}

// ClearAll clears the first nbits bits of bm, rounded up to whole
// bytes.
func ClearAll(bm []byte, nbits uint) {
	n := num.DivRoundUp(nbits, 8)
	for i := range bm[:n] {
		bm[i] = 0
	}
}

// Count returns the number of set bits among the first nbits bits.
func Count(bm []byte, nbits uint) int {
	n := 0
	for _, b := range bm[:nbits/8] {
		n += bits.OnesCount8(b)
	}
	if rem := nbits % 8; rem != 0 {
		n += bits.OnesCount8(bm[nbits/8] & (1<<rem - 1))
	}
	return n
}
