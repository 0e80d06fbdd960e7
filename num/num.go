// Package num provides small integer and alignment helpers shared
// across the module.
package num

import "math/bits"

// Integer covers the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Unsigned covers the built-in unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func Min[T Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to the range [low, high].
func Clamp[T Integer](x, low, high T) T {
	if x > high {
		return high
	}
	if x < low {
		return low
	}
	return x
}

// LessBy returns a - b, clamped to 0 rather than wrapping.
func LessBy[T Integer](a, b T) T {
	if a > b {
		return a - b
	}
	return 0
}

// DivRoundUp divides x by y, rounding up. Unlike the usual
// (x + y - 1) / y it cannot overflow.
func DivRoundUp[T Integer](x, y T) T {
	d := x / y
	if x%y != 0 {
		d++
	}
	return d
}

// AlignTo aligns v up to the next multiple of to, which must be a power
// of two.
func AlignTo[T Unsigned](v, to T) T {
	if to == 0 || to&(to-1) != 0 {
		panic("num: alignment is not a power of two")
	}
	return (v + to - 1) &^ (to - 1)
}

// Align8 aligns v up to the next multiple of 8.
func Align8[T Unsigned](v T) T {
	return AlignTo(v, 8)
}

// AlignPower2 rounds v up to the next power of two. 0 stays 0, and
// values above 1<<63 overflow to 0.
func AlignPower2(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	n := bits.Len64(v - 1)
	if n == 64 {
		return 0
	}
	return 1 << n
}

// Clz32 counts leading zeroes in v. Clz32(0) is 32.
func Clz32(v uint32) int {
	return bits.LeadingZeros32(v)
}

// Clz64 counts leading zeroes in v. Clz64(0) is 64.
func Clz64(v uint64) int {
	return bits.LeadingZeros64(v)
}

// Log2 returns the binary logarithm of v, rounded down. Log2(0) is 0.
func Log2(v uint64) uint {
	if v == 0 {
		return 0
	}
	return uint(bits.Len64(v) - 1)
}
