// Package strutil provides small string helpers: prefix splitting,
// ascii-hex codecs and encoding validation.
package strutil

import "unicode/utf8"

// Prefix reports whether str starts with prefix and, if so, returns the
// remainder of str after it.
func Prefix(str, prefix string) (string, bool) {
	if len(str) < len(prefix) || str[:len(prefix)] != prefix {
		return "", false
	}
	return str[len(prefix):], true
}

const hexDigits = "0123456789abcdef"

// ToHex encodes src as lowercase ascii-hex.
func ToHex(src []byte) string {
	out := make([]byte, 2*len(src))
	for i, b := range src {
		out[2*i] = hexDigits[b>>4]
		out[2*i+1] = hexDigits[b&0x0f]
	}
	return string(out)
}

// FromHex decodes the ascii-hex string hex. Upper and lower case digits
// are accepted. It reports failure on odd length or any non-hex byte.
func FromHex(hex string) ([]byte, bool) {
	if len(hex)%2 != 0 {
		return nil, false
	}
	out := make([]byte, len(hex)/2)
	for i := range out {
		hi, ok1 := unhex(hex[2*i])
		lo, ok2 := unhex(hex[2*i+1])
		if !ok1 || !ok2 {
			return nil, false
		}
		out[i] = hi<<4 | lo
	}
	return out, true
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// VerifyASCII returns the length of the longest prefix of s consisting
// of non-NUL ASCII bytes. It stops at the first NUL or byte above 0x7f.
func VerifyASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == 0x00 || s[i] > 0x7f {
			return i
		}
	}
	return len(s)
}

// VerifyUTF8 returns the length of the longest prefix of s that is
// valid UTF-8 and free of NUL characters. It stops at the first NUL,
// invalid sequence, or truncated sequence.
func VerifyUTF8(s string) int {
	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == 0x00 || (r == utf8.RuneError && size <= 1) {
			break
		}
		i += size
	}
	return i
}
