// Package unicode implements the UTF-8 codepoint/byte-sequence conversion
// used by the escape layer.
//
// The standard library's unicode/utf8 silently substitutes RuneError for
// invalid input; the escape layer needs hard failures instead, so the
// conversion rules are implemented here explicitly.
package unicode

import (
	"errors"
	"fmt"
)

const (
	// MaxCodepoint is the highest valid Unicode codepoint (U+10FFFF).
	MaxCodepoint = 0x10FFFF

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

var (
	// ErrInvalidCodepoint is returned for codepoints outside the Unicode
	// range or inside the surrogate range.
	ErrInvalidCodepoint = errors.New("invalid codepoint")

	// ErrTruncated is returned when a byte sequence ends mid-codepoint.
	ErrTruncated = errors.New("truncated UTF-8 sequence")

	// ErrMalformed is returned when a byte sequence violates UTF-8 rules
	// (bad leading byte, bad continuation byte, or overlong encoding).
	ErrMalformed = errors.New("malformed UTF-8 sequence")
)

// IsSurrogate reports whether cp falls in the UTF-16 surrogate range
// U+D800..U+DFFF, which no valid UTF-8 sequence may encode.
func IsSurrogate(cp rune) bool {
	return cp >= surrogateMin && cp <= surrogateMax
}

// Encode appends the UTF-8 encoding of cp to dst and returns the extended
// slice. Surrogate-range and out-of-range codepoints fail; nothing is
// substituted.
func Encode(dst []byte, cp rune) ([]byte, error) {
	switch {
	case cp < 0:
		return dst, fmt.Errorf("%w: %#x", ErrInvalidCodepoint, cp)
	case cp < 0x80:
		return append(dst, byte(cp)), nil
	case cp < 0x800:
		return append(dst,
			0xC0|byte(cp>>6),
			0x80|byte(cp&0x3F),
		), nil
	case IsSurrogate(cp):
		return dst, fmt.Errorf("%w: surrogate %#x", ErrInvalidCodepoint, cp)
	case cp < 0x10000:
		return append(dst,
			0xE0|byte(cp>>12),
			0x80|byte(cp>>6&0x3F),
			0x80|byte(cp&0x3F),
		), nil
	case cp <= MaxCodepoint:
		return append(dst,
			0xF0|byte(cp>>18),
			0x80|byte(cp>>12&0x3F),
			0x80|byte(cp>>6&0x3F),
			0x80|byte(cp&0x3F),
		), nil
	default:
		return dst, fmt.Errorf("%w: %#x exceeds U+10FFFF", ErrInvalidCodepoint, cp)
	}
}

// Decode reads one codepoint from the start of b and returns it together
// with the number of bytes consumed.
func Decode(b []byte) (rune, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncated
	}

	b0 := b[0]

	var (
		size int
		cp   rune
		min  rune // Smallest codepoint this sequence length may encode.
	)
	switch {
	case b0 < 0x80:
		return rune(b0), 1, nil
	case b0&0xE0 == 0xC0:
		size, cp, min = 2, rune(b0&0x1F), 0x80
	case b0&0xF0 == 0xE0:
		size, cp, min = 3, rune(b0&0x0F), 0x800
	case b0&0xF8 == 0xF0:
		size, cp, min = 4, rune(b0&0x07), 0x10000
	default:
		return 0, 0, fmt.Errorf("%w: leading byte %#x", ErrMalformed, b0)
	}

	if len(b) < size {
		return 0, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, size, len(b))
	}

	for i := 1; i < size; i++ {
		if b[i]&0xC0 != 0x80 {
			return 0, 0, fmt.Errorf("%w: continuation byte %#x", ErrMalformed, b[i])
		}
		cp = cp<<6 | rune(b[i]&0x3F)
	}

	if cp < min {
		return 0, 0, fmt.Errorf("%w: overlong encoding of %#x", ErrMalformed, cp)
	}
	if IsSurrogate(cp) {
		return 0, 0, fmt.Errorf("%w: surrogate %#x", ErrInvalidCodepoint, cp)
	}
	if cp > MaxCodepoint {
		return 0, 0, fmt.Errorf("%w: %#x exceeds U+10FFFF", ErrInvalidCodepoint, cp)
	}

	return cp, size, nil
}
