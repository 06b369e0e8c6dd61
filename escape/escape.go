// Package escape converts between raw text and JSON-escaped text.
//
// Escaping covers the two-character shorthands defined by RFC 8259, \u
// sequences for the remaining control characters, and \u sequences
// (surrogate pairs above U+FFFF) for all non-ASCII text. Unescape is the
// exact inverse.
package escape

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexevladgabriel/sm-json/internal/unicode"
)

var (
	// ErrBadEscape is returned for a backslash followed by an unknown
	// escape character or a truncated escape sequence.
	ErrBadEscape = errors.New("invalid escape sequence")

	// ErrBadSurrogate is returned for an unpaired or malformed surrogate
	// in a \u sequence.
	ErrBadSurrogate = errors.New("invalid surrogate pair")
)

const hexDigits = "0123456789abcdef"

func appendHex16(dst []byte, cp rune) []byte {
	dst = append(dst, '\\', 'u')
	for shift := 12; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[cp>>uint(shift)&0xF])
	}
	return dst
}

// Escape returns the JSON-escaped form of s. Non-ASCII codepoints become
// \uXXXX sequences (a surrogate pair above U+FFFF). Invalid UTF-8 in s is
// an error, never silently replaced.
func Escape(s string) (string, error) {
	var out []byte

	b := []byte(s)
	for i := 0; i < len(b); {
		c := b[i]
		if c < 0x80 {
			switch c {
			case '\\':
				out = append(out, '\\', '\\')
			case '"':
				out = append(out, '\\', '"')
			case '/':
				out = append(out, '\\', '/')
			case '\b':
				out = append(out, '\\', 'b')
			case '\f':
				out = append(out, '\\', 'f')
			case '\n':
				out = append(out, '\\', 'n')
			case '\r':
				out = append(out, '\\', 'r')
			case '\t':
				out = append(out, '\\', 't')
			default:
				if c < 0x20 {
					out = appendHex16(out, rune(c))
				} else {
					out = append(out, c)
				}
			}
			i++

			continue
		}

		cp, size, err := unicode.Decode(b[i:])
		if err != nil {
			return "", fmt.Errorf("escape at byte %d: %w", i, err)
		}

		if cp <= 0xFFFF {
			out = appendHex16(out, cp)
		} else {
			// UTF-16 surrogate pair for astral codepoints.
			cp -= 0x10000
			out = appendHex16(out, 0xD800+cp>>10)
			out = appendHex16(out, 0xDC00+cp&0x3FF)
		}
		i += size
	}

	return string(out), nil
}

func parseHex4(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}

	var cp rune
	for i := 0; i < 4; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			cp = cp<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			cp = cp<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			cp = cp<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}

	return cp, true
}

// Unescape reverses Escape: \u sequences (including surrogate pairs) are
// re-encoded to raw UTF-8 and the two-character shorthands become their
// literal bytes.
func Unescape(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			out = append(out, c)
			i++

			continue
		}

		if i+1 >= len(s) {
			return "", fmt.Errorf("%w: trailing backslash at byte %d", ErrBadEscape, i)
		}

		switch s[i+1] {
		case '\\', '"', '/', '\'':
			out = append(out, s[i+1])
			i += 2
		case 'b':
			out = append(out, '\b')
			i += 2
		case 'f':
			out = append(out, '\f')
			i += 2
		case 'n':
			out = append(out, '\n')
			i += 2
		case 'r':
			out = append(out, '\r')
			i += 2
		case 't':
			out = append(out, '\t')
			i += 2
		case 'u':
			cp, ok := parseHex4(s[i+2:])
			if !ok {
				return "", fmt.Errorf("%w: bad \\u digits at byte %d", ErrBadEscape, i)
			}
			i += 6

			if cp >= 0xDC00 && cp <= 0xDFFF {
				return "", fmt.Errorf("%w: unpaired low surrogate at byte %d", ErrBadSurrogate, i-6)
			}
			if cp >= 0xD800 && cp <= 0xDBFF {
				// High surrogate: a low surrogate must follow immediately.
				if i+1 >= len(s) || s[i] != '\\' || s[i+1] != 'u' {
					return "", fmt.Errorf("%w: unpaired high surrogate at byte %d", ErrBadSurrogate, i-6)
				}
				low, ok := parseHex4(s[i+2:])
				if !ok || low < 0xDC00 || low > 0xDFFF {
					return "", fmt.Errorf("%w: bad low surrogate at byte %d", ErrBadSurrogate, i)
				}
				i += 6
				cp = 0x10000 + (cp-0xD800)<<10 + (low - 0xDC00)
			}

			var err error
			out, err = unicode.Encode(out, cp)
			if err != nil {
				return "", fmt.Errorf("unescape: %w", err)
			}
		default:
			return "", fmt.Errorf("%w: \\%c at byte %d", ErrBadEscape, s[i+1], i)
		}
	}

	return string(out), nil
}
