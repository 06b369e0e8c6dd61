package unicode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		cp   rune
		want []byte
	}{
		{name: "ascii", cp: 'A', want: []byte{0x41}},
		{name: "two byte", cp: 0xE9, want: []byte{0xC3, 0xA9}}, // é
		{name: "two byte min", cp: 0x80, want: []byte{0xC2, 0x80}},
		{name: "three byte", cp: 0x20AC, want: []byte{0xE2, 0x82, 0xAC}}, // €
		{name: "three byte max", cp: 0xFFFF, want: []byte{0xEF, 0xBF, 0xBF}},
		{name: "four byte", cp: 0x1F600, want: []byte{0xF0, 0x9F, 0x98, 0x80}},
		{name: "max codepoint", cp: 0x10FFFF, want: []byte{0xF4, 0x8F, 0xBF, 0xBF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(nil, tt.cp)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeInvalid(t *testing.T) {
	for _, cp := range []rune{-1, 0xD800, 0xDC00, 0xDFFF, 0x110000} {
		_, err := Encode(nil, cp)
		assert.ErrorIs(t, err, ErrInvalidCodepoint, "codepoint %#x", cp)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		want     rune
		wantSize int
	}{
		{name: "ascii", in: []byte("Az"), want: 'A', wantSize: 1},
		{name: "two byte", in: []byte{0xC3, 0xA9}, want: 0xE9, wantSize: 2},
		{name: "three byte", in: []byte{0xE2, 0x82, 0xAC}, want: 0x20AC, wantSize: 3},
		{name: "four byte", in: []byte{0xF0, 0x9F, 0x98, 0x80, 'x'}, want: 0x1F600, wantSize: 4},
		{name: "max", in: []byte{0xF4, 0x8F, 0xBF, 0xBF}, want: 0x10FFFF, wantSize: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, size, err := Decode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cp)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name    string
		in      []byte
		wantErr error
	}{
		{name: "empty", in: nil, wantErr: ErrTruncated},
		{name: "truncated two byte", in: []byte{0xC3}, wantErr: ErrTruncated},
		{name: "truncated four byte", in: []byte{0xF0, 0x9F, 0x98}, wantErr: ErrTruncated},
		{name: "bare continuation", in: []byte{0x80}, wantErr: ErrMalformed},
		{name: "bad continuation", in: []byte{0xC3, 0x41}, wantErr: ErrMalformed},
		{name: "overlong", in: []byte{0xC0, 0xAF}, wantErr: ErrMalformed},
		{name: "surrogate", in: []byte{0xED, 0xA0, 0x80}, wantErr: ErrInvalidCodepoint},
		{name: "above max", in: []byte{0xF4, 0x90, 0x80, 0x80}, wantErr: ErrInvalidCodepoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, cp := range []rune{0, 'A', 0x7F, 0x80, 0x7FF, 0x800, 0xD7FF, 0xE000, 0xFFFF, 0x10000, 0x10FFFF} {
		b, err := Encode(nil, cp)
		require.NoError(t, err, "encode %#x", cp)

		got, size, err := Decode(b)
		require.NoError(t, err, "decode %#x", cp)
		assert.Equal(t, cp, got)
		assert.Equal(t, len(b), size)
	}
}
