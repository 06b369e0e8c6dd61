package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"none", "gzip", "zstd", "lz4"} {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("snappy")
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		[]byte("{}"),
		[]byte(`{"key":"value","n":42}`),
		bytes.Repeat([]byte(`{"repeat":"me"},`), 512),
		{0x00, 0xFF, 0x01, 0xFE}, // Incompressible binary.
	}

	for _, name := range []string{"none", "gzip", "zstd", "lz4"} {
		c, ok := ByName(name)
		require.True(t, ok)

		t.Run(name, func(t *testing.T) {
			for _, payload := range payloads {
				compressed, err := c.Compress(payload)
				require.NoError(t, err)

				got, err := c.Decompress(compressed)
				require.NoError(t, err)
				assert.Equal(t, len(payload), len(got))
				assert.Equal(t, []byte(payload), append([]byte{}, got...))
			}
		})
	}
}

func TestLZ4Corrupt(t *testing.T) {
	var c LZ4

	_, err := c.Decompress([]byte{0x01})
	assert.ErrorIs(t, err, ErrCorruptBlock)

	compressed, err := c.Compress(bytes.Repeat([]byte("abc"), 100))
	require.NoError(t, err)

	_, err = c.Decompress(compressed[:len(compressed)-1])
	assert.ErrorIs(t, err, ErrCorruptBlock)
}
