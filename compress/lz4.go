package compress

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// ErrCorruptBlock is returned when an LZ4 payload header is inconsistent
// with the payload size.
var ErrCorruptBlock = errors.New("corrupt lz4 block")

// lz4HeaderSize prefixes each payload with
// [uncompressedSize uint32][compressedSize uint32]. A compressed size of
// zero marks an incompressible payload stored raw.
const lz4HeaderSize = 8

// LZ4 compresses with the LZ4 block format. Faster than zstd at a lower
// ratio; suited to hot paths.
type LZ4 struct{}

// Compress LZ4-compresses data. Incompressible payloads are stored raw
// behind the same header.
func (LZ4) Compress(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	out := make([]byte, lz4HeaderSize, lz4HeaderSize+bound)
	binary.LittleEndian.PutUint32(out[0:4], uint32(len(data)))

	compressed := make([]byte, bound)
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 || n >= len(data) {
		// Incompressible: store raw, marked by compressedSize == 0.
		binary.LittleEndian.PutUint32(out[4:8], 0)
		return append(out, data...), nil
	}

	binary.LittleEndian.PutUint32(out[4:8], uint32(n))
	return append(out, compressed[:n]...), nil
}

// Decompress reverses Compress.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	if len(data) < lz4HeaderSize {
		return nil, fmt.Errorf("%w: %d header bytes", ErrCorruptBlock, len(data))
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:4])
	compressedSize := binary.LittleEndian.Uint32(data[4:8])
	payload := data[lz4HeaderSize:]

	if compressedSize == 0 {
		if uint32(len(payload)) != uncompressedSize {
			return nil, fmt.Errorf("%w: raw payload size mismatch", ErrCorruptBlock)
		}
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	}

	if uint32(len(payload)) != compressedSize {
		return nil, fmt.Errorf("%w: payload size mismatch", ErrCorruptBlock)
	}

	out := make([]byte, uncompressedSize)
	n, err := lz4.UncompressBlock(payload, out)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if uint32(n) != uncompressedSize {
		return nil, fmt.Errorf("%w: decoded %d of %d bytes", ErrCorruptBlock, n, uncompressedSize)
	}
	return out, nil
}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }
