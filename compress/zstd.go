package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Shared codecs: EncodeAll/DecodeAll are safe for concurrent use on a
// single instance.
var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func zstdInit() {
	// Default speed level balances ratio and throughput for document
	// payloads.
	zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	zstdDecoder, _ = zstd.NewReader(nil)
}

// Zstd compresses with the zstd block format.
type Zstd struct{}

// Compress zstd-compresses data.
func (Zstd) Compress(data []byte) ([]byte, error) {
	zstdOnce.Do(zstdInit)
	return zstdEncoder.EncodeAll(data, nil), nil
}

// Decompress reverses Compress.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	zstdOnce.Do(zstdInit)

	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return out, nil
}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }
