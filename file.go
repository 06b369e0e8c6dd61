package smjson

import (
	"context"
	"fmt"
	"os"

	"github.com/alexevladgabriel/sm-json/compress"
	"github.com/alexevladgabriel/sm-json/container"
)

// FileOptions configures WriteFile and ReadFile.
type FileOptions struct {
	// Compression applied to the encoded payload. Both sides of a
	// round-trip must use the same compressor. Defaults to
	// compress.Default (no compression).
	Compression compress.Compressor

	// Pretty writes indented output. Pointless together with
	// compression, but harmless.
	Pretty bool

	// SingleQuotes is passed through to Decode on ReadFile.
	SingleQuotes bool

	// Perm is the file mode for newly created files.
	Perm os.FileMode

	// Logger for operation logging. Defaults to NoopLogger.
	Logger *Logger
}

func applyFileOptions(optFns []func(o *FileOptions)) FileOptions {
	opts := FileOptions{
		Compression: compress.Default,
		Perm:        0o644,
		Logger:      NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Compression == nil {
		opts.Compression = compress.Default
	}
	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}
	return opts
}

// WriteFile encodes c and writes it to path, optionally compressed.
func WriteFile(path string, c *container.Container, optFns ...func(o *FileOptions)) error {
	opts := applyFileOptions(optFns)
	ctx := context.Background()

	var encFns []func(o *EncodeOptions)
	if opts.Pretty {
		encFns = append(encFns, WithPretty())
	}

	data, err := Encode(c, encFns...)
	if err != nil {
		opts.Logger.LogWriteFile(ctx, path, 0, err)
		return fmt.Errorf("encode document: %w", err)
	}

	payload, err := opts.Compression.Compress(data)
	if err != nil {
		opts.Logger.LogWriteFile(ctx, path, 0, err)
		return fmt.Errorf("compress document: %w", err)
	}

	if err := os.WriteFile(path, payload, opts.Perm); err != nil {
		opts.Logger.LogWriteFile(ctx, path, 0, err)
		return fmt.Errorf("write document: %w", err)
	}

	opts.Logger.LogWriteFile(ctx, path, len(payload), nil)
	return nil
}

// ReadFile reads path, decompresses it with the configured compressor and
// decodes the document.
func ReadFile(path string, optFns ...func(o *FileOptions)) (*container.Container, error) {
	opts := applyFileOptions(optFns)
	ctx := context.Background()

	payload, err := os.ReadFile(path) //nolint:gosec // G304: Path is configurable
	if err != nil {
		opts.Logger.LogReadFile(ctx, path, 0, err)
		return nil, fmt.Errorf("read document: %w", err)
	}

	data, err := opts.Compression.Decompress(payload)
	if err != nil {
		opts.Logger.LogReadFile(ctx, path, 0, err)
		return nil, fmt.Errorf("decompress document: %w", err)
	}

	var decFns []func(o *DecodeOptions)
	if opts.SingleQuotes {
		decFns = append(decFns, WithSingleQuotes())
	}

	c, err := Decode(data, decFns...)
	if err != nil {
		opts.Logger.LogReadFile(ctx, path, len(payload), err)
		return nil, err
	}

	opts.Logger.LogReadFile(ctx, path, len(payload), nil)
	return c, nil
}
