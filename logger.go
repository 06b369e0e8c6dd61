package smjson

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with codec-specific helpers so file and batch
// operations log with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler falls
// back to a text handler on stderr at info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))}
}

// LogReadFile logs a document load.
func (l *Logger) LogReadFile(ctx context.Context, path string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read document failed", "path", path, "error", err)
	} else {
		l.DebugContext(ctx, "read document", "path", path, "bytes", size)
	}
}

// LogWriteFile logs a document save.
func (l *Logger) LogWriteFile(ctx context.Context, path string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write document failed", "path", path, "error", err)
	} else {
		l.DebugContext(ctx, "write document", "path", path, "bytes", size)
	}
}

// LogDecodeAll logs a batch decode.
func (l *Logger) LogDecodeAll(ctx context.Context, total int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch decode failed", "documents", total, "error", err)
	} else {
		l.DebugContext(ctx, "batch decode completed", "documents", total)
	}
}
