package seqset

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with seqset-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogLoad logs the outcome of loading one class file.
func (l *Logger) LogLoad(ctx context.Context, file string, records, repaired int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"file", file,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "load completed",
			"file", file,
			"records", records,
			"repaired_chars", repaired,
		)
	}
}

// LogSplit logs a train/val/test split.
func (l *Logger) LogSplit(ctx context.Context, train, val, test int) {
	l.InfoContext(ctx, "split completed",
		"train", train,
		"val", val,
		"test", test,
	)
}

// LogFeature logs the outcome of adding a feature block.
func (l *Logger) LogFeature(ctx context.Context, kind string, width int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "feature load failed",
			"kind", kind,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "feature block added",
			"kind", kind,
			"width", width,
		)
	}
}

// LogSnapshot logs a snapshot save or load.
func (l *Logger) LogSnapshot(ctx context.Context, op string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"op", op,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot completed",
			"op", op,
			"records", records,
		)
	}
}
