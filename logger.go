package dsgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dsgo-specific context.
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

// NopLogger returns a Logger that discards everything. It is the default
// for containers constructed without WithLogger.
func NopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// DebugGrow logs a storage growth event. Containers call this on every
// reallocation so capacity behavior can be observed without metrics hooks.
func (l *Logger) DebugGrow(ctx context.Context, container string, oldCap, newCap, copied int) {
	if l == nil || l.Logger == nil {
		return
	}
	l.DebugContext(ctx, "storage grown",
		slog.String("container", container),
		slog.Int("old_capacity", oldCap),
		slog.Int("new_capacity", newCap),
		slog.Int("copied", copied),
	)
}
