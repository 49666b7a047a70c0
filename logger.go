package intset

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with intset-specific context.
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

// WithKind adds a set kind field to the logger. A nil Logger stays nil.
func (l *Logger) WithKind(kind string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// LogResize logs a capacity change.
func (l *Logger) LogResize(ctx context.Context, from, to uint, kept int) {
	l.DebugContext(ctx, "set resized",
		"from", from,
		"to", to,
		"kept", kept,
	)
}

// LogCacheRebuild logs a rebuild of the ordered member cache.
func (l *Logger) LogCacheRebuild(ctx context.Context, members int, rebuilds uint64) {
	l.DebugContext(ctx, "ordered cache rebuilt",
		"members", members,
		"rebuilds", rebuilds,
	)
}

// LogSieve logs the outcome of a sieve run.
func (l *Logger) LogSieve(ctx context.Context, kind string, n uint, primes int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sieve failed",
			"kind", kind,
			"n", n,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sieve completed",
			"kind", kind,
			"n", n,
			"primes", primes,
			"elapsed", elapsed,
		)
	}
}
