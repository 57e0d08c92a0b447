package roletree

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with roletree-specific helpers so that load, build
// and verification events carry consistent field names.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// A nil w means stderr.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
// A nil w means stderr.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithName adds a document name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("document", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogLoad logs the decoding of a document. The document name comes from
// WithName.
func (l *Logger) LogLoad(ctx context.Context, bytes int64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"bytes", bytes,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "load completed",
		"bytes", bytes,
	)
}

// LogBuild logs the construction and indexing of both tree flavors.
func (l *Logger) LogBuild(ctx context.Context, nodes int, duration time.Duration) {
	l.InfoContext(ctx, "index built",
		"nodes", nodes,
		"duration", duration,
	)
}

// LogVerify logs a strategy cross-check.
func (l *Logger) LogVerify(ctx context.Context, checks int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "verification failed",
			"checks", checks,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "verification passed",
		"checks", checks,
	)
}
