package assoc

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with container-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithName adds a container name field to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("container", name),
	}
}

// LogRehash logs a bucket array rebuild.
func (l *Logger) LogRehash(from, to, items int, duration time.Duration) {
	l.Debug("rehash completed",
		"from_buckets", from,
		"to_buckets", to,
		"items", items,
		"duration", duration,
	)
}

// LogBulkInsert logs a range insert.
func (l *Logger) LogBulkInsert(count, inserted int) {
	if skipped := count - inserted; skipped > 0 {
		l.Debug("bulk insert completed with duplicates skipped",
			"total", count,
			"inserted", inserted,
			"skipped", skipped,
		)
	} else {
		l.Debug("bulk insert completed",
			"count", count,
		)
	}
}

// LogClear logs a clear.
func (l *Logger) LogClear(removed int) {
	l.Debug("container cleared",
		"removed", removed,
	)
}

// LogCheck logs the outcome of a consistency check.
func (l *Logger) LogCheck(size int, err error) {
	if err != nil {
		l.Error("consistency check failed",
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("consistency check passed",
			"size", size,
		)
	}
}
