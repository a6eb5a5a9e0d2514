package session

import (
	"log/slog"
	"os"

	"github.com/pavanmanishd/stackpool"
)

// Logger wraps slog.Logger with session-specific fields.
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

// WithHandle adds a handle field to the logger.
func (l *Logger) WithHandle(h stackpool.Handle) *Logger {
	return &Logger{
		Logger: l.Logger.With("handle", uint32(h)),
	}
}

// LogInit logs the creation of a session pool.
func (l *Logger) LogInit(capacity int) {
	l.Info("pool created",
		"capacity", capacity,
	)
}

// LogDelete logs the release of a session pool.
func (l *Logger) LogDelete(m stackpool.PoolMetrics) {
	l.Info("pool released",
		"nodes", m.Len,
		"in_use", m.InUse,
	)
}

// LogOp logs a stack operation on h that produced result.
func (l *Logger) LogOp(op string, h, result stackpool.Handle, err error) {
	if err != nil {
		l.Error(op+" failed",
			"handle", uint32(h),
			"error", err,
		)
		return
	}
	l.Debug(op+" completed",
		"handle", uint32(h),
		"result", uint32(result),
	)
}
