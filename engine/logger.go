package engine

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with engine-specific helpers.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithOp adds an op field to the logger.
func (l *Logger) WithOp(op string) *Logger {
	return &Logger{
		Logger: l.Logger.With("op", op),
	}
}

// LogLoad logs a completed engine load.
func (l *Logger) LogLoad(info Info) {
	l.Info("engine loaded",
		"engine", info.ID,
		"isa", info.ISA,
		"isa_overridden", info.ISAOverridden,
		"workers", info.Workers,
		"parallel_threshold", info.ParallelThreshold,
	)
}

// LogParallel logs an element-wise operation split across goroutines.
func (l *Logger) LogParallel(op string, dimensions, chunks int) {
	l.Debug("parallel dispatch",
		"op", op,
		"dimension", dimensions,
		"chunks", chunks,
	)
}

// LogRejected logs an operation that failed validation before computing.
func (l *Logger) LogRejected(op string, dimensions int, err error) {
	l.Debug("operation rejected",
		"op", op,
		"dimension", dimensions,
		"error", err,
	)
}

// LogDecode logs a deserialization attempt.
func (l *Logger) LogDecode(size int, err error) {
	if err != nil {
		l.Debug("decode failed",
			"bytes", size,
			"error", err,
		)
		return
	}
	l.Debug("decode completed",
		"bytes", size,
	)
}
