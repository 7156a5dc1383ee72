package clustergo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with clustergo-specific context.
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

// WithK adds a k (cluster count) field to the logger.
func (l *Logger) WithK(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("k", k),
	}
}

// WithIterations adds an iteration-cap field to the logger.
func (l *Logger) WithIterations(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("iterations", n),
	}
}

// WithDamping adds a damping-factor field to the logger.
func (l *Logger) WithDamping(d float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("damping", d),
	}
}

// WithSize adds an effective-size field to the logger.
func (l *Logger) WithSize(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", n),
	}
}

// LogCentroidCompute logs a completed k-means compute pass.
func (l *Logger) LogCentroidCompute(size, k, iterations int, converged bool) {
	l.Debug("kmeans compute completed",
		"size", size,
		"k", k,
		"iterations", iterations,
		"converged", converged,
	)
}

// LogExemplarCompute logs a completed affinity-propagation compute pass.
func (l *Logger) LogExemplarCompute(size, rounds, exemplars int) {
	l.Debug("affinity compute completed",
		"size", size,
		"rounds", rounds,
		"exemplars", exemplars,
	)
}
