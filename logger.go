package sparsebitset

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger for the handful of diagnostic events a container
// ever emits: Level1/data pool growth and index-out-of-range precondition
// violations. Contains/Remove and iteration never log — only Insert, and
// only on the slow path where a pool actually grows.
type Logger struct {
	*slog.Logger
}

// NewLogger wraps handler, or a no-op handler if handler is nil.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NoopLogger()
	}
	return &Logger{Logger: slog.New(handler)}
}

// NoopLogger discards everything. It is the default for a Container built
// without WithLogger.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}
