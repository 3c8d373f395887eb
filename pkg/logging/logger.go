package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger so portal packages share one logging surface.
type Logger struct {
	*slog.Logger
}

// New creates a JSON logger writing to stdout at the given level.
// Unknown level strings fall back to info.
func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a logger writing to w. Tests use this to capture
// output.
func NewWithWriter(level string, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, opts))}
}

// Default returns a logger with default settings.
func Default() *Logger {
	return New("info")
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
