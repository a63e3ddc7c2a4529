// Package logging provides structured logging for the parking simulator.
// It wraps Go's slog package with a JSON handler and a level chosen from
// configuration or the PARKSIM_LOG_LEVEL environment variable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLevel is the environment variable consulted by NewLogger.
const EnvLevel = "PARKSIM_LOG_LEVEL"

// Logger wraps slog.Logger with simulator-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a JSON logger on stderr. A non-empty PARKSIM_LOG_LEVEL
// wins over level. Valid levels: DEBUG, INFO, WARN, ERROR. Defaults to INFO.
func NewLogger(level string) *Logger {
	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}
	return New(os.Stderr, ParseLevel(level))
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{slog.New(handler)}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, slog.LevelError+1)
}

// Error logs an error message with the error attached under "error".
func (l *Logger) Error(msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	l.Logger.Error(msg, args...)
}

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l.Logger.With(args...)}
}

// ParseLevel maps a level name to a slog level, defaulting to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a level ParseLevel understands.
func ValidLevel(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
		return true
	}
	return false
}
