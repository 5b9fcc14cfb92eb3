// Package logger configures the structured slog logger shared by every
// wrkr-docs command.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVarLogLevel overrides the configured level when set.
const EnvVarLogLevel = "LOG_LEVEL"

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// New creates a logger writing to w at level. Every record carries the
// program name and version. Source locations are added at debug level.
func New(w io.Writer, name, version, level string, format Format) *slog.Logger {
	lev := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level:     lev,
		AddSource: lev <= slog.LevelDebug,
	}

	var h slog.Handler
	if ParseFormat(string(format)) == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("module", name, "version", version)
}

// SetDefault installs a stderr logger as the slog default. A non-empty
// LOG_LEVEL in the environment wins over level.
func SetDefault(name, version, level string, format Format) *slog.Logger {
	if env := os.Getenv(EnvVarLogLevel); env != "" {
		level = env
	}
	l := New(os.Stderr, name, version, level, format)
	slog.SetDefault(l)
	return l
}

// ParseLevel maps debug, info, warn/warning and error to a slog.Level.
// Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseFormat returns FormatJSON for "json" in any case, FormatText otherwise.
func ParseFormat(format string) Format {
	if strings.EqualFold(strings.TrimSpace(format), string(FormatJSON)) {
		return FormatJSON
	}
	return FormatText
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
