// Package logging builds the application's structured logger.
// Records go through log/slog and are formatted by charmbracelet/log,
// either to stderr or, when configured, appended to a log file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/runoshun/duke/internal/domain"
)

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// toCharmLevel maps slog levels onto charmbracelet/log levels.
func toCharmLevel(level slog.Level) log.Level {
	switch {
	case level <= slog.LevelDebug:
		return log.DebugLevel
	case level <= slog.LevelInfo:
		return log.InfoLevel
	case level <= slog.LevelWarn:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := log.NewWithOptions(w, log.Options{
		Level:           toCharmLevel(level),
		Formatter:       log.TextFormatter,
		ReportTimestamp: true,
		Prefix:          "duke",
	})
	return slog.New(handler)
}

// New creates a logger from the [log] config section.
// With an empty File, records go to stderr. The returned closer releases the
// log file and is always non-nil.
func New(cfg domain.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level := ParseLevel(cfg.Level)
	if cfg.File == "" {
		return NewWithWriter(stderr, level), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o750); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	// G302: Log files are append-only and need read access by the owner's group
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, level), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
