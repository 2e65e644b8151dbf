// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "info"

// Setup parses level and points the global logger at w.
func Setup(level string, w io.Writer) error {
	level = strings.TrimSpace(strings.ToLower(level))
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}

// Console returns a human-readable writer for terminal output.
func Console(w io.Writer) io.Writer {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
}

// OpenFile opens path for appending, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}
