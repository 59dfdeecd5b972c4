// Package logging builds the slog loggers used by the CLI and the terminal UI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	// OutputPath names a file to append to. Empty means Fallback.
	OutputPath string
	// Fallback receives logs when OutputPath is empty. Nil discards them.
	Fallback io.Writer
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a logger from cfg. The returned close function releases the log
// file, if one was opened, and is always safe to call.
func New(cfg Config) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, noop, err
	}

	writer := cfg.Fallback
	closeFn := noop
	if cfg.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o750); err != nil {
			return nil, noop, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, noop, fmt.Errorf("opening log file: %w", err)
		}
		writer = f
		closeFn = f.Close
	}
	if writer == nil {
		return slog.New(slog.DiscardHandler), closeFn, nil
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		handler = slog.NewTextHandler(writer, opts)
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, opts)
	default:
		closeFn()
		return nil, noop, fmt.Errorf("unknown log format %q", cfg.Format)
	}
	return slog.New(handler), closeFn, nil
}
