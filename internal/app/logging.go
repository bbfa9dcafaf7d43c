package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kk-editor/kk/internal/config"
)

// LoggerConfig configures the logger.
type LoggerConfig struct {
	// Level is the minimum level written.
	Level zerolog.Level

	// Format is config.FormatConsole or config.FormatJSON.
	Format string

	// Output receives the log lines.
	Output io.Writer

	// Session identifies this run in every line. A new one is generated
	// if empty.
	Session string
}

// NewLogger creates the root logger.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}
	// The watcher logs from its own goroutine.
	out = zerolog.SyncWriter(out)
	if cfg.Format == config.FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}
	if cfg.Session == "" {
		cfg.Session = uuid.NewString()
	}

	return zerolog.New(out).
		Level(cfg.Level).
		With().
		Timestamp().
		Str("session", cfg.Session).
		Logger()
}

// WithComponent returns a logger with the component field set.
func WithComponent(log zerolog.Logger, component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// ParseLogLevel parses a level name, accepting "warning" for warn.
func ParseLogLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
