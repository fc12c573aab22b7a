// =============================================================================
// XML to RPG Cards Converter - Logging
// =============================================================================
//
// Diagnostics go to stderr through log/slog so that stdout carries only the
// user-facing report (banner, missing items, summary). Every logger carries a
// run_id attribute, which tells runs apart when JSON logs are collected.
//
// =============================================================================

package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Config represents logger configuration.
type Config struct {
	Level   string // "debug", "info", "warn", "error"
	Format  string // "json", "text"
	Version string
}

// LogLevel converts the string level to a slog.Level. Unknown levels fall
// back to info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON.
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == "json"
}

// New builds a logger writing to w.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	attrs := []any{"run_id", NewRunID()}
	if cfg.Version != "" {
		attrs = append(attrs, "version", cfg.Version)
	}

	return slog.New(handler).With(attrs...)
}

// NewRunID creates a new UUID identifying one invocation.
func NewRunID() string {
	return uuid.NewString()
}
