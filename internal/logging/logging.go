// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Colors used with tint.Attr for highlighted attributes.
const (
	ColorOK    = 10
	ColorWarn  = 11
	ColorError = 9
	ColorDim   = 8
)

// ParseLevel converts a string to a slog.Level.
// It is case-insensitive.
func ParseLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug", "trace":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %q", levelStr)
	}
}

// Options select the handler.
type Options struct {
	Level slog.Level
	// Format is "text" (colored, for terminals) or "json".
	Format  string
	NoColor bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	if opts.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: opts.Level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		TimeFormat: time.TimeOnly,
		NoColor:    opts.NoColor,
	}))
}

// StatusColor picks the tint color for an HTTP status.
func StatusColor(status int) uint8 {
	switch {
	case status >= 500:
		return ColorError
	case status >= 400:
		return ColorWarn
	default:
		return ColorOK
	}
}
