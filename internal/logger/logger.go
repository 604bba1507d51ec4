// Package logger provides optional debug logging. The TUI owns the
// terminal, so logs go to a file, enabled with INKCTL_DEBUG=<path>.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a logger writing to the INKCTL_DEBUG file, or a discard
// logger when the variable is unset. INKCTL_DEBUG_FORMAT=json switches the
// handler.
func New() *slog.Logger {
	path := os.Getenv("INKCTL_DEBUG")
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if os.Getenv("INKCTL_DEBUG_FORMAT") == "json" {
		return slog.New(slog.NewJSONHandler(f, opts))
	}
	return slog.New(slog.NewTextHandler(f, opts))
}
