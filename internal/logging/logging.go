// Package logging builds the slog logger shared by devhooks commands.
//
// Logs go to stderr and are diagnostic only; the validator report and other
// command output are written directly and never pass through the logger.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w at WARN, or DEBUG when verbose.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

