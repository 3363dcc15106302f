package cli

import (
	"io"
	"log/slog"
)

// newLogger creates a text logger writing to w at the given level.
// Logs go to stderr so they never mix with command output.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}
