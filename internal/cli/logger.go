package cli

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// NewRunID returns a time-sortable UUIDv7 used to correlate the log lines and
// JSON output of one invocation.
//
// Panics if UUID generation fails (should never happen in practice).
func NewRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// newLogger builds a text slog logger tagged with the run id.
func newLogger(w io.Writer, level slog.Level, runID string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", runID)
}
