package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns the process logger: readable text locally, JSON everywhere else.
func New(local bool) *slog.Logger {
	return NewWithWriter(os.Stdout, local)
}

func NewWithWriter(w io.Writer, local bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if local {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts)).With("service", "msalsa")
}
