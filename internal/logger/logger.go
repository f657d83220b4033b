package logger

import (
	"io"
	"log/slog"
)

// New returns a slog.Logger tagged with the service name. Production gets JSON
// output, everything else human-readable text.
func New(w io.Writer, service string, production bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if production {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("service", service)
}
