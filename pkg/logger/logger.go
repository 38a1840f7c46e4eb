package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a production-friendly structured logger on stdout.
// No business logic should depend on logging implementation details.
func New(appEnv string) *slog.Logger {
	return newWriter(os.Stdout, appEnv)
}

// NewStderr returns the same logger on stderr. The AGI binary must use this:
// stdout is the protocol channel to Asterisk.
func NewStderr(appEnv string) *slog.Logger {
	return newWriter(os.Stderr, appEnv)
}

func newWriter(w io.Writer, appEnv string) *slog.Logger {
	level := slog.LevelInfo
	if appEnv == "local" || appEnv == "dev" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
