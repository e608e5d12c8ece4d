// Package log provides the zerolog setup shared by the library and its
// examples. Library code never logs through a global: loggers are injected
// where needed and default to a no-op.
package log

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// New returns a structured JSON logger writing to w at the given level.
// Error events carry a stacktrace attribute when the error was created by
// pkg/errors (cockroachdb stack annotations).
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	zerolog.ErrorStackMarshaler = marshalStack
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// NewConsole returns a human-readable logger for examples and CLIs.
func NewConsole(level zerolog.Level) zerolog.Logger {
	zerolog.ErrorStackMarshaler = marshalStack
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Nop returns a disabled logger. It is the default for library internals.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel converts a level name to a zerolog level, defaulting to info
// for unknown names.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// marshalStack pulls the first safe detail (the recorded stack trace) out
// of a cockroachdb error chain.
func marshalStack(err error) interface{} {
	details := errors.GetSafeDetails(err).SafeDetails
	if len(details) > 0 {
		return details[0]
	}
	return nil
}
