package log

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTest returns a logger that routes output through t.Log, so log lines
// show up attached to the failing test.
func NewTest(t *testing.T) zerolog.Logger {
	t.Helper()
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}
