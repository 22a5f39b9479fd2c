package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a logger tagged with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Setup configures the global logger. Output defaults to stderr; pass a
// non-nil writer to redirect (tests pass io.Discard).
func Setup(w io.Writer, level zerolog.Level) {
	if w == nil {
		w = os.Stderr
	}
	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}
