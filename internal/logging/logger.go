// Package logging builds the process logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/maroofsyyed/dominion1/internal/config"
)

// New returns a zerolog logger writing to stdout. Pretty selects the
// human-readable console writer. Unknown levels fall back to info.
func New(cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("service", "dominion").Logger()
}
