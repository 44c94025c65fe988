package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger builds a human-readable console logger at the given level.
// Unknown levels fall back to warn.
func newLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().Timestamp().Logger()
}
