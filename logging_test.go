package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("error", &buf)
	logger.Info().Msg("quiet")
	assert.Empty(t, buf.String())
	logger.Error().Msg("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNewLoggerUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("shouty", &buf)
	logger.Info().Msg("dropped")
	assert.NotContains(t, buf.String(), "dropped")
	logger.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}
