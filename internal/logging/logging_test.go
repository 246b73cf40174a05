package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("warn", &buf)

	log.Info().Msg("below threshold")
	log.Warn().Msg("at threshold")

	out := buf.String()
	assert.NotContains(t, out, "below threshold")
	assert.Contains(t, out, "at threshold")
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New("shouting", &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("visible")

	out := buf.String()
	require.Contains(t, out, "visible")
	assert.NotContains(t, out, "hidden")
}
