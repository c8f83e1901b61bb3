package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalecode-solutions/runecut/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "info"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Debug().Msg("hidden")
	logger.Info().Int("begin", 2).Msg("slice")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"message":"slice"`)
	assert.Contains(t, out, `"begin":2`)
	assert.Contains(t, out, `"app":"runecut"`)
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runecut.log")

	var buf bytes.Buffer
	logger, closer, err := New(config.LogConfig{Level: "warn", File: path, MaxSizeMB: 1}, &buf)
	require.NoError(t, err)

	logger.Warn().Msg("to both")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(config.LogConfig{Level: "chatty"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrInvalidLevel)
}
