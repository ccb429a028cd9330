package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.input))
		})
	}
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: "debug", Format: FormatText, Output: &buf})
	logger.Debug("hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "key=value")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: "info", Format: FormatJSON, Output: &buf})
	logger.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&Config{Level: "warn", Format: FormatText, Output: &buf})
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
}

func TestNewNilConfig(t *testing.T) {
	require.NotNil(t, New(nil))
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "Debug")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg := FromEnv()
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, FormatJSON, cfg.Format)
}
