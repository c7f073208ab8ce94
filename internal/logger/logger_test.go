package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for level, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	} {
		assert.Equal(t, want, ParseLevel(level), level)
	}
}

func TestNew(t *testing.T) {
	// Given: a warn level logger
	var buf bytes.Buffer
	log := New("warn", &buf)

	// When: logging below and at the level
	log.Info("hidden")
	log.Warn("shown", "component", "match")

	// Then: only the warning is written, as JSON
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "match", entry["component"])
}
