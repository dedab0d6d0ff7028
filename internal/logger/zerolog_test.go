package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("ERROR"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("bogus"))
}

func TestJSONLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, zerolog.DebugLevel)

	l.Info("Application", "bootstrap complete", map[string]interface{}{
		"plugins": []string{"dialog", "fs", "opener"},
	})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Application", line["component"])
	assert.Equal(t, "bootstrap complete", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, zerolog.DebugLevel)

	l.Error("PluginRegistry", errors.New("no fs access"), nil)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "no fs access", line["error"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLogger(&buf, zerolog.WarnLevel)

	l.Debug("Application", "hidden", nil)
	l.Info("Application", "hidden", nil)
	assert.Zero(t, buf.Len())

	l.Warning("Application", "visible", nil)
	assert.NotZero(t, buf.Len())
}
