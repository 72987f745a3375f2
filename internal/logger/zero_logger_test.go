package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestZeroLogger_WritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, Fields{"service": "travelsheet"})

	l.Info("catalog loaded", map[string]interface{}{"countries": 3})
	l.Error(errors.New("write failed"), map[string]interface{}{"code": "PL"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "catalog loaded", entries[0]["message"])
	assert.Equal(t, "travelsheet", entries[0]["service"])
	assert.EqualValues(t, 3, entries[0]["countries"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "write failed", entries[1]["error"])
	assert.Equal(t, "PL", entries[1]["code"])
}

func TestZeroLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelWarn, nil)

	l.Debug("hidden", nil)
	l.Info("hidden", nil)
	l.Warn("shown", nil)
	assert.Len(t, decodeLines(t, &buf), 1)

	buf.Reset()
	l.SetLevel(LevelOff)
	l.Warn("hidden", nil)
	assert.Empty(t, buf.String())
}

func TestZeroLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewZeroLogger(&buf, LevelDebug, Fields{"service": "travelsheet"})
	child := base.With(Fields{"module": "browse"})

	child.Debug("transition", nil)
	base.Debug("plain", nil)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "browse", entries[0]["module"])
	assert.Equal(t, "travelsheet", entries[0]["service"])
	_, ok := entries[1]["module"]
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelOff, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
	assert.Equal(t, "WARN", LevelWarn.String())
}

func TestNullLogger(t *testing.T) {
	var l Logger = NewNullLogger()
	assert.NotPanics(t, func() {
		l.Info("x", nil)
		l.With(Fields{"a": 1}).Warn("y", nil)
		l.Error(errors.New("z"), nil)
		l.SetLevel(LevelDebug)
	})
}
