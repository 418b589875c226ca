package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesKeyValueFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).Named("livefeed")

	logger.Info("tick published", "league", "PL", "fixtures", 12, "error", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "tick published", entry["msg"])
	require.Equal(t, "livefeed", entry["component"])
	require.Equal(t, "PL", entry["league"])
	require.EqualValues(t, 12, entry["fixtures"])
	require.Equal(t, "boom", entry["error"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelWarn, &buf)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], `"shown"`)
}

func TestLogger_OddArgsDoNotPanic(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf)

	logger.Info("odd", "dangling")
	logger.Info("non string key", 42, "value")

	require.Contains(t, buf.String(), `"dangling":null`)
	require.Contains(t, buf.String(), `"arg":"value"`)
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var l *Logger
	require.NotPanics(t, func() {
		l.Info("nil receiver")
		_ = l.Sync()
	})
}
