package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/orris-inc/fibgate/internal/shared/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func TestInit_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	err := Init(&sharedConfig.LoggerConfig{Level: "info", Format: "json", OutputPath: path}, "release")
	require.NoError(t, err)

	NewLogger().Named("fib").Infow("token fetched", "payment_id", "abc")
	NewLogger().Debugw("dropped at info level")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "token fetched", entry["msg"])
	assert.Equal(t, "fib", entry["logger"])
	assert.Equal(t, "abc", entry["payment_id"])
}

func TestNewLoggerWithSlog(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	log.With("operation", "Cancel Payment API").Warnw("FIB API failure", "status", 404)

	out := buf.String()
	assert.Contains(t, out, "FIB API failure")
	assert.Contains(t, out, `operation="Cancel Payment API"`)
	assert.Contains(t, out, "status=404")
}

func TestNewNop(t *testing.T) {
	log := NewNop()

	assert.NotPanics(t, func() {
		log.Named("x").With("k", "v").Errorw("ignored", "error", os.ErrNotExist)
	})
}
