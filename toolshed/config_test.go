package toolshed

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"TOOLSHED_STORE", "TOOLSHED_LOG_LEVEL", "TOOLSHED_NO_BANNER"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.NoBanner)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("TOOLSHED_STORE", "sqlite")
	t.Setenv("TOOLSHED_LOG_LEVEL", "debug")
	t.Setenv("TOOLSHED_NO_BANNER", "1")

	cfg := LoadConfig()
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.NoBanner)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, parseLevel("nonsense"))
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("info", &buf)
	logger.Debug("hidden")
	logger.Info("tool borrowed", "tool", "Hammer")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "tool=Hammer")
}
