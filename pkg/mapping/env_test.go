package mapping

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvConfigDefaults(t *testing.T) {
	t.Setenv("CTLMAP_MAPPINGS", "")
	t.Setenv("CTLMAP_TRACE_FILE", "")

	cfg, err := LoadEnvConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval)
	assert.Empty(t, cfg.MappingsFile)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEnvConfigOverrides(t *testing.T) {
	t.Setenv("CTLMAP_MAPPINGS", "/etc/ctlmap/mappings.yaml")
	t.Setenv("CTLMAP_LOG_LEVEL", "debug")
	t.Setenv("CTLMAP_TRACE_FILE", "/tmp/session.ctrace")
	t.Setenv("CTLMAP_POLL_INTERVAL", "25ms")
	t.Setenv("CTLMAP_STATE_FILE", "/var/lib/ctlmap/state.json")

	cfg, err := LoadEnvConfig()
	require.NoError(t, err)
	assert.Equal(t, "/etc/ctlmap/mappings.yaml", cfg.MappingsFile)
	assert.Equal(t, "/tmp/session.ctrace", cfg.TraceFile)
	assert.Equal(t, 25*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, "/var/lib/ctlmap/state.json", cfg.StateFile)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadEnvConfigInvalid(t *testing.T) {
	t.Setenv("CTLMAP_POLL_INTERVAL", "soon")
	_, err := LoadEnvConfig()
	assert.Error(t, err)

	t.Setenv("CTLMAP_POLL_INTERVAL", "0s")
	_, err = LoadEnvConfig()
	assert.Error(t, err)
}

func TestEnvConfigLevelInvalid(t *testing.T) {
	_, err := EnvConfig{LogLevel: "chatty"}.Level()
	assert.Error(t, err)
}
