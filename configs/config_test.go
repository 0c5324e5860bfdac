package configs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avatarctic/inventory-service/configs"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT", "SYS_APP_HOSTNAME",
		"SYS_APP_PORT", "LIVENESS_MEMORY_THRESHOLD", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "9085", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.System.Hostname)
	assert.Equal(t, "9080", cfg.System.Port)
	assert.InDelta(t, 0.9, cfg.Liveness.MemoryThreshold, 1e-9)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SYS_APP_HOSTNAME", "system-service")
	t.Setenv("SYS_APP_PORT", "19080")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("LIVENESS_MEMORY_THRESHOLD", "0.75")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, "system-service", cfg.System.Hostname)
	assert.Equal(t, "19080", cfg.System.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.InDelta(t, 0.75, cfg.Liveness.MemoryThreshold, 1e-9)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")
	t.Setenv("LIVENESS_MEMORY_THRESHOLD", "most")

	cfg, err := configs.Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.InDelta(t, 0.9, cfg.Liveness.MemoryThreshold, 1e-9)
}
