package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) {
	t.Helper()
	// keep a developer's .env out of the picture
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	for _, k := range []string{
		"SERVER_PORT", "DB_PATH", "LOG_LEVEL", "SLEEPER_BASE_URL", "ROSTER_CACHE_TTL",
		"IMAGE_BASE_URL", "IMAGE_MODEL", "IMAGE_WIDTH", "IMAGE_HEIGHT",
		"METRICS_ENABLED", "OTLP_ENDPOINT", "OTLP_INSECURE", "SERVICE_NAME",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "league-logos.db", cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://api.sleeper.app/v1", cfg.SleeperBaseURL)
	assert.Equal(t, 10*time.Minute, cfg.RosterCacheTTL)
	assert.Equal(t, "https://image.pollinations.ai/prompt/", cfg.ImageBaseURL)
	assert.Empty(t, cfg.ImageModel)
	assert.Equal(t, 1024, cfg.ImageWidth)
	assert.Equal(t, 1024, cfg.ImageHeight)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.OTLPInsecure)
	assert.Equal(t, "league-logos", cfg.ServiceName)
}

func TestLoadOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SLEEPER_BASE_URL", "http://sleeper.local/v1/")
	t.Setenv("ROSTER_CACHE_TTL", "90s")
	t.Setenv("IMAGE_WIDTH", "512")
	t.Setenv("IMAGE_HEIGHT", "768")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "http://sleeper.local/v1", cfg.SleeperBaseURL)
	assert.Equal(t, 90*time.Second, cfg.RosterCacheTTL)
	assert.Equal(t, 512, cfg.ImageWidth)
	assert.Equal(t, 768, cfg.ImageHeight)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	chdirTemp(t)
	t.Setenv("IMAGE_WIDTH", "wide")
	t.Setenv("IMAGE_HEIGHT", "-1")
	t.Setenv("ROSTER_CACHE_TTL", "soon")
	t.Setenv("METRICS_ENABLED", "maybe")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IMAGE_WIDTH")
	assert.Contains(t, err.Error(), "ROSTER_CACHE_TTL")
	assert.Contains(t, err.Error(), "METRICS_ENABLED")
	assert.Contains(t, err.Error(), "must be positive")
}
