package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.Location.String())
	assert.Equal(t, 1000, cfg.RenderRowLimit)
	assert.Equal(t, 10*time.Minute, cfg.TemplateCacheTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SKIP_AUTH", "true")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("ENVIRONMENT", "Production")
	t.Setenv("PROJECTOR_WORKERS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.SkipAuth)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 1, cfg.ProjectorWorkers)
}

func TestLoadConfigRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")

	_, err := LoadConfig()
	assert.Error(t, err)
}
