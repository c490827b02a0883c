package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, []string{"test"}, cfg.ApiKeys)
	assert.Equal(t, "testdata/nigeria_indicators.csv", cfg.DataPath)
	assert.False(t, cfg.Watch)
	assert.Equal(t, 100, cfg.RateLimit)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("NGDASH_PORT", "8080")
	t.Setenv("NGDASH_ENV", "production")
	t.Setenv("NGDASH_API_KEYS", "alpha,beta")
	t.Setenv("NGDASH_DATA_PATH", "/srv/data/indicators.csv")
	t.Setenv("NGDASH_WATCH", "true")
	t.Setenv("NGDASH_RATE_LIMIT", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, []string{"alpha", "beta"}, cfg.ApiKeys)
	assert.Equal(t, "/srv/data/indicators.csv", cfg.DataPath)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 25, cfg.RateLimit)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("NGDASH_PORT", "not-a-port")

	_, err := LoadConfig()
	assert.Error(t, err)
}
