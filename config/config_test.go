package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, ":8082", cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Store.Premium)
	assert.Empty(t, cfg.Store.CatalogPath)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.ReviewLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_PREMIUM", "false")
	t.Setenv("STORE_CATALOG_PATH", "/etc/storefront/catalog.yaml")
	t.Setenv("SERVER_READ_TIME_OUT", "30")
	t.Setenv("RATE_LIMIT_REVIEW_WINDOW", "90s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://shop.example, ,http://localhost:5173")

	cfg := Load()

	assert.False(t, cfg.Store.Premium)
	assert.Equal(t, "/etc/storefront/catalog.yaml", cfg.Store.CatalogPath)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 90*time.Second, cfg.RateLimit.ReviewWindow)
	assert.Equal(t, []string{"https://shop.example", "http://localhost:5173"}, cfg.Cors.AllowedOrigins)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("STORE_PREMIUM", "sometimes")
	t.Setenv("CACHE_DB", "first")

	cfg := Load()

	assert.True(t, cfg.Store.Premium)
	assert.Equal(t, 0, cfg.Cache.DB)
}

func TestLogLevelFor(t *testing.T) {
	assert.Equal(t, "info", LogLevelFor("production"))
	assert.Equal(t, "debug", LogLevelFor("development"))
	assert.Equal(t, "debug", LogLevelFor(""))
}
