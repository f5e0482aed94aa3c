package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, "storefront_session", cfg.Session.CookieName)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "/assets", cfg.Assets.BaseURL)
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Nil(t, cfg.Server.TrustedProxies)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SESSION_STORE", "Redis")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("ASSET_BASE_URL", "https://cdn.test/img/")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 2.5, cfg.RateLimit.RPS)
	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, "https://cdn.test/img", cfg.Assets.BaseURL)
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.Server.TrustedProxies)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 40, cfg.RateLimit.Burst)
}

func TestLoad_UnsupportedStore(t *testing.T) {
	t.Setenv("SESSION_STORE", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported SESSION_STORE")
}

func TestValidate_NonPositiveTTL(t *testing.T) {
	cfg := &Config{Session: SessionConfig{Store: SessionStoreMemory, TTL: 0, Secret: "x"}}

	assert.Error(t, cfg.Validate())
}
