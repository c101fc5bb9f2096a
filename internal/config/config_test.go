package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("JWT_ACCESS_EXPIRY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 10*time.Minute, cfg.Cache.DetailTTL)
}

func TestLoad_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "hunter22")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("DB_PASSWORD", "")

	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestGetEnvDuration_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("CACHE_DETAIL_TTL", "ten minutes")
	assert.Equal(t, time.Minute, getEnvDuration("CACHE_DETAIL_TTL", time.Minute))

	t.Setenv("CACHE_DETAIL_TTL", "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration("CACHE_DETAIL_TTL", time.Minute))
}

func TestLoadDatabaseConfig_RejectsBadPort(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")
	_, err := LoadDatabaseConfig()
	require.Error(t, err)
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("APP_TRUSTED_PROXIES", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.App.TrustedProxies)

	t.Setenv("APP_TRUSTED_PROXIES", "10.0.0.0/8, 192.168.1.1,")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, cfg.App.TrustedProxies)
}
