package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("BILLING_DEFAULT_RATE_TYPE", "")
	t.Setenv("SUBSCRIPTION_EXPIRING_DAYS", "")
	t.Setenv("JWT_ACCESS_TTL", "")
	t.Setenv("APP_TIMEZONE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "MINUTE", cfg.DefaultRateType)
	assert.Equal(t, 7, cfg.ExpiringWindowDays)
	assert.Equal(t, 12*time.Hour, cfg.JWTAccessTTL)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadRejectsDefaultSecretInProd(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")
}

func TestLoadRejectsUnknownRateType(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("BILLING_DEFAULT_RATE_TYPE", "helmet")

	_, err := Load()
	assert.ErrorContains(t, err, "BILLING_DEFAULT_RATE_TYPE")
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("BILLING_DEFAULT_RATE_TYPE", "hour")
	t.Setenv("SUBSCRIPTION_EXPIRING_DAYS", "3")
	t.Setenv("JWT_ACCESS_TTL", "30m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "HOUR", cfg.DefaultRateType)
	assert.Equal(t, 3, cfg.ExpiringWindowDays)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoadRejectsBadTimezone(t *testing.T) {
	t.Setenv("APP_ENV", "dev")
	t.Setenv("APP_TIMEZONE", "Mars/Olympus")

	_, err := Load()
	assert.ErrorContains(t, err, "APP_TIMEZONE")
}
