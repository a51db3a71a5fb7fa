package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.ForceAuth)
	assert.Empty(t, cfg.CORSOrigins)
	assert.Equal(t, 86400*time.Second, cfg.IdempotencyTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("FORCE_AUTH", "true")
	t.Setenv("CORS_ORIGINS", "https://study.example.com, https://admin.example.com")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "3600")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.ForceAuth)
	assert.Equal(t, []string{"https://study.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, time.Hour, cfg.IdempotencyTTL)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("FORCE_AUTH", "not-a-bool")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "-5")

	cfg := Load()

	assert.False(t, cfg.ForceAuth)
	assert.Equal(t, 86400*time.Second, cfg.IdempotencyTTL)
}
