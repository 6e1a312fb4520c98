package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 100, cfg.RateRPS)
	assert.Equal(t, 3, cfg.TZOffsetHours)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/fuelcards")
	t.Setenv("RATE_RPS", "50")
	t.Setenv("BUSINESS_TZ_OFFSET_HOURS", "5")

	cfg := Load()

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "postgres://localhost/fuelcards", cfg.DatabaseURL)
	assert.Equal(t, 50, cfg.RateRPS)
	assert.Equal(t, 5, cfg.TZOffsetHours)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("RATE_RPS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 100, cfg.RateRPS)
}
