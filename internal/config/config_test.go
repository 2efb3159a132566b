package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatingsBackendName(t *testing.T) {
	cases := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{"explicit memory", Config{RatingsBackend: "memory", DatabaseURL: "local.db"}, "memory"},
		{"explicit postgres", Config{RatingsBackend: "postgres"}, "postgres"},
		{"no database configured", Config{}, "memory"},
		{"postgres url", Config{DatabaseURL: "postgres://u:p@host/db"}, "postgres"},
		{"postgresql url", Config{DatabaseURL: "postgresql://u:p@host/db"}, "postgres"},
		{"sqlite file", Config{DatabaseURL: "local.db"}, "sqlite"},
		{"dedicated ratings url wins", Config{DatabaseURL: "local.db", RatingsDatabaseURL: "postgres://u:p@host/ratings"}, "postgres"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cfg.RatingsBackendName())
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "local.db", cfg.DatabaseURL)
	assert.NotZero(t, cfg.RateLimitRPS)
	assert.NotEmpty(t, cfg.AllowedOrigins)
}
