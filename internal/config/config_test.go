package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "devconnect", cfg.DBName)
	assert.True(t, cfg.IsTest())
	assert.False(t, cfg.IsProduction())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	base := Config{
		Port:       "8080",
		JWTSecret:  "0123456789abcdef0123456789abcdef",
		DBPassword: "s3cret-enough",
		DBSSLMode:  "require",
	}

	t.Run("valid development config", func(t *testing.T) {
		cfg := base
		cfg.Env = "development"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing JWT secret", func(t *testing.T) {
		cfg := base
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default JWT secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects short JWT secret", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects weak DB password", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production accepts a hardened config", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		assert.NoError(t, cfg.Validate())
	})
}
