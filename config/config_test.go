//go:build unit

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "APP_PORT", "POSTGRES_URL", "NATS_URL", "NATS_CLIENT_ID", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, "", cfg.NatsURL)
	assert.Equal(t, []string{"*"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "posts-service", cfg.NatsClientID)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_URL", "postgres://u:p@db:5432/posts")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MAX_CONN_IDLE_TIME", "90s")
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://posts.example.com ,")
	t.Setenv("SHUTDOWN_TIMEOUT", "10s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, "postgres://u:p@db:5432/posts", cfg.DbURL)
	assert.Equal(t, 25, cfg.DbMaxConns)
	assert.Equal(t, 90*time.Second, cfg.DbMaxConnIdleTime)
	assert.Equal(t, "nats://nats:4222", cfg.NatsURL)
	assert.Equal(t, []string{"http://localhost:3000", "https://posts.example.com"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")
	t.Setenv("DB_MAX_CONN_LIFETIME", "forever")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.AppPort)
	assert.Equal(t, time.Hour, cfg.DbMaxConnLifetime)
}
