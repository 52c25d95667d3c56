package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"UNISTATS_ADDR", "LOG_LEVEL", "DB_DRIVER", "DB_DSN", "REDIS_URL",
		"CACHE_ENABLED", "CACHE_TTL", "CACHE_BREAKER_COOLDOWN", "MIN_AVERAGE", "MIN_ENTRIES_PER_SCHOOL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.Server.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Empty(t, cfg.Redis.URL)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 168*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 30*time.Second, cfg.Cache.BreakerCooldown)
	assert.Equal(t, 60.0, cfg.Filter.MinAverage)
	assert.Equal(t, 2, cfg.Filter.MinEntriesPerSchool)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("UNISTATS_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_DSN", "postgres://localhost/unistats")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_TTL", "1h")
	t.Setenv("MIN_AVERAGE", "70.5")
	t.Setenv("MIN_ENTRIES_PER_SCHOOL", "5")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.Server.LogLevel)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 70.5, cfg.Filter.MinAverage)
	assert.Equal(t, 5, cfg.Filter.MinEntriesPerSchool)
}

func TestFromEnvRejectsMalformedValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("CACHE_TTL", "a week")
	t.Setenv("MIN_AVERAGE", "sixty")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
	assert.Contains(t, err.Error(), "CACHE_TTL")
	assert.Contains(t, err.Error(), "MIN_AVERAGE")
}
