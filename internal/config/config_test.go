package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PORT", "ENVIRONMENT", "DATA_PATH", "DATABASE_URL", "REDIS_URL", "COMPARE_CACHE_TTL", "LOG_LEVEL", "LOG_FORMAT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "data/superheroes.json", cfg.DataPath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 10*time.Minute, cfg.CompareCacheTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATA_PATH", "/srv/heroes.json")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("COMPARE_CACHE_TTL", "90")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, "/srv/heroes.json", cfg.DataPath)
	assert.Equal(t, 90*time.Second, cfg.CompareCacheTTL)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:            "3000",
			DataPath:        "data/superheroes.json",
			CompareCacheTTL: time.Minute,
			LogFormat:       "console",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "database only", mutate: func(c *Config) { c.DataPath = ""; c.DatabaseURL = "postgres://x" }},
		{name: "bad port", mutate: func(c *Config) { c.Port = "http" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: true},
		{name: "no dataset", mutate: func(c *Config) { c.DataPath = "" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.CompareCacheTTL = 0 }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "not-a-duration")
	assert.Equal(t, time.Second, getEnvDuration("TEST_DURATION", time.Second))

	t.Setenv("TEST_DURATION", "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvDuration("TEST_DURATION", time.Second))
}
