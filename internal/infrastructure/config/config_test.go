package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)

	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, "course_catalog.json", cfg.Store.File)
	assert.Empty(t, cfg.Store.SeedFile)

	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "courses", cfg.Redis.Key)
	assert.Equal(t, uint32(5), cfg.Redis.BreakerThreshold)
	assert.Equal(t, 30*time.Second, cfg.Redis.BreakerCooldown)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.Equal(t, "app.log", cfg.Logging.File)

	assert.True(t, cfg.Tracing.Enabled)
	assert.Equal(t, "localhost:4317", cfg.Tracing.Endpoint)
	assert.Equal(t, "course-catalog-service", cfg.Tracing.ServiceName)

	assert.Equal(t, 100, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 200, cfg.RateLimit.Burst)
	assert.True(t, cfg.RateLimit.Enabled)

	require.NoError(t, cfg.Validate())
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":                   "9000",
		"HOST":                   "127.0.0.1",
		"STORE_BACKEND":          "redis",
		"CATALOG_SEED_FILE":      "seed.yaml",
		"REDIS_ADDR":             "redis:6379",
		"REDIS_DB":               "2",
		"REDIS_KEY":              "catalog:courses",
		"REDIS_BREAKER_COOLDOWN": "1m",
		"LOG_LEVEL":              "debug",
		"LOG_DEV":                "true",
		"LOG_FILE":               "/var/log/catalog.log",
		"TRACING_ENABLED":        "false",
		"TRACING_ENDPOINT":       "jaeger:4317",
		"FLASH_SECRET":           "s3cr3t",
		"RATE_LIMIT_RPS":         "500",
		"RATE_LIMIT_BURST":       "1000",
		"RATE_LIMIT_ENABLED":     "false",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, BackendRedis, cfg.Store.Backend)
	assert.Equal(t, "seed.yaml", cfg.Store.SeedFile)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "catalog:courses", cfg.Redis.Key)
	assert.Equal(t, time.Minute, cfg.Redis.BreakerCooldown)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, "/var/log/catalog.log", cfg.Logging.File)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "jaeger:4317", cfg.Tracing.Endpoint)
	assert.Equal(t, "s3cr3t", cfg.Flash.Secret)
	assert.Equal(t, 500, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 1000, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown backend", map[string]string{"STORE_BACKEND": "sqlite"}},
		{"bad integer", map[string]string{"RATE_LIMIT_RPS": "fast"}},
		{"bad bool", map[string]string{"TRACING_ENABLED": "maybe"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadOrDefaultFallsBack(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")

	cfg := LoadOrDefault()
	assert.Equal(t, BackendFile, cfg.Store.Backend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"redis backend", func(c *Config) { c.Store.Backend = BackendRedis }, false},
		{"empty catalog file", func(c *Config) { c.Store.File = "" }, true},
		{"empty redis addr", func(c *Config) {
			c.Store.Backend = BackendRedis
			c.Redis.Addr = ""
		}, true},
		{"empty flash secret", func(c *Config) { c.Flash.Secret = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
