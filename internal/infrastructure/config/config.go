package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Redis     RedisConfig
	Logging   LogConfig
	Tracing   TracingConfig
	Flash     FlashConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// StoreConfig selects and configures the course store backend.
type StoreConfig struct {
	Backend  string `envconfig:"STORE_BACKEND" default:"file"`
	File     string `envconfig:"CATALOG_FILE" default:"course_catalog.json"`
	SeedFile string `envconfig:"CATALOG_SEED_FILE"`
}

// RedisConfig holds connection settings for the redis store backend.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Key      string `envconfig:"REDIS_KEY" default:"courses"`

	// BreakerThreshold consecutive failures open the store circuit for
	// BreakerCooldown.
	BreakerThreshold uint32        `envconfig:"REDIS_BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown  time.Duration `envconfig:"REDIS_BREAKER_COOLDOWN" default:"30s"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
	File        string `envconfig:"LOG_FILE" default:"app.log"`
}

// TracingConfig holds span export configuration.
type TracingConfig struct {
	Enabled     bool   `envconfig:"TRACING_ENABLED" default:"true"`
	Endpoint    string `envconfig:"TRACING_ENDPOINT" default:"localhost:4317"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"course-catalog-service"`
}

// FlashConfig holds the key used to sign flash notice cookies.
type FlashConfig struct {
	Secret string `envconfig:"FLASH_SECRET" default:"secret"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Store backends
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Validate checks values envconfig cannot check on its own.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile:
		if c.Store.File == "" {
			return fmt.Errorf("invalid config: CATALOG_FILE is required for the file backend")
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("invalid config: REDIS_ADDR is required for the redis backend")
		}
	default:
		return fmt.Errorf("invalid config: unknown store backend %q", c.Store.Backend)
	}
	if c.Flash.Secret == "" {
		return fmt.Errorf("invalid config: FLASH_SECRET must not be empty")
	}
	return nil
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Store: StoreConfig{
			Backend: BackendFile,
			File:    "course_catalog.json",
		},
		Redis: RedisConfig{
			Addr:             "localhost:6379",
			Key:              "courses",
			BreakerThreshold: 5,
			BreakerCooldown:  30 * time.Second,
		},
		Logging: LogConfig{
			Level: "info",
			File:  "app.log",
		},
		Tracing: TracingConfig{
			Enabled:     true,
			Endpoint:    "localhost:4317",
			ServiceName: "course-catalog-service",
		},
		Flash: FlashConfig{
			Secret: "secret",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
	}
}
