// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration. Redis is optional; with no URL
// the display-name cache runs in memory.
type Config struct {
	RedisURL        string        `env:"REDIS_URL"`
	CachePrefix     string        `env:"CACHE_PREFIX" envDefault:"nostrview:"`
	CacheMaxSize    int           `env:"CACHE_MAX_SIZE" envDefault:"10000"`
	NameCacheTTL    time.Duration `env:"NAME_CACHE_TTL" envDefault:"24h"`
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"5m"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// InitLogger initializes the structured logger with JSON output.
func InitLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})
	slog.SetDefault(slog.New(handler))
}
