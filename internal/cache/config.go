package cache

import "time"

// Config holds cache TTL configuration
type Config struct {
	NameTTL         time.Duration
	MaxSize         int
	CleanupInterval time.Duration
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		NameTTL:         24 * time.Hour, // Display names rarely change
		MaxSize:         10000,
		CleanupInterval: 5 * time.Minute,
	}
}
