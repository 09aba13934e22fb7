package model

import "time"

// Config holds all FloatChat settings
type Config struct {
	Chat         ChatConfig         `yaml:"chat" mapstructure:"chat"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
}

// ChatConfig controls answer generation
type ChatConfig struct {
	Delay       time.Duration `yaml:"delay" mapstructure:"delay"`               // Simulated analysis time, 0 disables
	DefaultRole Role          `yaml:"default_role" mapstructure:"default_role"` // Scientist, Policymaker, Student
	CatalogFile string        `yaml:"catalog_file" mapstructure:"catalog_file"` // YAML catalog, empty uses built-in
}

// CacheConfig controls the answer cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// ConcurrencyConfig controls batch resolution
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig throttles questions per chat session
type RateLimitingConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Chat: ChatConfig{
			Delay:       1500 * time.Millisecond,
			DefaultRole: RoleScientist,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             10 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			RequestsPerSecond: 2,
			BurstSize:         5,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
