// Package config handles configuration loading for calcsuite.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	API       APIConfig       `mapstructure:"api"       yaml:"api"`
	History   HistoryConfig   `mapstructure:"history"   yaml:"history"`
	Cache     CacheConfig     `mapstructure:"cache"     yaml:"cache"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit" yaml:"ratelimit"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// HistoryConfig holds calculation history storage settings.
type HistoryConfig struct {
	Backend    string `mapstructure:"backend"     yaml:"backend"` // "memory" or "redis"
	RedisAddr  string `mapstructure:"redis_addr"  yaml:"redis_addr"`
	RedisDB    int    `mapstructure:"redis_db"    yaml:"redis_db"`
	MaxEntries int    `mapstructure:"max_entries" yaml:"max_entries"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	TTL int `mapstructure:"ttl" yaml:"ttl"` // seconds
}

// RateLimitConfig holds per-client request limits for compute endpoints.
type RateLimitConfig struct {
	RequestsPerMinute int `mapstructure:"requests_per_minute" yaml:"requests_per_minute"`
	Burst             int `mapstructure:"burst"               yaml:"burst"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.calcsuite/config.yaml (home directory)
//  3. /etc/calcsuite/config.yaml (system)
//
// Environment variables override config file values.
// Format: CALCSUITE_<SECTION>_<KEY>, e.g., CALCSUITE_API_PORT
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".calcsuite"))
	v.AddConfigPath("/etc/calcsuite")

	v.SetEnvPrefix("CALCSUITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("CALCSUITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that viper cannot express.
func (c *Config) Validate() error {
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("api.port %d out of range", c.API.Port)
	}
	switch c.History.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("history.backend must be %q or %q, got %q", "memory", "redis", c.History.Backend)
	}
	if c.History.Backend == "redis" && c.History.RedisAddr == "" {
		return fmt.Errorf("history.redis_addr is required with the redis backend")
	}
	if c.History.MaxEntries < 1 {
		return fmt.Errorf("history.max_entries must be positive")
	}
	if c.RateLimit.RequestsPerMinute < 1 || c.RateLimit.Burst < 1 {
		return fmt.Errorf("ratelimit values must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q not recognized", c.Logging.Level)
	}
	return nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// History defaults
	v.SetDefault("history.backend", "memory")
	v.SetDefault("history.redis_addr", "localhost:6379")
	v.SetDefault("history.redis_db", 0)
	v.SetDefault("history.max_entries", 500)

	// Cache defaults
	v.SetDefault("cache.ttl", 300) // 5 minutes

	// Rate limit defaults
	v.SetDefault("ratelimit.requests_per_minute", 60)
	v.SetDefault("ratelimit.burst", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory, or "." if unavailable.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// Addr returns the host:port the API server should bind.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.API.Host, c.API.Port)
}
