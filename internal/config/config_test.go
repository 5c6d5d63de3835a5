package config

import (
	"os"
	"path/filepath"
	"testing"
)

// ── Load / Defaults ──

func TestLoadReturnsDefaults(t *testing.T) {
	envVars := []string{
		"CALCSUITE_API_PORT", "CALCSUITE_HISTORY_BACKEND",
		"CALCSUITE_RATELIMIT_REQUESTS_PER_MINUTE", "CALCSUITE_LOGGING_LEVEL",
	}
	for _, e := range envVars {
		os.Unsetenv(e)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host: got %q, want %q", cfg.API.Host, "0.0.0.0")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port: got %d, want 8080", cfg.API.Port)
	}
	if cfg.History.Backend != "memory" {
		t.Errorf("History.Backend: got %q, want %q", cfg.History.Backend, "memory")
	}
	if cfg.History.MaxEntries != 500 {
		t.Errorf("History.MaxEntries: got %d, want 500", cfg.History.MaxEntries)
	}
	if cfg.Cache.TTL != 300 {
		t.Errorf("Cache.TTL: got %d, want 300", cfg.Cache.TTL)
	}
	if cfg.RateLimit.RequestsPerMinute != 60 {
		t.Errorf("RateLimit.RequestsPerMinute: got %d, want 60", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.RateLimit.Burst != 10 {
		t.Errorf("RateLimit.Burst: got %d, want 10", cfg.RateLimit.Burst)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level: got %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format: got %q, want %q", cfg.Logging.Format, "text")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	os.Setenv("CALCSUITE_API_PORT", "9191")
	os.Setenv("CALCSUITE_LOGGING_LEVEL", "debug")
	defer os.Unsetenv("CALCSUITE_API_PORT")
	defer os.Unsetenv("CALCSUITE_LOGGING_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.API.Port != 9191 {
		t.Errorf("API.Port: got %d, want env override 9191", cfg.API.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level: got %q, want env override %q", cfg.Logging.Level, "debug")
	}
}

// ── LoadFromFile ──

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
api:
  port: 9090
  cors_origins:
    - "https://calc.example.com"
history:
  backend: redis
  redis_addr: "redis.internal:6379"
  max_entries: 1000
ratelimit:
  requests_per_minute: 120
logging:
  level: warn
  format: json
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error: %v", err)
	}

	if cfg.API.Port != 9090 {
		t.Errorf("API.Port: got %d, want 9090", cfg.API.Port)
	}
	if len(cfg.API.CORSOrigins) != 1 || cfg.API.CORSOrigins[0] != "https://calc.example.com" {
		t.Errorf("API.CORSOrigins: got %v", cfg.API.CORSOrigins)
	}
	if cfg.History.Backend != "redis" {
		t.Errorf("History.Backend: got %q, want %q", cfg.History.Backend, "redis")
	}
	if cfg.History.RedisAddr != "redis.internal:6379" {
		t.Errorf("History.RedisAddr: got %q", cfg.History.RedisAddr)
	}
	if cfg.History.MaxEntries != 1000 {
		t.Errorf("History.MaxEntries: got %d, want 1000", cfg.History.MaxEntries)
	}
	if cfg.RateLimit.RequestsPerMinute != 120 {
		t.Errorf("RateLimit.RequestsPerMinute: got %d, want 120", cfg.RateLimit.RequestsPerMinute)
	}
	// Unset sections keep their defaults.
	if cfg.Cache.TTL != 300 {
		t.Errorf("Cache.TTL: got %d, want default 300", cfg.Cache.TTL)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Format != "json" {
		t.Errorf("Logging: got %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for a missing explicit config file")
	}
}

// ── Validate ──

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			API:       APIConfig{Host: "0.0.0.0", Port: 8080},
			History:   HistoryConfig{Backend: "memory", MaxEntries: 100},
			Cache:     CacheConfig{TTL: 60},
			RateLimit: RateLimitConfig{RequestsPerMinute: 60, Burst: 10},
			Logging:   LoggingConfig{Level: "info", Format: "text"},
		}
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.API.Port = 0 }},
		{"port too large", func(c *Config) { c.API.Port = 70000 }},
		{"unknown backend", func(c *Config) { c.History.Backend = "postgres" }},
		{"redis without addr", func(c *Config) { c.History.Backend = "redis"; c.History.RedisAddr = "" }},
		{"zero max entries", func(c *Config) { c.History.MaxEntries = 0 }},
		{"zero rate limit", func(c *Config) { c.RateLimit.RequestsPerMinute = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{API: APIConfig{Host: "127.0.0.1", Port: 9090}}
	if got := cfg.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("Addr() = %q, want 127.0.0.1:9090", got)
	}
}
