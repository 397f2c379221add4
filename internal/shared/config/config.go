package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds application configuration.
type Config struct {
	Env             string   `env:"ENV" envDefault:"dev"`
	Port            string   `env:"PORT" envDefault:"8080"`
	CORSAllowOrigin []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string   `env:"LOG_FORMAT" envDefault:"json"`

	MaxBodyBytes   int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"`

	CacheBackend        string        `env:"CACHE_BACKEND" envDefault:"memory"`
	CacheTTL            time.Duration `env:"CACHE_TTL" envDefault:"15m"`
	CacheMaxEntries     int           `env:"CACHE_MAX_ENTRIES" envDefault:"1000"`
	RedisURL            string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`

	RateLimitAnalyzeRPS   float64 `env:"RATE_LIMIT_ANALYZE_RPS" envDefault:"2"`
	RateLimitAnalyzeBurst int     `env:"RATE_LIMIT_ANALYZE_BURST" envDefault:"10"`
	RateLimitDefaultRPS   float64 `env:"RATE_LIMIT_DEFAULT_RPS" envDefault:"10"`
	RateLimitDefaultBurst int     `env:"RATE_LIMIT_DEFAULT_BURST" envDefault:"40"`
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.CacheBackend = normalizeCacheBackend(cfg.CacheBackend)
	cfg.CORSAllowOrigin = splitAndTrim(cfg.CORSAllowOrigin)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction reports whether ENV resolved to production.
func (c Config) IsProduction() bool { return c.Env == "production" }

func (c Config) validate() error {
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}
	if c.CacheBackend == "redis" && strings.TrimSpace(c.RedisURL) == "" {
		return fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=redis")
	}
	return nil
}

func splitAndTrim(parts []string) []string {
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeCacheBackend(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "redis":
		return "redis"
	case "none", "off", "disabled":
		return "none"
	default:
		return "memory"
	}
}
