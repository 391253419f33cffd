// Package config provides application configuration management.
// Configuration is loaded from environment variables following 12-factor principles.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"

	"github.com/caarlos0/env/v10"
)

// ErrInvalidConfig is returned when a variable parses but is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all application configuration.
// All fields are populated from environment variables.
type Config struct {
	// Application settings
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppPort int    `env:"APP_PORT" envDefault:"8080"`

	// Public origin of the site (e.g., https://jackpotai.app). Overrides the
	// url in the content file when set.
	SiteURL string `env:"SITE_URL"`

	// Content and templates. Empty means the copies embedded in the binary.
	ContentDir  string `env:"CONTENT_DIR"`
	TemplateDir string `env:"TEMPLATE_DIR"`

	// Cache (Redis). Optional: without it pages render on every request and
	// redirects are not rate limited.
	RedisURL     string        `env:"REDIS_URL"`
	PageCacheTTL time.Duration `env:"PAGE_CACHE_TTL" envDefault:"10m"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Server timeouts
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"2s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Rate limiting of redirect routes, per client IP
	RateLimitRedirectRPS   int `env:"RATE_LIMIT_REDIRECT_RPS" envDefault:"10"`
	RateLimitRedirectBurst int `env:"RATE_LIMIT_REDIRECT_BURST" envDefault:"20"`

	// Maximum URLs per sitemap file before an index is emitted
	SitemapSize int `env:"SITEMAP_SIZE" envDefault:"5000"`
}

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// HasRedis reports whether a Redis URL is configured.
func (c *Config) HasRedis() bool {
	return c.RedisURL != ""
}

// Validate checks value ranges that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.AppPort < 1 || c.AppPort > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT %d out of range", c.AppPort))
	}
	if c.SiteURL != "" {
		u, err := url.Parse(c.SiteURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("SITE_URL %q must be an absolute http(s) URL", c.SiteURL))
		}
	}
	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("LOG_LEVEL %q must be one of %v", c.LogLevel, logLevels))
	}
	if !slices.Contains(logFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q must be one of %v", c.LogFormat, logFormats))
	}
	if c.PageCacheTTL < 0 {
		errs = append(errs, errors.New("PAGE_CACHE_TTL must not be negative"))
	}
	if c.RateLimitRedirectRPS < 0 {
		errs = append(errs, errors.New("RATE_LIMIT_REDIRECT_RPS must not be negative"))
	}
	if c.RateLimitRedirectRPS > 0 && c.RateLimitRedirectBurst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_REDIRECT_BURST must be at least 1"))
	}
	if c.SitemapSize < 1 {
		errs = append(errs, errors.New("SITEMAP_SIZE must be at least 1"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Load parses environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
