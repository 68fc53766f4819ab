// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Site      SiteConfig      `koanf:"site"`
	Listing   ListingConfig   `koanf:"listing"`
	CMS       CMSConfig       `koanf:"cms"`
	Store     StoreConfig     `koanf:"store"`
	Redis     RedisConfig     `koanf:"redis"`
	Dashboard DashboardConfig `koanf:"dashboard"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// SiteConfig holds the public identity of the content site. CMS site settings
// override these when present.
type SiteConfig struct {
	BaseURL      string   `koanf:"base_url"`
	Name         string   `koanf:"name"`
	Description  string   `koanf:"description"`
	LogoURL      string   `koanf:"logo_url"`
	ContactEmail string   `koanf:"contact_email"`
	ContactPhone string   `koanf:"contact_phone"`
	SameAs       []string `koanf:"same_as"`
}

// ListingConfig holds pagination settings for content listings.
type ListingConfig struct {
	BlogPageSize    int `koanf:"blog_page_size"`
	GalleryPageSize int `koanf:"gallery_page_size"`
	MaxVisiblePages int `koanf:"max_visible_pages"`
	RelatedPosts    int `koanf:"related_posts"`
}

// CMSConfig holds headless CMS settings.
type CMSConfig struct {
	Dataset    string       `koanf:"dataset"`
	APIVersion string       `koanf:"api_version"`
	Token      string       `koanf:"token"`
	Client     ClientConfig `koanf:"client"`
}

// StoreConfig holds document store settings.
type StoreConfig struct {
	ProjectID  string       `koanf:"project_id"`
	Database   string       `koanf:"database"`
	Token      string       `koanf:"token"`
	QueryLimit int          `koanf:"query_limit"`
	Client     ClientConfig `koanf:"client"`
}

// RedisConfig holds the presence stream settings.
type RedisConfig struct {
	Addr              string        `koanf:"addr"`
	Password          string        `koanf:"password"`
	DB                int           `koanf:"db"`
	Channel           string        `koanf:"channel"`
	CountKey          string        `koanf:"count_key"`
	HeartbeatInterval time.Duration `koanf:"heartbeat_interval"`
}

// DashboardConfig holds admin dashboard settings.
type DashboardConfig struct {
	ActiveWindow   time.Duration `koanf:"active_window"`
	RecentActivity int           `koanf:"recent_activity"`
	Workers        int           `koanf:"workers"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A zero RequestsPerSecond
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}
