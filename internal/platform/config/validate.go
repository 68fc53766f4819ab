package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
		c.Site.validate(),
		c.Listing.validate(),
		c.CMS.validate(),
		c.Store.validate(),
		c.Redis.validate(),
		c.Dashboard.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (s *SiteConfig) validate() error {
	var errs []error

	if err := validateAbsoluteURL("site.base_url", s.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if s.Name == "" {
		errs = append(errs, errors.New("site.name must not be empty"))
	}

	return errors.Join(errs...)
}

func (l *ListingConfig) validate() error {
	var errs []error

	if l.BlogPageSize < 1 {
		errs = append(errs, fmt.Errorf("listing.blog_page_size must be >= 1, got %d", l.BlogPageSize))
	}
	if l.GalleryPageSize < 1 {
		errs = append(errs, fmt.Errorf("listing.gallery_page_size must be >= 1, got %d", l.GalleryPageSize))
	}
	if l.MaxVisiblePages < 3 {
		errs = append(errs, fmt.Errorf("listing.max_visible_pages must be >= 3, got %d", l.MaxVisiblePages))
	}
	if l.RelatedPosts < 0 {
		errs = append(errs, fmt.Errorf("listing.related_posts must not be negative, got %d", l.RelatedPosts))
	}

	return errors.Join(errs...)
}

func (c *CMSConfig) validate() error {
	var errs []error

	if c.Dataset == "" {
		errs = append(errs, errors.New("cms.dataset must not be empty"))
	}
	if c.APIVersion == "" {
		errs = append(errs, errors.New("cms.api_version must not be empty"))
	}
	errs = append(errs, c.Client.validate("cms.client"))

	return errors.Join(errs...)
}

func (s *StoreConfig) validate() error {
	var errs []error

	if s.ProjectID == "" {
		errs = append(errs, errors.New("store.project_id must not be empty"))
	}
	if s.Database == "" {
		errs = append(errs, errors.New("store.database must not be empty"))
	}
	if s.QueryLimit < 1 {
		errs = append(errs, fmt.Errorf("store.query_limit must be >= 1, got %d", s.QueryLimit))
	}
	errs = append(errs, s.Client.validate("store.client"))

	return errors.Join(errs...)
}

func (r *RedisConfig) validate() error {
	var errs []error

	if r.Addr == "" {
		errs = append(errs, errors.New("redis.addr must not be empty"))
	}
	if r.Channel == "" {
		errs = append(errs, errors.New("redis.channel must not be empty"))
	}
	if r.HeartbeatInterval <= 0 {
		errs = append(errs, errors.New("redis.heartbeat_interval must be positive"))
	}

	return errors.Join(errs...)
}

func (d *DashboardConfig) validate() error {
	var errs []error

	if d.ActiveWindow <= 0 {
		errs = append(errs, errors.New("dashboard.active_window must be positive"))
	}
	if d.Workers < 1 {
		errs = append(errs, fmt.Errorf("dashboard.workers must be >= 1, got %d", d.Workers))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if err := validateAbsoluteURL(prefix+".base_url", cl.BaseURL); err != nil {
		errs = append(errs, err)
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.retry.max_attempts must be >= 1, got %d", prefix, cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.retry.multiplier must be positive, got %f", prefix, cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative", prefix))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled", prefix))
	}

	return errors.Join(errs...)
}

func validateAbsoluteURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s must not be empty", key)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return nil
}
