package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultBlogPageSize    = 9
	defaultGalleryPageSize = 12
	defaultMaxVisiblePages = 5
	defaultRelatedPosts    = 3

	defaultStoreQueryLimit   = 100
	defaultRecentActivity    = 10
	defaultDashboardWorkers  = 4
	defaultRateLimitDisabled = 0
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	m := map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "15s",

		"log.level":  "info",
		"log.format": "json",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "sitekit",

		"site.base_url":      "http://localhost:3000",
		"site.name":          "",
		"site.description":   "",
		"site.logo_url":      "",
		"site.contact_email": "",
		"site.contact_phone": "",

		"listing.blog_page_size":    defaultBlogPageSize,
		"listing.gallery_page_size": defaultGalleryPageSize,
		"listing.max_visible_pages": defaultMaxVisiblePages,
		"listing.related_posts":     defaultRelatedPosts,

		"cms.dataset":     "production",
		"cms.api_version": "v2024-01-01",
		"cms.token":       "",

		"store.project_id":  "",
		"store.database":    "(default)",
		"store.token":       "",
		"store.query_limit": defaultStoreQueryLimit,

		"redis.addr":               "localhost:6379",
		"redis.password":           "",
		"redis.db":                 0,
		"redis.channel":            "presence:users",
		"redis.count_key":          "presence:online_count",
		"redis.heartbeat_interval": "15s",

		"dashboard.active_window":   "168h",
		"dashboard.recent_activity": defaultRecentActivity,
		"dashboard.workers":         defaultDashboardWorkers,
	}

	for prefix, baseURL := range map[string]string{
		"cms.client":   "http://localhost:8081",
		"store.client": "http://localhost:8082",
	} {
		for k, v := range clientDefaults(baseURL) {
			m[prefix+"."+k] = v
		}
	}
	return m
}

// clientDefaults returns the outbound client defaults, keyed relative to the
// client section.
func clientDefaults(baseURL string) map[string]any {
	return map[string]any{
		"base_url":                        baseURL,
		"timeout":                         "30s",
		"retry.max_attempts":              defaultRetryMaxAttempts,
		"retry.initial_interval":          "100ms",
		"retry.max_interval":              "10s",
		"retry.multiplier":                defaultRetryMultiplier,
		"circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"circuit_breaker.timeout":         "30s",
		"circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"rate_limit.requests_per_second":  defaultRateLimitDisabled,
		"rate_limit.burst_size":           1,
	}
}
