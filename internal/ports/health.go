package ports

import "context"

// HealthChecker reports whether one downstream is reachable. The CMS and
// store HTTP clients and the Redis presence stream implement it.
type HealthChecker interface {
	// Name labels the result in the readiness body, e.g. "cms".
	Name() string

	// HealthCheck returns nil when the downstream answers before ctx ends.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs every registered checker for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll returns one entry per checker name; nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
