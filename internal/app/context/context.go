// Package appctx provides a request-scoped read cache for application
// services.
//
// A RequestContext is created per HTTP request by middleware and carried in
// the request's context. Services memoize downstream reads through it so that
// a handler composing several service calls reads each CMS document once:
//
//	rc := appctx.New()
//	ctx = appctx.WithRequestContext(ctx, rc)
//
//	settings, err := appctx.Fetch(ctx, "cms:siteSettings", cms.SiteSettings)
//
// Outside a request (no RequestContext in ctx) Fetch calls through without
// caching.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext memoizes reads for the lifetime of one request. It is safe
// for concurrent use; two goroutines missing the same key at once may both
// fetch, and the later result wins.
type RequestContext struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// Both successful results and errors are cached to prevent redundant calls
// within the same request.
type cacheEntry struct {
	value any
	err   error
}

type requestContextKey struct{}

// New creates an empty RequestContext.
func New() *RequestContext {
	return &RequestContext{cache: make(map[string]cacheEntry)}
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
func GetOrFetch[T any](ctx context.Context, rc *RequestContext, key string, fetchFn func(context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	rc.mu.Unlock()

	if ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(ctx)

	rc.mu.Lock()
	rc.cache[key] = cacheEntry{value: val, err: err}
	rc.mu.Unlock()
	return val, err
}

// Fetch memoizes fetchFn under key in the RequestContext carried by ctx. With
// no RequestContext it simply calls fetchFn.
func Fetch[T any](ctx context.Context, key string, fetchFn func(context.Context) (T, error)) (T, error) {
	rc, ok := FromContext(ctx)
	if !ok {
		return fetchFn(ctx)
	}
	return GetOrFetch(ctx, rc, key, fetchFn)
}

// Len reports how many keys are cached.
func (rc *RequestContext) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.cache)
}
