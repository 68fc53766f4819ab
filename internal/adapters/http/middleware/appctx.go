package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/sitekit/internal/app/context"
)

// AppContext returns middleware that creates a new RequestContext for each
// HTTP request and stores it in the request context, so that service reads
// made while handling the request are memoized.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appctx.WithRequestContext(r.Context(), appctx.New())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
