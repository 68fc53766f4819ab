package middleware

import (
	"context"
	"log/slog"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/domain"
	"github.com/jsamuelsen11/sitekit/internal/platform/logging"
)

// Timeout returns middleware that bounds a request to the given duration.
// The handler sees a context whose cause is domain.ErrTimeout once the
// deadline passes, so CMS and store reads abort with it. A handler that has
// not finished by then is answered with a 504 problem response and whatever
// it buffered is dropped.
//
// The whole response is buffered, so streaming routes must not use it.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeoutCause(r.Context(), timeout, domain.ErrTimeout)
			defer cancel()

			bw := &bufferedWriter{dst: w}
			done := make(chan struct{})

			go func() {
				defer close(done)
				next.ServeHTTP(bw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.commit()
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.abandoned = true

				logging.FromContext(ctx).WarnContext(ctx, "request timed out",
					slog.String("path", r.URL.Path),
					slog.Duration("timeout", timeout),
				)
				dto.WriteErrorResponse(w, r, context.Cause(ctx))
			}
		})
	}
}

// bufferedWriter holds the handler's response until it either finishes in
// time or is abandoned. Writes after abandonment are discarded.
type bufferedWriter struct {
	dst       http.ResponseWriter
	mu        sync.Mutex
	header    http.Header
	body      []byte
	status    int
	abandoned bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.header == nil {
		bw.header = make(http.Header)
	}
	return bw.header
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.abandoned {
		return 0, context.DeadlineExceeded
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	bw.body = append(bw.body, b...)
	return len(b), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.status == 0 && !bw.abandoned {
		bw.status = code
	}
}

// commit copies the buffered response to dst. Callers hold bw.mu.
func (bw *bufferedWriter) commit() {
	if bw.header != nil {
		maps.Copy(bw.dst.Header(), bw.header)
	}
	if bw.status != 0 {
		bw.dst.WriteHeader(bw.status)
	}
	if len(bw.body) > 0 {
		_, _ = bw.dst.Write(bw.body)
	}
}
