package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
)

var errPanic = errors.New("handler panic")

// Recovery returns middleware that turns a handler panic into a logged stack
// trace and a 500 problem response. Nothing is written when the handler
// already started its response, as an event stream usually has.
// http.ErrAbortHandler is re-raised so net/http can drop the connection
// quietly. Recovery is outermost, so the request ID comes from the response
// header set by RequestID.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("operation", r.Method+" "+r.URL.Path),
					slog.String("request_id", rw.Header().Get(headerRequestID)),
					slog.Bool("streamed", rw.streamed()),
					slog.Any("error", fmt.Errorf("%w: %v", errPanic, v)),
					slog.String("stack", string(debug.Stack())),
				)

				if !rw.headerWritten {
					dto.WriteErrorResponse(rw, r, errPanic)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
