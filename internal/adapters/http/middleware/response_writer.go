// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The global stack runs in this order:
//
//	Recovery → RequestID → CorrelationID → AppContext → OpenTelemetry → Logging
//
// Routes other than the realtime event stream add Timeout and CacheControl,
// since Timeout buffers the whole response.
package middleware

import "net/http"

// responseWriter records what a handler sent: status, body size and whether
// it streamed. Recovery, OpenTelemetry and Logging all wrap the writer with it.
type responseWriter struct {
	http.ResponseWriter
	statusCode    int
	headerWritten bool
	written       int64
	flushes       int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader keeps the first status only.
func (rw *responseWriter) WriteHeader(code int) {
	if rw.headerWritten {
		return
	}
	rw.statusCode = code
	rw.headerWritten = true
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.headerWritten = true
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Flush sends buffered data to the client. Event streams flush after every
// frame, so a non-zero count marks the response as streamed.
func (rw *responseWriter) Flush() {
	rw.headerWritten = true
	rw.flushes++
	_ = http.NewResponseController(rw.ResponseWriter).Flush()
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func (rw *responseWriter) streamed() bool {
	return rw.flushes > 0
}
