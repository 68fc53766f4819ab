package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/middleware"
)

func TestCorrelationID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		requestID string
		want      string
	}{
		{name: "reuses incoming header", header: "corr-abc", requestID: "req-1", want: "corr-abc"},
		{name: "falls back to request id", requestID: "req-1", want: "req-1"},
		{name: "rejects control characters", header: "corr\tinjected", requestID: "req-2", want: "req-2"},
		{name: "rejects oversized header", header: strings.Repeat("c", 200), requestID: "req-3", want: "req-3"},
		{name: "nothing available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			handler := middleware.CorrelationID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				gotID = middleware.CorrelationIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/blog", http.NoBody)
			if tt.header != "" {
				req.Header.Set("X-Correlation-ID", tt.header)
			}
			if tt.requestID != "" {
				req = req.WithContext(middleware.WithRequestID(req.Context(), tt.requestID))
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if gotID != tt.want {
				t.Errorf("CorrelationIDFromContext = %q, want %q", gotID, tt.want)
			}
			if got := rec.Header().Get("X-Correlation-ID"); got != tt.want {
				t.Errorf("response X-Correlation-ID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCorrelationID_DefaultsToGeneratedRequestID(t *testing.T) {
	t.Parallel()

	var gotID string
	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
	)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.CorrelationIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", http.NoBody))

	reqID := rec.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("X-Request-ID response header is empty")
	}
	if gotID != reqID {
		t.Errorf("CorrelationIDFromContext = %q, want request ID %q", gotID, reqID)
	}
}

func TestCorrelationIDFromContext_Empty(t *testing.T) {
	t.Parallel()

	if id := middleware.CorrelationIDFromContext(context.Background()); id != "" {
		t.Errorf("CorrelationIDFromContext = %q, want empty string", id)
	}
}
