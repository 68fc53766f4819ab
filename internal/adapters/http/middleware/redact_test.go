package middleware_test

import (
	"net/http"
	"testing"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/middleware"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		values []string
		want   string
	}{
		{name: "authorization", header: "Authorization", values: []string{"Bearer secret-token"}, want: "[REDACTED]"},
		{name: "cookie", header: "Cookie", values: []string{"session=abc"}, want: "[REDACTED]"},
		{name: "api key", header: "X-Api-Key", values: []string{"key"}, want: "[REDACTED]"},
		{name: "google api key", header: "X-Goog-Api-Key", values: []string{"AIza"}, want: "[REDACTED]"},
		{name: "app check", header: "X-Firebase-Appcheck", values: []string{"token"}, want: "[REDACTED]"},
		{name: "lowercase name", header: "authorization", values: []string{"Bearer x"}, want: "[REDACTED]"},
		{name: "plain header", header: "Accept", values: []string{"text/event-stream"}, want: "text/event-stream"},
		{name: "multi value", header: "Accept-Language", values: []string{"en", "id"}, want: "en,id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			attrs := middleware.RedactHeaders(http.Header{tt.header: tt.values})

			if len(attrs) != 1 {
				t.Fatalf("len(attrs) = %d, want 1", len(attrs))
			}
			if attrs[0].Key != tt.header {
				t.Errorf("key = %q, want %q", attrs[0].Key, tt.header)
			}
			if got := attrs[0].Value.String(); got != tt.want {
				t.Errorf("value = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRedactHeaders_SortedByName(t *testing.T) {
	t.Parallel()

	attrs := middleware.RedactHeaders(http.Header{
		"X-Request-Id":  {"req-1"},
		"Accept":        {"application/json"},
		"Authorization": {"Bearer x"},
	})

	want := []string{"Accept", "Authorization", "X-Request-Id"}
	if len(attrs) != len(want) {
		t.Fatalf("len(attrs) = %d, want %d", len(attrs), len(want))
	}
	for i, a := range attrs {
		if a.Key != want[i] {
			t.Errorf("attrs[%d].Key = %q, want %q", i, a.Key, want[i])
		}
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("len(attrs) = %d, want 0", len(attrs))
	}
}
