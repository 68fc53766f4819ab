package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sitekit/internal/domain/content"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validPost() content.BlogPost {
	return content.BlogPost{
		ID:             "post-1",
		Title:          "Three Days in Ubud",
		Slug:           "three-days-in-ubud",
		Excerpt:        "Rice terraces and temples.",
		Body:           json.RawMessage(`[{"_type":"block"}]`),
		Categories:     []content.Category{{Title: "Bali", Slug: "bali"}},
		ReadingMinutes: 4,
		PublishedAt:    testTime,
	}
}

func validPackage() content.ServicePackage {
	return content.ServicePackage{
		ID:           "pkg-1",
		Title:        "Bali Highlights",
		Slug:         "bali-highlights",
		Category:     "cultural",
		DurationDays: 7,
		PriceFrom:    899,
		Currency:     "USD",
		Highlights:   []string{"Ubud", "Uluwatu"},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
