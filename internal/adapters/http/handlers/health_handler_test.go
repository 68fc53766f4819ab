package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sitekit/mocks"
)

func TestLiveness_AlwaysOK(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t), "cms")

	rec := httptest.NewRecorder()
	h.Liveness(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.HealthResponse](t, rec); resp.Status != "ok" {
		t.Errorf("status = %q, want %q", resp.Status, "ok")
	}
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		results      map[string]error
		wantCode     int
		wantStatus   string
		wantDegraded []string
	}{
		{
			name:       "all healthy",
			results:    map[string]error{"cms": nil, "store": nil, "redis": nil},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name:       "no checkers",
			results:    map[string]error{},
			wantCode:   http.StatusOK,
			wantStatus: "ready",
		},
		{
			name: "dashboard downstreams failing",
			results: map[string]error{
				"cms":   nil,
				"store": errors.New("circuit breaker open"),
				"redis": errors.New("connection refused"),
			},
			wantCode:     http.StatusOK,
			wantStatus:   "degraded",
			wantDegraded: []string{"redis", "store"},
		},
		{
			name:       "cms failing",
			results:    map[string]error{"cms": errors.New("connection refused"), "redis": nil},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "not_ready",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			registry := mocks.NewMockHealthRegistry(t)
			registry.EXPECT().CheckAll(mock.Anything).Return(tt.results)
			h := handlers.NewHealthHandler(registry, "cms")

			rec := httptest.NewRecorder()
			h.Readiness(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			requireStatus(t, rec, tt.wantCode)
			resp := decodeJSON[dto.HealthResponse](t, rec)
			if resp.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", resp.Status, tt.wantStatus)
			}
			if len(resp.Degraded) != len(tt.wantDegraded) {
				t.Fatalf("degraded = %v, want %v", resp.Degraded, tt.wantDegraded)
			}
			for i := range tt.wantDegraded {
				if resp.Degraded[i] != tt.wantDegraded[i] {
					t.Errorf("degraded = %v, want %v", resp.Degraded, tt.wantDegraded)
				}
			}
			for name, err := range tt.results {
				want := "ok"
				if err != nil {
					want = err.Error()
				}
				if resp.Checks[name] != want {
					t.Errorf("checks[%s] = %q, want %q", name, resp.Checks[name], want)
				}
			}
		})
	}
}
