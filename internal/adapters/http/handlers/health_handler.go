package handlers

import (
	"net/http"
	"slices"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthHandler serves liveness and readiness.
type HealthHandler struct {
	registry ports.HealthRegistry
	critical map[string]bool
}

// NewHealthHandler builds a HealthHandler. A failing check named in critical
// makes the instance not ready; any other failure only marks it degraded,
// since the dashboard and realtime widget fall back to empty data.
func NewHealthHandler(registry ports.HealthRegistry, critical ...string) *HealthHandler {
	set := make(map[string]bool, len(critical))
	for _, name := range critical {
		set[name] = true
	}
	return &HealthHandler{registry: registry, critical: set}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every critical check passes,
// 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{Status: statusReady, Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		if h.critical[name] {
			code = http.StatusServiceUnavailable
		} else {
			resp.Degraded = append(resp.Degraded, name)
		}
	}
	slices.Sort(resp.Degraded)

	switch {
	case code != http.StatusOK:
		resp.Status = statusNotReady
	case len(resp.Degraded) > 0:
		resp.Status = statusDegraded
	}
	writeJSON(w, code, resp)
}
