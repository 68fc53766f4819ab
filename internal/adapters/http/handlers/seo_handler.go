package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/platform/logging"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// SEOHandler serves crawler-facing documents.
type SEOHandler struct {
	svc ports.ContentService
}

// NewSEOHandler creates a new SEOHandler with the given service port.
func NewSEOHandler(svc ports.ContentService) *SEOHandler {
	return &SEOHandler{svc: svc}
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := h.svc.Sitemap(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("sitemap render failed",
			slog.String("operation", "Sitemap"),
			slog.Any("error", err),
		)
		dto.WriteProblem(w, r, http.StatusInternalServerError, "sitemap could not be rendered")
		return
	}

	writeText(w, r, "application/xml; charset=utf-8", body)
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(w http.ResponseWriter, r *http.Request) {
	writeText(w, r, "text/plain; charset=utf-8", []byte(h.svc.Robots(r.Context())))
}
