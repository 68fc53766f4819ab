package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/domain"
	"github.com/jsamuelsen11/sitekit/internal/platform/logging"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	svc ports.ContentService
}

// NewContactHandler creates a new ContactHandler with the given service port.
func NewContactHandler(svc ports.ContentService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Submit handles POST /api/contact. Invalid input yields a 400 problem with
// per-field errors; any other failure is reported as a 500.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	id, err := h.svc.SubmitContact(r.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		logging.FromContext(r.Context()).Error("contact submission failed",
			slog.String("operation", "SubmitContact"),
			slog.Any("error", err),
		)
		dto.WriteProblem(w, r, http.StatusInternalServerError, "contact submission could not be stored")
		return
	}

	writeJSON(w, http.StatusOK, dto.ContactResponse{Success: true, ID: id})
}
