package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// AdminHandler serves the admin dashboard read API. Every endpoint answers
// 200; store failures surface as empty tables.
type AdminHandler struct {
	svc ports.DashboardService
}

// NewAdminHandler creates a new AdminHandler with the given service port.
func NewAdminHandler(svc ports.DashboardService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// Overview handles GET /api/admin/v1/overview.
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o := h.svc.Overview(r.Context())
	writeJSON(w, http.StatusOK, dto.ToOverviewResponse(&o))
}

// Users handles GET /api/admin/v1/users.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToUserResponses(h.svc.Users(r.Context()))))
}

// Contacts handles GET /api/admin/v1/contacts.
func (h *AdminHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToContactRowResponses(h.svc.Contacts(r.Context()))))
}

// Tasks handles GET /api/admin/v1/tasks.
func (h *AdminHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToTaskResponses(h.svc.Tasks(r.Context()))))
}

// Notifications handles GET /api/admin/v1/notifications.
func (h *AdminHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToNotificationResponses(h.svc.Notifications(r.Context()))))
}

// Payments handles GET /api/admin/v1/payments.
func (h *AdminHandler) Payments(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToPaymentResponses(h.svc.Payments(r.Context()))))
}

// Resumes handles GET /api/admin/v1/resumes.
func (h *AdminHandler) Resumes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToResumeResponses(h.svc.Resumes(r.Context()))))
}
