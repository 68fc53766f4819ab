package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/mocks"
)

func TestAdminOverview(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockDashboardService(t)
	h := handlers.NewAdminHandler(svc)

	svc.EXPECT().Overview(mock.Anything).Return(dashboard.Overview{
		TotalUsers:   3,
		ActiveUsers:  1,
		AverageScore: dashboard.NotAvailable,
	})

	rec := httptest.NewRecorder()
	h.Overview(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/overview", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.OverviewResponse](t, rec)
	if resp.TotalUsers != 3 || resp.AverageScore != "N/A" {
		t.Errorf("resp = %+v", resp)
	}
	if resp.RecentActivity == nil {
		t.Error("RecentActivity = nil, want empty slice")
	}
}

func TestAdminTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		setup   func(svc *mocks.MockDashboardService)
		handler func(h *handlers.AdminHandler) http.HandlerFunc
		want    int
	}{
		{
			name: "users",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().Users(mock.Anything).Return([]dashboard.UserRow{{ID: "u1"}, {ID: "u2"}})
			},
			handler: func(h *handlers.AdminHandler) http.HandlerFunc { return h.Users },
			want:    2,
		},
		{
			name: "contacts",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().Contacts(mock.Anything).Return([]dashboard.ContactRow{{ID: "u1"}})
			},
			handler: func(h *handlers.AdminHandler) http.HandlerFunc { return h.Contacts },
			want:    1,
		},
		{
			name: "tasks",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().Tasks(mock.Anything).Return([]dashboard.TaskRow{{ID: "s1"}})
			},
			handler: func(h *handlers.AdminHandler) http.HandlerFunc { return h.Tasks },
			want:    1,
		},
		{
			name: "notifications",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().Notifications(mock.Anything).Return([]dashboard.NotificationRow{
					{ID: "u1", Kind: dashboard.KindSignup, At: testTime},
				})
			},
			handler: func(h *handlers.AdminHandler) http.HandlerFunc { return h.Notifications },
			want:    1,
		},
		{
			name: "payments",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().Payments(mock.Anything).Return([]dashboard.PaymentRow{})
			},
			handler: func(h *handlers.AdminHandler) http.HandlerFunc { return h.Payments },
			want:    0,
		},
		{
			name: "resumes",
			setup: func(svc *mocks.MockDashboardService) {
				svc.EXPECT().Resumes(mock.Anything).Return(nil)
			},
			handler: func(h *handlers.AdminHandler) http.HandlerFunc { return h.Resumes },
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := mocks.NewMockDashboardService(t)
			h := handlers.NewAdminHandler(svc)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			tt.handler(h)(rec, httptest.NewRequest(http.MethodGet, "/api/admin/v1/"+tt.name, nil))

			requireStatus(t, rec, http.StatusOK)
			resp := decodeJSON[map[string]any](t, rec)
			items, ok := resp["items"].([]any)
			if !ok {
				t.Fatalf("items = %v, want array", resp["items"])
			}
			if len(items) != tt.want || resp["count"] != float64(tt.want) {
				t.Errorf("items = %d, count = %v, want %d", len(items), resp["count"], tt.want)
			}
		})
	}
}
