package dto

import (
	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/internal/domain/timefmt"
)

// NotificationResponse is one entry of the admin activity feed.
type NotificationResponse struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Ago     string `json:"ago"`
	At      string `json:"at"`
}

// OverviewResponse represents the admin landing-page summary.
type OverviewResponse struct {
	TotalUsers        int                    `json:"total_users"`
	ActiveUsers       int                    `json:"active_users"`
	TotalSessions     int                    `json:"total_sessions"`
	CompletedSessions int                    `json:"completed_sessions"`
	AverageScore      string                 `json:"average_score"`
	TotalResumes      int                    `json:"total_resumes"`
	TotalPayments     int                    `json:"total_payments"`
	Revenue           string                 `json:"revenue"`
	RecentActivity    []NotificationResponse `json:"recent_activity"`
}

// UserResponse is one row of the admin users table.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Plan      string `json:"plan"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	LastSeen  string `json:"last_seen"`
	LastLogin string `json:"last_login"`
	Joined    string `json:"joined"`
}

// ContactRowResponse is one row of the admin contacts table.
type ContactRowResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	LastContact string `json:"last_contact"`
	Status      string `json:"status"`
}

// TaskResponse is one card of the admin tasks board.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Assignee    string `json:"assignee"`
	Status      string `json:"status"`
	Score       string `json:"score"`
	Created     string `json:"created"`
	Completed   string `json:"completed"`
}

// PaymentResponse is one row of the admin payments table.
type PaymentResponse struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
	Status   string `json:"status"`
	Plan     string `json:"plan"`
	Date     string `json:"date"`
}

// ResumeResponse is one row of the admin resumes table.
type ResumeResponse struct {
	ID         string `json:"id"`
	Owner      string `json:"owner"`
	FileName   string `json:"file_name"`
	TargetRole string `json:"target_role"`
	Score      string `json:"score"`
	Status     string `json:"status"`
	Uploaded   string `json:"uploaded"`
}

// PresenceResponse is the payload of a realtime presence event.
type PresenceResponse struct {
	Count int    `json:"count"`
	At    string `json:"at"`
}

// ToOverviewResponse converts the dashboard overview.
func ToOverviewResponse(o *dashboard.Overview) OverviewResponse {
	return OverviewResponse{
		TotalUsers:        o.TotalUsers,
		ActiveUsers:       o.ActiveUsers,
		TotalSessions:     o.TotalSessions,
		CompletedSessions: o.CompletedSessions,
		AverageScore:      o.AverageScore,
		TotalResumes:      o.TotalResumes,
		TotalPayments:     o.TotalPayments,
		Revenue:           o.Revenue,
		RecentActivity:    ToNotificationResponses(o.RecentActivity),
	}
}

// ToNotificationResponses converts activity feed entries.
func ToNotificationResponses(rows []dashboard.NotificationRow) []NotificationResponse {
	return mapSlice(rows, func(n *dashboard.NotificationRow) NotificationResponse {
		return NotificationResponse{
			ID:      n.ID,
			Kind:    string(n.Kind),
			Message: n.Message,
			Ago:     n.Ago,
			At:      timefmt.ISO(n.At),
		}
	})
}

// ToUserResponses converts users table rows.
func ToUserResponses(rows []dashboard.UserRow) []UserResponse {
	return mapSlice(rows, func(u *dashboard.UserRow) UserResponse {
		return UserResponse{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Plan:      u.Plan,
			Role:      u.Role,
			Status:    u.Status.String(),
			LastSeen:  u.LastSeen,
			LastLogin: u.LastLogin,
			Joined:    u.Joined,
		}
	})
}

// ToContactRowResponses converts contacts table rows.
func ToContactRowResponses(rows []dashboard.ContactRow) []ContactRowResponse {
	return mapSlice(rows, func(c *dashboard.ContactRow) ContactRowResponse {
		return ContactRowResponse{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			Company:     c.Company,
			LastContact: c.LastContact,
			Status:      c.Status.String(),
		}
	})
}

// ToTaskResponses converts tasks board cards.
func ToTaskResponses(rows []dashboard.TaskRow) []TaskResponse {
	return mapSlice(rows, func(t *dashboard.TaskRow) TaskResponse {
		return TaskResponse(*t)
	})
}

// ToPaymentResponses converts payments table rows.
func ToPaymentResponses(rows []dashboard.PaymentRow) []PaymentResponse {
	return mapSlice(rows, func(p *dashboard.PaymentRow) PaymentResponse {
		return PaymentResponse(*p)
	})
}

// ToResumeResponses converts resumes table rows.
func ToResumeResponses(rows []dashboard.ResumeRow) []ResumeResponse {
	return mapSlice(rows, func(r *dashboard.ResumeRow) ResumeResponse {
		return ResumeResponse(*r)
	})
}

// ToPresenceResponse converts a presence update.
func ToPresenceResponse(u dashboard.PresenceUpdate) PresenceResponse {
	return PresenceResponse{Count: u.Count, At: timefmt.ISO(u.At)}
}
