package dashboard

import (
	"testing"
	"time"
)

func daysAgo(n int) time.Time {
	return testNow.Add(-time.Duration(n) * 24 * time.Hour)
}

func TestMapper_User(t *testing.T) {
	t.Parallel()

	m := NewMapper(testNow, 0)

	t.Run("populated document", func(t *testing.T) {
		t.Parallel()

		d := Document{ID: "u1", Fields: map[string]any{
			"displayName": "Rina Wati",
			"email":       "rina@example.com",
			"plan":        "pro_annual",
			"lastLoginAt": daysAgo(3),
			"createdAt":   map[string]any{"_seconds": int64(0)},
		}}

		want := UserRow{
			ID:        "u1",
			Name:      "Rina Wati",
			Email:     "rina@example.com",
			Plan:      "Pro Annual",
			Role:      "User",
			Status:    StatusActive,
			LastSeen:  "3 days ago",
			LastLogin: "Jun 12, 2025, 12:00 UTC",
			Joined:    "Jan 1, 1970, 00:00 UTC",
		}
		if got := m.User(d); got != want {
			t.Errorf("User() = %+v, want %+v", got, want)
		}
	})

	t.Run("empty document falls back", func(t *testing.T) {
		t.Parallel()

		want := UserRow{
			ID:        "u2",
			Name:      Unknown,
			Email:     NotAvailable,
			Plan:      Unknown,
			Role:      "User",
			Status:    StatusInactive,
			LastSeen:  NotAvailable,
			LastLogin: NotAvailable,
			Joined:    NotAvailable,
		}
		if got := m.User(Document{ID: "u2"}); got != want {
			t.Errorf("User() = %+v, want %+v", got, want)
		}
	})

	t.Run("store create time used when field missing", func(t *testing.T) {
		t.Parallel()

		d := Document{ID: "u3", CreateTime: time.Date(2024, time.March, 5, 8, 30, 0, 0, time.UTC)}
		if got := m.User(d).Joined; got != "Mar 5, 2024, 08:30 UTC" {
			t.Errorf("Joined = %q, want %q", got, "Mar 5, 2024, 08:30 UTC")
		}
	})
}

func TestMapper_Contact(t *testing.T) {
	t.Parallel()

	m := NewMapper(testNow, DefaultActiveWindow)
	d := Document{ID: "c1", Fields: map[string]any{
		"name":        "Budi",
		"profile":     map[string]any{"company": "Acme"},
		"lastLoginAt": daysAgo(10),
	}}

	want := ContactRow{
		ID:          "c1",
		Name:        "Budi",
		Email:       NotAvailable,
		Phone:       NotAvailable,
		Company:     "Acme",
		LastContact: "10 days ago",
		Status:      StatusInactive,
	}
	if got := m.Contact(d); got != want {
		t.Errorf("Contact() = %+v, want %+v", got, want)
	}
}

func TestMapper_Task(t *testing.T) {
	t.Parallel()

	m := NewMapper(testNow, 0)

	tests := []struct {
		name string
		doc  Document
		want TaskRow
	}{
		{
			name: "completed session",
			doc: Document{ID: "s1", Fields: map[string]any{
				"interviewType": "system_design",
				"jobTitle":      "Backend Engineer",
				"userName":      "Rina",
				"userEmail":     "rina@example.com",
				"status":        "completed",
				"score":         int64(82),
				"createdAt":     "2025-06-14T09:00:00Z",
				"completedAt":   "2025-06-14T09:45:00Z",
			}},
			want: TaskRow{
				ID:          "s1",
				Title:       "System Design Interview: Backend Engineer",
				Description: "Rina (rina@example.com)",
				Assignee:    "Rina",
				Status:      "Completed",
				Score:       "82",
				Created:     "Jun 14, 2025, 09:00 UTC",
				Completed:   "Jun 14, 2025, 09:45 UTC",
			},
		},
		{
			name: "only job title",
			doc: Document{ID: "s2", Fields: map[string]any{
				"role":   "Designer",
				"status": "in_progress",
			}},
			want: TaskRow{
				ID:          "s2",
				Title:       "Designer",
				Description: "Unknown (N/A)",
				Assignee:    Unknown,
				Status:      "In Progress",
				Score:       NotAvailable,
				Created:     NotAvailable,
				Completed:   NotAvailable,
			},
		},
		{
			name: "empty session",
			doc:  Document{ID: "s3"},
			want: TaskRow{
				ID:          "s3",
				Title:       Unknown,
				Description: "Unknown (N/A)",
				Assignee:    Unknown,
				Status:      Unknown,
				Score:       NotAvailable,
				Created:     NotAvailable,
				Completed:   NotAvailable,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := m.Task(tt.doc); got != tt.want {
				t.Errorf("Task() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapper_PaymentAndResume(t *testing.T) {
	t.Parallel()

	m := NewMapper(testNow, 0)

	p := m.Payment(Document{ID: "p1", Fields: map[string]any{
		"customerName": "Rina",
		"amount":       int64(2900),
		"currency":     "usd",
		"status":       "succeeded",
		"plan":         "pro",
		"createdAt":    "2025-06-01",
	}})
	wantP := PaymentRow{
		ID:       "p1",
		Customer: "Rina",
		Email:    NotAvailable,
		Amount:   "USD 29.00",
		Status:   "Succeeded",
		Plan:     "pro",
		Date:     "Jun 1, 2025, 00:00 UTC",
	}
	if p != wantP {
		t.Errorf("Payment() = %+v, want %+v", p, wantP)
	}

	r := m.Resume(Document{ID: "r1", Fields: map[string]any{
		"userName":  "Budi",
		"fileName":  "budi-cv.pdf",
		"score":     71.5,
		"status":    "reviewed",
		"createdAt": "not a date",
	}})
	wantR := ResumeRow{
		ID:         "r1",
		Owner:      "Budi",
		FileName:   "budi-cv.pdf",
		TargetRole: NotAvailable,
		Score:      "71.5",
		Status:     "Reviewed",
		Uploaded:   "Invalid Date",
	}
	if r != wantR {
		t.Errorf("Resume() = %+v, want %+v", r, wantR)
	}
}

func TestMapAll_NeverNil(t *testing.T) {
	t.Parallel()

	m := NewMapper(testNow, 0)
	got := MapAll(nil, m.User)
	if got == nil || len(got) != 0 {
		t.Errorf("MapAll(nil) = %#v, want empty non-nil slice", got)
	}
}
