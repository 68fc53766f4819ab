package dashboard

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/domain/timefmt"
)

// NotificationKind classifies an activity feed entry.
type NotificationKind string

const (
	KindSignup  NotificationKind = "signup"
	KindSession NotificationKind = "session"
	KindPayment NotificationKind = "payment"
)

// NotificationRow is one entry of the activity feed.
type NotificationRow struct {
	ID      string
	Kind    NotificationKind
	Message string
	Ago     string
	At      time.Time
}

// Overview is the summary card set on the dashboard landing page.
type Overview struct {
	TotalUsers        int
	ActiveUsers       int
	TotalSessions     int
	CompletedSessions int
	AverageScore      string
	TotalResumes      int
	TotalPayments     int
	Revenue           string
	RecentActivity    []NotificationRow
}

// paidStatuses are payment statuses that count towards revenue.
var paidStatuses = []string{"succeeded", "paid", "completed"}

// defaultCurrency is assumed when no paid payment names one.
const defaultCurrency = "usd"

// Notifications builds an activity feed from signups, sessions, and payments,
// newest first, keeping at most limit entries. Records without a usable
// timestamp are skipped. A non-positive limit keeps everything.
func (m Mapper) Notifications(users, sessions, payments []Document, limit int) []NotificationRow {
	feed := make([]NotificationRow, 0, len(users)+len(sessions)+len(payments))

	for _, d := range users {
		name := orDefault(d.FirstString("displayName", "name"), Unknown)
		feed = m.appendEvent(feed, d, KindSignup, "New user signed up: "+name)
	}
	for _, d := range sessions {
		name := orDefault(d.FirstString("userName", "candidateName"), Unknown)
		verb := "started"
		if strings.EqualFold(d.String("status"), "completed") {
			verb = "completed"
		}
		role := orDefault(d.FirstString("jobTitle", "role"), Unknown)
		feed = m.appendEvent(feed, d, KindSession, fmt.Sprintf("%s %s an interview for %s", name, verb, role))
	}
	for _, d := range payments {
		name := orDefault(d.FirstString("customerName", "userName"), Unknown)
		amount := NotAvailable
		if minor, ok := d.Int("amount"); ok {
			amount = FormatAmount(minor, d.String("currency"))
		}
		feed = m.appendEvent(feed, d, KindPayment, fmt.Sprintf("Payment of %s from %s", amount, name))
	}

	slices.SortStableFunc(feed, func(a, b NotificationRow) int {
		return b.At.Compare(a.At)
	})
	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

func (m Mapper) appendEvent(feed []NotificationRow, d Document, kind NotificationKind, msg string) []NotificationRow {
	at, err := timefmt.Parse(createdAt(d))
	if err != nil {
		return feed
	}
	return append(feed, NotificationRow{
		ID:      string(kind) + ":" + d.ID,
		Kind:    kind,
		Message: msg,
		Ago:     timefmt.Ago(m.Now.Sub(at)),
		At:      at.UTC(),
	})
}

// Overview aggregates the four collections into the landing-page summary.
func (m Mapper) Overview(users, sessions, resumes, payments []Document, recent int) Overview {
	o := Overview{
		TotalUsers:     len(users),
		TotalSessions:  len(sessions),
		TotalResumes:   len(resumes),
		TotalPayments:  len(payments),
		RecentActivity: m.Notifications(users, sessions, payments, recent),
	}

	for _, d := range users {
		if Activity(d.Value("lastLoginAt"), m.Now, m.ActiveWindow) == StatusActive {
			o.ActiveUsers++
		}
	}

	var scoreSum float64
	var scored int
	for _, d := range sessions {
		if strings.EqualFold(d.String("status"), "completed") {
			o.CompletedSessions++
		}
		if s, ok := d.Float("score"); ok {
			scoreSum += s
			scored++
		}
	}
	o.AverageScore = NotAvailable
	if scored > 0 {
		o.AverageScore = fmt.Sprintf("%.1f", scoreSum/float64(scored))
	}

	var revenue int64
	code := ""
	for _, d := range payments {
		if !slices.Contains(paidStatuses, strings.ToLower(d.String("status"))) {
			continue
		}
		if minor, ok := d.Int("amount"); ok {
			revenue += minor
		}
		if code == "" {
			code = d.String("currency")
		}
	}
	o.Revenue = FormatAmount(revenue, orDefault(code, defaultCurrency))

	return o
}
