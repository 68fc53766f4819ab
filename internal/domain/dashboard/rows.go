package dashboard

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/domain/timefmt"
)

// UserRow is one line of the users table.
type UserRow struct {
	ID        string
	Name      string
	Email     string
	Plan      string
	Role      string
	Status    ActivityStatus
	LastSeen  string
	LastLogin string
	Joined    string
}

// ContactRow is one line of the contacts table, derived from user records.
type ContactRow struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Company     string
	LastContact string
	Status      ActivityStatus
}

// TaskRow is one line of the tasks board, derived from interview sessions.
type TaskRow struct {
	ID          string
	Title       string
	Description string
	Assignee    string
	Status      string
	Score       string
	Created     string
	Completed   string
}

// PaymentRow is one line of the payments table.
type PaymentRow struct {
	ID       string
	Customer string
	Email    string
	Amount   string
	Status   string
	Plan     string
	Date     string
}

// ResumeRow is one line of the resumes table.
type ResumeRow struct {
	ID         string
	Owner      string
	FileName   string
	TargetRole string
	Score      string
	Status     string
	Uploaded   string
}

// Mapper turns store documents into view models relative to a fixed instant,
// so that every row in one response agrees on "now".
type Mapper struct {
	Now          time.Time
	ActiveWindow time.Duration
}

// NewMapper returns a Mapper anchored at now. A non-positive window falls back
// to DefaultActiveWindow.
func NewMapper(now time.Time, window time.Duration) Mapper {
	if window <= 0 {
		window = DefaultActiveWindow
	}
	return Mapper{Now: now.UTC(), ActiveWindow: window}
}

// MapAll applies fn to every document. The result is never nil.
func MapAll[T any](docs []Document, fn func(Document) T) []T {
	out := make([]T, 0, len(docs))
	for _, d := range docs {
		out = append(out, fn(d))
	}
	return out
}

// User maps a users document.
func (m Mapper) User(d Document) UserRow {
	lastLogin := d.Value("lastLoginAt")
	return UserRow{
		ID:        d.ID,
		Name:      orDefault(d.FirstString("displayName", "name"), Unknown),
		Email:     orDefault(d.String("email"), NotAvailable),
		Plan:      TitleCase(d.FirstString("plan", "subscription.plan")),
		Role:      TitleCase(orDefault(d.String("role"), "user")),
		Status:    Activity(lastLogin, m.Now, m.ActiveWindow),
		LastSeen:  timefmt.Since(lastLogin, m.Now),
		LastLogin: timefmt.FormatTimestamp(lastLogin),
		Joined:    timefmt.FormatTimestamp(createdAt(d)),
	}
}

// Contact maps a users document to its contact-card form.
func (m Mapper) Contact(d Document) ContactRow {
	lastLogin := d.Value("lastLoginAt")
	return ContactRow{
		ID:          d.ID,
		Name:        orDefault(d.FirstString("displayName", "name"), Unknown),
		Email:       orDefault(d.String("email"), NotAvailable),
		Phone:       orDefault(d.FirstString("phone", "phoneNumber"), NotAvailable),
		Company:     orDefault(d.FirstString("company", "profile.company"), NotAvailable),
		LastContact: timefmt.Since(lastLogin, m.Now),
		Status:      Activity(lastLogin, m.Now, m.ActiveWindow),
	}
}

// Task maps a sessions document. The title combines the interview type and
// the job title; the description names the candidate.
func (m Mapper) Task(d Document) TaskRow {
	kind := d.String("interviewType")
	if kind != "" {
		kind = TitleCase(kind) + " Interview"
	}
	title := joinPresent(": ", kind, d.FirstString("jobTitle", "role"))

	candidate := orDefault(d.FirstString("userName", "candidateName"), Unknown)
	email := orDefault(d.String("userEmail"), NotAvailable)

	score, ok := d.Float("score")
	completed := NotAvailable
	if _, done := d.Time("completedAt"); done {
		completed = timefmt.FormatTimestamp(d.Value("completedAt"))
	}

	return TaskRow{
		ID:          d.ID,
		Title:       orDefault(title, Unknown),
		Description: fmt.Sprintf("%s (%s)", candidate, email),
		Assignee:    candidate,
		Status:      TitleCase(d.String("status")),
		Score:       formatScore(score, ok),
		Created:     timefmt.FormatTimestamp(createdAt(d)),
		Completed:   completed,
	}
}

// Payment maps a payments document. Amounts are stored in minor units.
func (m Mapper) Payment(d Document) PaymentRow {
	amount := NotAvailable
	if minor, ok := d.Int("amount"); ok {
		amount = FormatAmount(minor, d.String("currency"))
	}
	return PaymentRow{
		ID:       d.ID,
		Customer: orDefault(d.FirstString("customerName", "userName"), Unknown),
		Email:    orDefault(d.FirstString("customerEmail", "email"), NotAvailable),
		Amount:   amount,
		Status:   TitleCase(d.String("status")),
		Plan:     orDefault(d.String("plan"), NotAvailable),
		Date:     timefmt.FormatTimestamp(createdAt(d)),
	}
}

// Resume maps a resumes document.
func (m Mapper) Resume(d Document) ResumeRow {
	score, ok := d.Float("atsScore")
	if !ok {
		score, ok = d.Float("score")
	}
	return ResumeRow{
		ID:         d.ID,
		Owner:      orDefault(d.FirstString("userName", "ownerName"), Unknown),
		FileName:   orDefault(d.FirstString("fileName", "name"), NotAvailable),
		TargetRole: orDefault(d.FirstString("targetRole", "jobTitle"), NotAvailable),
		Score:      formatScore(score, ok),
		Status:     TitleCase(d.String("status")),
		Uploaded:   timefmt.FormatTimestamp(createdAt(d)),
	}
}

// createdAt prefers the document's own createdAt field and falls back to the
// store's create time.
func createdAt(d Document) any {
	if v := d.Value("createdAt"); v != nil {
		return v
	}
	if !d.CreateTime.IsZero() {
		return d.CreateTime
	}
	return nil
}
