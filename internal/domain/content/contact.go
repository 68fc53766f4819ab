package content

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jsamuelsen11/sitekit/internal/domain"
)

// Limits applied to contact form input.
const (
	maxNameLength    = 200
	maxSubjectLength = 300
	maxMessageLength = 5000
	maxTravelers     = 100
)

// ContactSubmission is a message sent through the site's contact form. The
// trip-planning fields are optional.
type ContactSubmission struct {
	ID          string
	Name        string
	Email       string
	Subject     string
	Message     string
	Phone       string
	Destination string
	TravelDate  string
	Travelers   int
	Budget      string
	PackageSlug string
	SubmittedAt time.Time
}

// Validate checks required fields and bounds. It returns a
// *domain.ValidationError with one entry per offending field.
func (c *ContactSubmission) Validate() error {
	fields := make(map[string]string)

	required := map[string]string{
		"name":    c.Name,
		"email":   c.Email,
		"subject": c.Subject,
		"message": c.Message,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[field] = domain.MsgRequired
		}
	}

	if _, missing := fields["email"]; !missing {
		if _, err := mail.ParseAddress(strings.TrimSpace(c.Email)); err != nil {
			fields["email"] = "must be a valid email address"
		}
	}
	if len(c.Name) > maxNameLength {
		fields["name"] = fmt.Sprintf("must be at most %d characters", maxNameLength)
	}
	if len(c.Subject) > maxSubjectLength {
		fields["subject"] = fmt.Sprintf("must be at most %d characters", maxSubjectLength)
	}
	if len(c.Message) > maxMessageLength {
		fields["message"] = fmt.Sprintf("must be at most %d characters", maxMessageLength)
	}
	if c.Travelers < 0 || c.Travelers > maxTravelers {
		fields["travelers"] = fmt.Sprintf("must be 0-%d, got %d", maxTravelers, c.Travelers)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Sanitize trims every field, reduces the free-text fields to plain text, and
// normalizes the email address. Validate the sanitized value: a field holding
// only markup becomes empty.
func (c *ContactSubmission) Sanitize() {
	c.Name = PlainText(c.Name)
	c.Subject = PlainText(c.Subject)
	c.Message = PlainText(c.Message)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Destination = PlainText(c.Destination)
	c.TravelDate = strings.TrimSpace(c.TravelDate)
	c.Budget = strings.TrimSpace(c.Budget)
	c.PackageSlug = strings.TrimSpace(c.PackageSlug)

	if addr, err := mail.ParseAddress(strings.TrimSpace(c.Email)); err == nil {
		c.Email = strings.ToLower(addr.Address)
	} else {
		c.Email = strings.TrimSpace(c.Email)
	}
}

// PlainText strips markup from s, keeping line breaks and collapsing runs of
// spaces within each line. Script and style contents are dropped.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapseLines(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseLines(s)
	}
	doc.Find("script, style").Remove()

	return collapseLines(doc.Text())
}

func collapseLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		out = append(out, strings.Join(strings.Fields(line), " "))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
