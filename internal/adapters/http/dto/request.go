package dto

import (
	"strings"

	"github.com/jsamuelsen11/sitekit/internal/domain/content"
)

// ContactRequest represents the JSON body posted by the contact form. Field
// names follow the form's own keys. Validation happens in the service after
// sanitizing, so this type only checks that the body is a JSON object.
type ContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Phone       string `json:"phone,omitempty"`
	Destination string `json:"destination,omitempty"`
	TravelDate  string `json:"travelDate,omitempty"`
	Travelers   int    `json:"travelers,omitempty"`
	Budget      string `json:"budget,omitempty"`
	Package     string `json:"package,omitempty"`
}

// ToDomain converts the request to a domain ContactSubmission.
func (r *ContactRequest) ToDomain() *content.ContactSubmission {
	return &content.ContactSubmission{
		Name:        r.Name,
		Email:       r.Email,
		Subject:     r.Subject,
		Message:     r.Message,
		Phone:       r.Phone,
		Destination: r.Destination,
		TravelDate:  r.TravelDate,
		Travelers:   r.Travelers,
		Budget:      r.Budget,
		PackageSlug: strings.TrimSpace(r.Package),
	}
}
