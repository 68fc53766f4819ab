// Package cms implements the Anti-Corruption Layer translators for the
// headless CMS: the GROQ queries the site issues, the JSON projections they
// return, and their translation into content types.
package cms

import "encoding/json"

// QueryResponse is the envelope of every query API response. Result is
// null when a single-document query matches nothing.
type QueryResponse[T any] struct {
	Result T   `json:"result"`
	MS     int `json:"ms"`
}

// ImageDTO is the projected shape of an image field with its asset
// dereferenced.
type ImageDTO struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// AuthorDTO is the projected author reference of a post.
type AuthorDTO struct {
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Bio   string    `json:"bio"`
	Image *ImageDTO `json:"image"`
}

// CategoryDTO is the projected category document.
type CategoryDTO struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// BlogPostDTO is the projected blogPost document. PlainText is the body
// flattened by pt::text and only feeds the reading-time estimate.
type BlogPostDTO struct {
	ID          string          `json:"_id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Excerpt     string          `json:"excerpt"`
	Body        json.RawMessage `json:"body"`
	PlainText   string          `json:"plainText"`
	MainImage   *ImageDTO       `json:"mainImage"`
	Author      *AuthorDTO      `json:"author"`
	Categories  []CategoryDTO   `json:"categories"`
	Tags        []string        `json:"tags"`
	PublishedAt string          `json:"publishedAt"`
	CreatedAt   string          `json:"_createdAt"`
	UpdatedAt   string          `json:"_updatedAt"`
}

// BlogPageDTO is the result of the paginated post query.
type BlogPageDTO struct {
	Items []BlogPostDTO `json:"items"`
	Total int           `json:"total"`
}

// GalleryItemDTO is the projected gallery document.
type GalleryItemDTO struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Category    string     `json:"category"`
	CoverImage  *ImageDTO  `json:"coverImage"`
	Images      []ImageDTO `json:"images"`
	PublishedAt string     `json:"publishedAt"`
	CreatedAt   string     `json:"_createdAt"`
	UpdatedAt   string     `json:"_updatedAt"`
}

// GalleryPageDTO is the result of the paginated gallery query.
type GalleryPageDTO struct {
	Items []GalleryItemDTO `json:"items"`
	Total int              `json:"total"`
}

// ServicePackageDTO is the projected servicePackage document.
type ServicePackageDTO struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Summary      string    `json:"summary"`
	Category     string    `json:"category"`
	Destination  string    `json:"destination"`
	DurationDays int       `json:"durationDays"`
	PriceFrom    *float64  `json:"priceFrom"`
	Currency     string    `json:"currency"`
	Highlights   []string  `json:"highlights"`
	Inclusions   []string  `json:"inclusions"`
	Image        *ImageDTO `json:"image"`
	Featured     bool      `json:"featured"`
	UpdatedAt    string    `json:"_updatedAt"`
}

// SocialLinkDTO is one entry of the settings social links array.
type SocialLinkDTO struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SiteSettingsDTO is the projected siteSettings singleton.
type SiteSettingsDTO struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Logo         *ImageDTO       `json:"logo"`
	ContactEmail string          `json:"contactEmail"`
	ContactPhone string          `json:"contactPhone"`
	Address      string          `json:"address"`
	SocialLinks  []SocialLinkDTO `json:"socialLinks"`
}

// RouteDTO is the projection used to build the sitemap.
type RouteDTO struct {
	Type      string `json:"_type"`
	Slug      string `json:"slug"`
	UpdatedAt string `json:"_updatedAt"`
}

// ContactSubmissionDTO is the contactSubmission document written by the
// mutate API.
type ContactSubmissionDTO struct {
	ID          string `json:"_id"`
	Type        string `json:"_type"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Phone       string `json:"phone,omitempty"`
	Destination string `json:"destination,omitempty"`
	TravelDate  string `json:"travelDate,omitempty"`
	Travelers   int    `json:"travelers,omitempty"`
	Budget      string `json:"budget,omitempty"`
	PackageSlug string `json:"packageSlug,omitempty"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
}

// MutateRequestDTO is the body of a mutate API call.
type MutateRequestDTO struct {
	Mutations []MutationDTO `json:"mutations"`
}

// MutationDTO is a single mutation. Only create is used.
type MutationDTO struct {
	Create *ContactSubmissionDTO `json:"create,omitempty"`
}

// MutateResponseDTO is the mutate API response with returnIds=true.
type MutateResponseDTO struct {
	TransactionID string              `json:"transactionId"`
	Results       []MutationResultDTO `json:"results"`
}

// MutationResultDTO reports the outcome of one mutation.
type MutationResultDTO struct {
	ID        string `json:"id"`
	Operation string `json:"operation"`
}
