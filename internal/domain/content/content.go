// Package content defines the read-only content types served by the travel
// site: blog posts, gallery entries, service packages, and site settings.
// Values are projections of CMS documents and are never mutated after the
// anti-corruption layer builds them.
package content

import (
	"encoding/json"
	"time"
)

// Document type names used by the CMS. They double as cache tags.
const (
	TypeBlogPost          = "blogPost"
	TypeCategory          = "category"
	TypeGallery           = "gallery"
	TypeServicePackage    = "servicePackage"
	TypeSiteSettings      = "siteSettings"
	TypeContactSubmission = "contactSubmission"
)

// Image is a resolved CMS image asset.
type Image struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

// IsZero reports whether the image has no asset.
func (i Image) IsZero() bool {
	return i.URL == ""
}

// Author is the byline of a blog post.
type Author struct {
	Name  string
	Slug  string
	Bio   string
	Image Image
}

// Category groups blog posts, gallery entries, and packages.
type Category struct {
	Title       string
	Slug        string
	Description string
}

// BlogPost is a single article. Body holds the rich-text blocks exactly as the
// CMS returns them; clients render them.
type BlogPost struct {
	ID             string
	Title          string
	Slug           string
	Excerpt        string
	Body           json.RawMessage
	MainImage      Image
	Author         *Author
	Categories     []Category
	Tags           []string
	ReadingMinutes int
	PublishedAt    time.Time
	UpdatedAt      time.Time
}

// GalleryItem is a photo set from a trip or destination.
type GalleryItem struct {
	ID          string
	Title       string
	Slug        string
	Description string
	Location    string
	Category    string
	CoverImage  Image
	Images      []Image
	PublishedAt time.Time
	UpdatedAt   time.Time
}

// ServicePackage is a bookable tour package.
type ServicePackage struct {
	ID           string
	Title        string
	Slug         string
	Summary      string
	Category     string
	Destination  string
	DurationDays int
	PriceFrom    float64
	Currency     string
	Highlights   []string
	Inclusions   []string
	Image        Image
	Featured     bool
	UpdatedAt    time.Time
}

// SiteSettings holds the global site identity edited in the CMS.
type SiteSettings struct {
	Title        string
	Description  string
	Logo         Image
	ContactEmail string
	ContactPhone string
	Address      string
	SocialLinks  []string
}

// Page is one page of a paginated content query together with the total
// number of matching documents.
type Page[T any] struct {
	Items []T
	Total int
}
