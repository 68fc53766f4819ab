package ports

import (
	"context"

	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/internal/domain/listing"
	"github.com/jsamuelsen11/sitekit/internal/domain/seo"
)

// Listing is one rendered page of a paginated content collection.
type Listing[T any] struct {
	Items   []T
	Page    listing.ListingPage
	Nav     listing.Navigation
	Summary string
	Filter  listing.FilterState
	JSONLD  seo.JSONLD
}

// Detail is a single content document with its structured data.
type Detail[T any] struct {
	Item    T
	Related []T
	JSONLD  []seo.JSONLD
}

// ContentService defines the service port for the travel site. Implemented by
// the application layer; called by the HTTP handlers.
//
// List operations never fail: a CMS read failure is logged and rendered as an
// empty result.
type ContentService interface {
	// ListBlogPosts returns the page of posts selected by filter.
	ListBlogPosts(ctx context.Context, filter listing.FilterState) Listing[content.BlogPost]

	// GetBlogPost returns a post with related posts and its BlogPosting and
	// BreadcrumbList documents. Returns domain.ErrNotFound when the post is
	// missing or cannot be read.
	GetBlogPost(ctx context.Context, slug string) (*Detail[content.BlogPost], error)

	// ListCategories returns every blog category.
	ListCategories(ctx context.Context) []content.Category

	// ListGallery returns the page of gallery entries selected by filter.
	// Only Category and Page are honored.
	ListGallery(ctx context.Context, filter listing.FilterState) Listing[content.GalleryItem]

	// GetGalleryItem returns a gallery entry.
	// Returns domain.ErrNotFound when missing or unreadable.
	GetGalleryItem(ctx context.Context, slug string) (*Detail[content.GalleryItem], error)

	// ListPackages returns packages, optionally restricted to a category.
	ListPackages(ctx context.Context, category string) []content.ServicePackage

	// GetPackage returns a service package.
	// Returns domain.ErrNotFound when missing or unreadable.
	GetPackage(ctx context.Context, slug string) (*Detail[content.ServicePackage], error)

	// SiteSettings returns the CMS settings document with empty fields
	// filled from configuration. A read failure yields the configured
	// defaults.
	SiteSettings(ctx context.Context) content.SiteSettings

	// Organization returns the TravelAgency document for the site.
	Organization(ctx context.Context) seo.JSONLD

	// SubmitContact validates and stores a contact form message and returns
	// its ID. Returns a *domain.ValidationError for bad input.
	SubmitContact(ctx context.Context, sub *content.ContactSubmission) (string, error)

	// SitemapEntries returns the static routes followed by every blog, gallery
	// and package route. Admin and API paths are never included.
	SitemapEntries(ctx context.Context) []seo.Entry

	// Sitemap renders SitemapEntries as sitemap.xml.
	Sitemap(ctx context.Context) ([]byte, error)

	// Robots renders robots.txt.
	Robots(ctx context.Context) string
}

// DashboardService defines the service port for the admin dashboard. Every
// read substitutes an empty result for a failed store read.
type DashboardService interface {
	Overview(ctx context.Context) dashboard.Overview
	Users(ctx context.Context) []dashboard.UserRow
	Contacts(ctx context.Context) []dashboard.ContactRow
	Tasks(ctx context.Context) []dashboard.TaskRow
	Notifications(ctx context.Context) []dashboard.NotificationRow
	Payments(ctx context.Context) []dashboard.PaymentRow
	Resumes(ctx context.Context) []dashboard.ResumeRow

	// Presence returns the current online count, or a zero update if the
	// stream is unavailable.
	Presence(ctx context.Context) dashboard.PresenceUpdate

	// WatchPresence forwards live presence updates to fn until unsubscribe
	// is called.
	WatchPresence(ctx context.Context, fn func(dashboard.PresenceUpdate)) (unsubscribe func(), err error)
}
