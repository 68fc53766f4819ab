package ports

import (
	"context"

	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
)

// ContentClient defines the client port for the headless CMS. Implemented by
// the CMS ACL adapter; called by the content service. Optional CMS fields are
// defaulted by the adapter, so callers never see partially decoded documents.
type ContentClient interface {
	// ListBlogPosts returns one page of published posts, newest first, and the
	// total number of posts matching the query.
	ListBlogPosts(ctx context.Context, q content.BlogQuery) (content.Page[content.BlogPost], error)

	// GetBlogPost returns a post by slug, including its body.
	// Returns domain.ErrNotFound if no post has that slug.
	GetBlogPost(ctx context.Context, slug string) (*content.BlogPost, error)

	// RelatedPosts returns up to limit other posts sharing a category with
	// post, newest first.
	RelatedPosts(ctx context.Context, post *content.BlogPost, limit int) ([]content.BlogPost, error)

	// ListCategories returns every blog category ordered by title.
	ListCategories(ctx context.Context) ([]content.Category, error)

	// ListGallery returns one page of gallery entries and the total count.
	ListGallery(ctx context.Context, q content.GalleryQuery) (content.Page[content.GalleryItem], error)

	// GetGalleryItem returns a gallery entry by slug.
	// Returns domain.ErrNotFound if no entry has that slug.
	GetGalleryItem(ctx context.Context, slug string) (*content.GalleryItem, error)

	// ListPackages returns service packages, featured first. An empty
	// category returns all packages.
	ListPackages(ctx context.Context, category string) ([]content.ServicePackage, error)

	// GetPackage returns a service package by slug.
	// Returns domain.ErrNotFound if no package has that slug.
	GetPackage(ctx context.Context, slug string) (*content.ServicePackage, error)

	// SiteSettings returns the singleton settings document.
	// Returns domain.ErrNotFound if it has not been created.
	SiteSettings(ctx context.Context) (*content.SiteSettings, error)

	// Routes returns every routable document for the sitemap.
	Routes(ctx context.Context) ([]content.Route, error)

	// CreateContactSubmission stores a contact form message under sub.ID and
	// returns the stored document ID.
	CreateContactSubmission(ctx context.Context, sub *content.ContactSubmission) (string, error)
}

// StoreClient defines the client port for the document store backing the
// admin dashboard. Implemented by the store ACL adapter.
type StoreClient interface {
	// ListDocuments runs an ordered, limited read of one collection.
	ListDocuments(ctx context.Context, q dashboard.Query) ([]dashboard.Document, error)
}

// EventStream defines the port for the realtime "users online" feed.
type EventStream interface {
	// Subscribe registers fn to receive every update until the returned
	// unsubscribe function is called or ctx ends. Updates are delivered
	// sequentially from a single goroutine. Unsubscribe is idempotent and
	// blocks until fn will no longer be called.
	Subscribe(ctx context.Context, fn func(dashboard.PresenceUpdate)) (unsubscribe func(), err error)

	// Current returns the latest known count.
	Current(ctx context.Context) (dashboard.PresenceUpdate, error)
}
