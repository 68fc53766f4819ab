package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	appctx "github.com/jsamuelsen11/sitekit/internal/app/context"
	"github.com/jsamuelsen11/sitekit/internal/domain"
	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/domain/listing"
	"github.com/jsamuelsen11/sitekit/internal/domain/seo"
	"github.com/jsamuelsen11/sitekit/internal/platform/config"
	"github.com/jsamuelsen11/sitekit/internal/platform/telemetry"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// Compile-time check that ContentService implements ports.ContentService.
var _ ports.ContentService = (*ContentService)(nil)

// Public listing paths. Pagination links are built against these.
const (
	BlogPath     = "/blog"
	GalleryPath  = "/gallery"
	PackagesPath = "/packages"
)

// Contact submission results recorded on the contact.submissions counter.
const (
	resultAccepted = "accepted"
	resultInvalid  = "invalid"
	resultFailed   = "failed"
)

// ContentService implements ports.ContentService on top of the CMS client
// port. Reads never fail the page: a failed listing read is logged, counted
// and rendered empty, and a failed single-document read is a not-found.
type ContentService struct {
	cms     ports.ContentClient
	site    config.SiteConfig
	listing config.ListingConfig
	metrics *telemetry.Metrics
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// ContentOption customizes a ContentService.
type ContentOption func(*ContentService)

// WithContentClock replaces time.Now, used for sitemap dates and submission
// timestamps.
func WithContentClock(now func() time.Time) ContentOption {
	return func(s *ContentService) { s.now = now }
}

// WithIDGenerator replaces the UUID generator used for contact submission
// document IDs.
func WithIDGenerator(fn func() string) ContentOption {
	return func(s *ContentService) { s.newID = fn }
}

// NewContentService creates a ContentService. A nil logger discards logs and
// a nil metrics skips metric recording.
func NewContentService(
	cms ports.ContentClient,
	site *config.SiteConfig,
	listingCfg *config.ListingConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...ContentOption,
) *ContentService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ContentService{
		cms:     cms,
		site:    *site,
		listing: *listingCfg,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListBlogPosts returns the page of posts selected by filter, its pagination
// bar and summary, and the Blog document.
func (s *ContentService) ListBlogPosts(ctx context.Context, filter listing.FilterState) ports.Listing[content.BlogPost] {
	pageSize := s.listing.BlogPageSize
	start, end := listing.Range(filter.CurrentPage(), pageSize)

	result, err := s.cms.ListBlogPosts(ctx, content.BlogQuery{
		Search:   filter.Search,
		Category: filter.Category,
		Tag:      filter.Tag,
		Offset:   start,
		Limit:    end - start,
	})
	if err != nil {
		s.readFailed(ctx, "ListBlogPosts", err)
		result = content.Page[content.BlogPost]{Items: []content.BlogPost{}}
	}

	out := buildListing(BlogPath, filter, result, pageSize, s.listing.MaxVisiblePages)
	out.Summary = listing.Summary(out.Page, pageSize, "post", "posts")
	out.JSONLD = seo.Blog(s.seoSite(), out.Items)
	return out
}

// GetBlogPost returns a post with its related posts and its BlogPosting and
// BreadcrumbList documents.
func (s *ContentService) GetBlogPost(ctx context.Context, slug string) (*ports.Detail[content.BlogPost], error) {
	post, err := s.cms.GetBlogPost(ctx, slug)
	if err != nil {
		return nil, s.detailFailed(ctx, "GetBlogPost", slug, err)
	}

	related, err := s.cms.RelatedPosts(ctx, post, s.listing.RelatedPosts)
	if err != nil {
		s.readFailed(ctx, "RelatedPosts", err)
		related = []content.BlogPost{}
	}

	site := s.seoSite()
	return &ports.Detail[content.BlogPost]{
		Item:    *post,
		Related: related,
		JSONLD: []seo.JSONLD{
			seo.BlogPosting(site, *post),
			seo.BreadcrumbList(site,
				seo.Crumb{Name: "Home", Path: "/"},
				seo.Crumb{Name: "Blog", Path: BlogPath},
				seo.Crumb{Name: post.Title, Path: seo.BlogPostPath(post.Slug)},
			),
		},
	}, nil
}

// ListCategories returns every blog category, or none when the CMS read
// fails.
func (s *ContentService) ListCategories(ctx context.Context) []content.Category {
	categories, err := appctx.Fetch(ctx, "cms:"+content.TypeCategory, s.cms.ListCategories)
	if err != nil {
		s.readFailed(ctx, "ListCategories", err)
		return []content.Category{}
	}
	return categories
}

// ListGallery returns the page of gallery entries selected by the category
// and page of filter.
func (s *ContentService) ListGallery(ctx context.Context, filter listing.FilterState) ports.Listing[content.GalleryItem] {
	filter = listing.FilterState{Category: filter.Category, Page: filter.Page}
	pageSize := s.listing.GalleryPageSize
	start, end := listing.Range(filter.CurrentPage(), pageSize)

	result, err := s.cms.ListGallery(ctx, content.GalleryQuery{
		Category: filter.Category,
		Offset:   start,
		Limit:    end - start,
	})
	if err != nil {
		s.readFailed(ctx, "ListGallery", err)
		result = content.Page[content.GalleryItem]{Items: []content.GalleryItem{}}
	}

	out := buildListing(GalleryPath, filter, result, pageSize, s.listing.MaxVisiblePages)
	out.Summary = listing.Summary(out.Page, pageSize, "gallery", "galleries")
	out.JSONLD = seo.BreadcrumbList(s.seoSite(),
		seo.Crumb{Name: "Home", Path: "/"},
		seo.Crumb{Name: "Gallery", Path: GalleryPath},
	)
	return out
}

// GetGalleryItem returns a gallery entry with its BreadcrumbList document.
func (s *ContentService) GetGalleryItem(ctx context.Context, slug string) (*ports.Detail[content.GalleryItem], error) {
	item, err := s.cms.GetGalleryItem(ctx, slug)
	if err != nil {
		return nil, s.detailFailed(ctx, "GetGalleryItem", slug, err)
	}

	return &ports.Detail[content.GalleryItem]{
		Item:    *item,
		Related: []content.GalleryItem{},
		JSONLD: []seo.JSONLD{seo.BreadcrumbList(s.seoSite(),
			seo.Crumb{Name: "Home", Path: "/"},
			seo.Crumb{Name: "Gallery", Path: GalleryPath},
			seo.Crumb{Name: item.Title, Path: seo.GalleryPath(item.Slug)},
		)},
	}, nil
}

// ListPackages returns the service packages in category, or all of them for
// an empty category.
func (s *ContentService) ListPackages(ctx context.Context, category string) []content.ServicePackage {
	packages, err := s.cms.ListPackages(ctx, category)
	if err != nil {
		s.readFailed(ctx, "ListPackages", err)
		return []content.ServicePackage{}
	}
	return packages
}

// GetPackage returns a service package with its BreadcrumbList document.
func (s *ContentService) GetPackage(ctx context.Context, slug string) (*ports.Detail[content.ServicePackage], error) {
	pkg, err := s.cms.GetPackage(ctx, slug)
	if err != nil {
		return nil, s.detailFailed(ctx, "GetPackage", slug, err)
	}

	return &ports.Detail[content.ServicePackage]{
		Item:    *pkg,
		Related: []content.ServicePackage{},
		JSONLD: []seo.JSONLD{seo.BreadcrumbList(s.seoSite(),
			seo.Crumb{Name: "Home", Path: "/"},
			seo.Crumb{Name: "Packages", Path: PackagesPath},
			seo.Crumb{Name: pkg.Title, Path: seo.PackagePath(pkg.Slug)},
		)},
	}, nil
}

// SiteSettings returns the CMS settings with empty fields filled from the
// site configuration. The CMS document is read once per request.
func (s *ContentService) SiteSettings(ctx context.Context) content.SiteSettings {
	defaults := content.SiteSettings{
		Title:        s.site.Name,
		Description:  s.site.Description,
		Logo:         content.Image{URL: s.site.LogoURL},
		ContactEmail: s.site.ContactEmail,
		ContactPhone: s.site.ContactPhone,
		SocialLinks:  append([]string{}, s.site.SameAs...),
	}

	settings, err := appctx.Fetch(ctx, "cms:"+content.TypeSiteSettings, s.cms.SiteSettings)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.readFailed(ctx, "SiteSettings", err)
		}
		return defaults
	}

	merged := *settings
	if merged.Title == "" {
		merged.Title = defaults.Title
	}
	if merged.Description == "" {
		merged.Description = defaults.Description
	}
	if merged.Logo.IsZero() {
		merged.Logo = defaults.Logo
	}
	if merged.ContactEmail == "" {
		merged.ContactEmail = defaults.ContactEmail
	}
	if merged.ContactPhone == "" {
		merged.ContactPhone = defaults.ContactPhone
	}
	if len(merged.SocialLinks) == 0 {
		merged.SocialLinks = defaults.SocialLinks
	}
	return merged
}

// Organization returns the TravelAgency document built from SiteSettings.
func (s *ContentService) Organization(ctx context.Context) seo.JSONLD {
	settings := s.SiteSettings(ctx)

	site := s.seoSite()
	site.Name = settings.Title
	site.Description = settings.Description
	site.LogoURL = settings.Logo.URL
	site.Email = settings.ContactEmail
	site.Phone = settings.ContactPhone
	site.SameAs = settings.SocialLinks
	return seo.Organization(site)
}

// SubmitContact sanitizes and validates sub, assigns it a new document ID and
// submission time, and stores it in the CMS. It returns the stored ID.
func (s *ContentService) SubmitContact(ctx context.Context, sub *content.ContactSubmission) (string, error) {
	sub.Sanitize()
	if err := sub.Validate(); err != nil {
		s.countSubmission(ctx, resultInvalid)
		return "", err
	}

	sub.ID = s.newID()
	sub.SubmittedAt = s.now().UTC()

	s.logger.InfoContext(ctx, "storing contact submission", slog.String("id", sub.ID))

	id, err := s.cms.CreateContactSubmission(ctx, sub)
	if err != nil {
		s.countSubmission(ctx, resultFailed)
		s.logger.ErrorContext(ctx, "failed to store contact submission",
			slog.String("operation", "SubmitContact"),
			slog.String("id", sub.ID),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("storing contact submission: %w", err)
	}

	s.countSubmission(ctx, resultAccepted)
	return id, nil
}

// SitemapEntries returns the static pages followed by every routable CMS
// document. A failed route read leaves only the static pages.
func (s *ContentService) SitemapEntries(ctx context.Context) []seo.Entry {
	now := s.now().UTC()
	entries := seo.StaticEntries(now)

	routes, err := s.cms.Routes(ctx)
	if err != nil {
		s.readFailed(ctx, "SitemapEntries", err)
		return entries
	}

	for _, r := range routes {
		entry, ok := routeEntry(r, now)
		if !ok || seo.Excluded(entry.Path) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// Sitemap renders SitemapEntries as sitemap.xml.
func (s *ContentService) Sitemap(ctx context.Context) ([]byte, error) {
	body, err := seo.MarshalSitemap(s.seoSite(), s.SitemapEntries(ctx))
	if err != nil {
		return nil, fmt.Errorf("rendering sitemap: %w", err)
	}
	return body, nil
}

// Robots renders robots.txt.
func (s *ContentService) Robots(_ context.Context) string {
	return seo.Robots(s.seoSite())
}

func (s *ContentService) seoSite() seo.Site {
	return seo.Site{
		BaseURL:     s.site.BaseURL,
		Name:        s.site.Name,
		Description: s.site.Description,
		LogoURL:     s.site.LogoURL,
		Email:       s.site.ContactEmail,
		Phone:       s.site.ContactPhone,
		SameAs:      s.site.SameAs,
	}
}

// readFailed logs and counts a CMS read whose result is being replaced by an
// empty value.
func (s *ContentService) readFailed(ctx context.Context, operation string, err error) {
	s.logger.ErrorContext(ctx, "content read failed",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	if s.metrics != nil {
		s.metrics.StoreReadFailures.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrPeerService.String("cms"),
			telemetry.AttrOperation.String(operation),
		))
	}
}

// detailFailed turns any single-document read failure into a not-found,
// logging the failures that were not already not-found.
func (s *ContentService) detailFailed(ctx context.Context, operation, slug string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	s.readFailed(ctx, operation, err)
	return fmt.Errorf("%s %q: %w", operation, slug, domain.ErrNotFound)
}

func (s *ContentService) countSubmission(ctx context.Context, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.ContactSubmissions.Add(ctx, 1, metric.WithAttributes(telemetry.AttrResult.String(result)))
}

// buildListing fills the pagination fields of a listing from a CMS page.
func buildListing[T any](path string, filter listing.FilterState, result content.Page[T], pageSize, maxVisible int) ports.Listing[T] {
	page := listing.NewListingPage(filter.CurrentPage(), result.Total, pageSize)
	items := result.Items
	if items == nil {
		items = []T{}
	}

	return ports.Listing[T]{
		Items:  items,
		Page:   page,
		Nav:    listing.Nav(path, filter.Values(), page, maxVisible),
		Filter: filter,
	}
}

// routeEntry maps a CMS route to its public sitemap entry.
func routeEntry(r content.Route, now time.Time) (seo.Entry, bool) {
	lastMod := r.UpdatedAt
	if lastMod.IsZero() {
		lastMod = now
	}

	switch r.Type {
	case content.TypeBlogPost:
		return seo.Entry{Path: seo.BlogPostPath(r.Slug), LastMod: lastMod, ChangeFreq: seo.ChangeWeekly, Priority: 0.7}, true
	case content.TypeGallery:
		return seo.Entry{Path: seo.GalleryPath(r.Slug), LastMod: lastMod, ChangeFreq: seo.ChangeMonthly, Priority: 0.6}, true
	case content.TypeServicePackage:
		return seo.Entry{Path: seo.PackagePath(r.Slug), LastMod: lastMod, ChangeFreq: seo.ChangeWeekly, Priority: 0.8}, true
	default:
		return seo.Entry{}, false
	}
}
