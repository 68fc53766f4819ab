package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jsamuelsen11/sitekit/internal/adapters/clients/acl/cms"
	"github.com/jsamuelsen11/sitekit/internal/domain"
	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/platform/config"
	"github.com/jsamuelsen11/sitekit/internal/platform/httpclient"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ContentClient = (*CMSClient)(nil)
	_ ports.HealthChecker = (*CMSClient)(nil)
)

// defaultQueryLimit applies when a caller passes a non-positive limit.
const defaultQueryLimit = 10

// CMSClient is the outbound adapter for the headless CMS. Reads go through
// the GROQ query API and contact submissions through the mutate API. GROQ
// projections and their translation to content types live in [cms].
type CMSClient struct {
	req        *Requester
	queryPath  string
	mutatePath string
	logger     *slog.Logger
}

// NewCMSClient creates a CMSClient for the dataset and API version in cfg.
// The client's BaseURL should point at the project API host.
func NewCMSClient(client *httpclient.Client, cfg *config.CMSConfig, logger *slog.Logger) *CMSClient {
	prefix := "/" + strings.Trim(cfg.APIVersion, "/") + "/data"
	dataset := url.PathEscape(cfg.Dataset)

	return &CMSClient{
		req:        NewRequester(client, logger),
		queryPath:  prefix + "/query/" + dataset,
		mutatePath: prefix + "/mutate/" + dataset,
		logger:     logger,
	}
}

// runQuery issues a GROQ query and decodes its result into T.
func runQuery[T any](ctx context.Context, c *CMSClient, query string, params map[string]any) (T, error) {
	var resp cms.QueryResponse[T]

	values, err := cms.Params(query, params)
	if err != nil {
		return resp.Result, err
	}
	if err := c.req.Do(ctx, http.MethodGet, c.queryPath, values, nil, &resp); err != nil {
		return resp.Result, err
	}
	return resp.Result, nil
}

// ListBlogPosts fetches one page of posts matching q, newest first.
func (c *CMSClient) ListBlogPosts(ctx context.Context, q content.BlogQuery) (content.Page[content.BlogPost], error) {
	start, end := bounds(q.Offset, q.Limit)

	dto, err := runQuery[cms.BlogPageDTO](ctx, c, cms.BlogPageQuery, map[string]any{
		"search":   q.Search,
		"category": q.Category,
		"tag":      q.Tag,
		"start":    start,
		"end":      end,
	})
	if err != nil {
		return content.Page[content.BlogPost]{}, err
	}
	return cms.ToBlogPage(dto), nil
}

// GetBlogPost fetches a single post with its body. Returns
// [domain.ErrNotFound] when no published post has the slug.
func (c *CMSClient) GetBlogPost(ctx context.Context, slug string) (*content.BlogPost, error) {
	dto, err := runQuery[*cms.BlogPostDTO](ctx, c, cms.BlogPostQuery, map[string]any{"slug": slug})
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, fmt.Errorf("blog post %q: %w", slug, domain.ErrNotFound)
	}
	post := cms.ToBlogPost(dto)
	return &post, nil
}

// RelatedPosts fetches up to limit posts sharing a category with post. A
// post without categories has no related posts and makes no request.
func (c *CMSClient) RelatedPosts(ctx context.Context, post *content.BlogPost, limit int) ([]content.BlogPost, error) {
	slugs := make([]string, 0, len(post.Categories))
	for _, cat := range post.Categories {
		slugs = append(slugs, cat.Slug)
	}
	if len(slugs) == 0 || limit <= 0 {
		return []content.BlogPost{}, nil
	}

	dtos, err := runQuery[[]cms.BlogPostDTO](ctx, c, cms.RelatedPostsQuery, map[string]any{
		"id":         post.ID,
		"categories": slugs,
		"limit":      limit,
	})
	if err != nil {
		return nil, err
	}
	return cms.ToBlogPosts(dtos), nil
}

// ListCategories fetches every category ordered by title.
func (c *CMSClient) ListCategories(ctx context.Context) ([]content.Category, error) {
	dtos, err := runQuery[[]cms.CategoryDTO](ctx, c, cms.CategoriesQuery, nil)
	if err != nil {
		return nil, err
	}
	return cms.ToCategories(dtos), nil
}

// ListGallery fetches one page of gallery entries, newest first.
func (c *CMSClient) ListGallery(ctx context.Context, q content.GalleryQuery) (content.Page[content.GalleryItem], error) {
	start, end := bounds(q.Offset, q.Limit)

	dto, err := runQuery[cms.GalleryPageDTO](ctx, c, cms.GalleryPageQuery, map[string]any{
		"category": q.Category,
		"start":    start,
		"end":      end,
	})
	if err != nil {
		return content.Page[content.GalleryItem]{}, err
	}
	return cms.ToGalleryPage(dto), nil
}

// GetGalleryItem fetches a gallery entry. Returns [domain.ErrNotFound] when
// no entry has the slug.
func (c *CMSClient) GetGalleryItem(ctx context.Context, slug string) (*content.GalleryItem, error) {
	dto, err := runQuery[*cms.GalleryItemDTO](ctx, c, cms.GalleryItemQuery, map[string]any{"slug": slug})
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, fmt.Errorf("gallery item %q: %w", slug, domain.ErrNotFound)
	}
	item := cms.ToGalleryItem(dto)
	return &item, nil
}

// ListPackages fetches packages, featured first, optionally narrowed to a
// category.
func (c *CMSClient) ListPackages(ctx context.Context, category string) ([]content.ServicePackage, error) {
	dtos, err := runQuery[[]cms.ServicePackageDTO](ctx, c, cms.PackagesQuery, map[string]any{"category": category})
	if err != nil {
		return nil, err
	}
	return cms.ToServicePackages(dtos), nil
}

// GetPackage fetches a package. Returns [domain.ErrNotFound] when no package
// has the slug.
func (c *CMSClient) GetPackage(ctx context.Context, slug string) (*content.ServicePackage, error) {
	dto, err := runQuery[*cms.ServicePackageDTO](ctx, c, cms.PackageQuery, map[string]any{"slug": slug})
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, fmt.Errorf("service package %q: %w", slug, domain.ErrNotFound)
	}
	pkg := cms.ToServicePackage(dto)
	return &pkg, nil
}

// SiteSettings fetches the settings singleton. Returns [domain.ErrNotFound]
// when it has not been created yet.
func (c *CMSClient) SiteSettings(ctx context.Context) (*content.SiteSettings, error) {
	dto, err := runQuery[*cms.SiteSettingsDTO](ctx, c, cms.SiteSettingsQuery, nil)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, fmt.Errorf("site settings: %w", domain.ErrNotFound)
	}
	settings := cms.ToSiteSettings(dto)
	return &settings, nil
}

// Routes fetches every routable document for the sitemap.
func (c *CMSClient) Routes(ctx context.Context) ([]content.Route, error) {
	dtos, err := runQuery[[]cms.RouteDTO](ctx, c, cms.RoutesQuery, nil)
	if err != nil {
		return nil, err
	}
	return cms.ToRoutes(dtos), nil
}

// CreateContactSubmission creates a contactSubmission document with the
// submission's ID and returns the ID the CMS reports.
func (c *CMSClient) CreateContactSubmission(ctx context.Context, sub *content.ContactSubmission) (string, error) {
	if sub.ID == "" {
		return "", fmt.Errorf("contact submission without id: %w", domain.ErrValidation)
	}

	body := cms.ToCreateMutation(sub)
	query := url.Values{"returnIds": {"true"}}

	var resp cms.MutateResponseDTO
	if err := c.req.Do(ctx, http.MethodPost, c.mutatePath, query, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Results) > 0 && resp.Results[0].ID != "" {
		return resp.Results[0].ID, nil
	}
	return sub.ID, nil
}

// Name returns "cms", the name used for tracing, metrics and health checks.
func (c *CMSClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports the CMS's availability from the circuit breaker state
// without a network call.
func (c *CMSClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}

// bounds converts an offset and limit into the half-open slice range used by
// GROQ's [start...end] operator.
func bounds(offset, limit int) (start, end int) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}
	start = max(offset, 0)
	return start, start + limit
}
