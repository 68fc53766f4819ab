// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"encoding/json"

	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/domain/listing"
	"github.com/jsamuelsen11/sitekit/internal/domain/seo"
	"github.com/jsamuelsen11/sitekit/internal/domain/timefmt"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// ImageResponse represents a resolved image asset.
type ImageResponse struct {
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// CategoryResponse represents a content category.
type CategoryResponse struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

// AuthorResponse represents a blog post byline.
type AuthorResponse struct {
	Name  string         `json:"name"`
	Slug  string         `json:"slug,omitempty"`
	Bio   string         `json:"bio,omitempty"`
	Image *ImageResponse `json:"image,omitempty"`
}

// BlogPostResponse represents a blog post. Body carries the rich-text blocks
// untouched and is omitted from listings.
type BlogPostResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Slug           string             `json:"slug"`
	Excerpt        string             `json:"excerpt,omitempty"`
	Body           json.RawMessage    `json:"body,omitempty"`
	MainImage      *ImageResponse     `json:"main_image,omitempty"`
	Author         *AuthorResponse    `json:"author,omitempty"`
	Categories     []CategoryResponse `json:"categories"`
	Tags           []string           `json:"tags"`
	ReadingMinutes int                `json:"reading_minutes"`
	PublishedAt    string             `json:"published_at,omitempty"`
	PublishedOn    string             `json:"published_on"`
	UpdatedAt      string             `json:"updated_at,omitempty"`
}

// PageLinkResponse is one entry of a pagination bar. Gap entries have no
// page and no href.
type PageLinkResponse struct {
	Page    int    `json:"page,omitempty"`
	Href    string `json:"href,omitempty"`
	Current bool   `json:"current,omitempty"`
	Gap     bool   `json:"gap,omitempty"`
}

// PaginationResponse represents the page state and pagination bar of a
// listing.
type PaginationResponse struct {
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	TotalCount  int                `json:"total_count"`
	HasNext     bool               `json:"has_next"`
	HasPrev     bool               `json:"has_prev"`
	PrevHref    string             `json:"prev_href,omitempty"`
	NextHref    string             `json:"next_href,omitempty"`
	Links       []PageLinkResponse `json:"links"`
}

// FilterResponse echoes the filters applied to a listing.
type FilterResponse struct {
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// ListingResponse represents one page of a paginated content collection.
type ListingResponse[T any] struct {
	Items      []T                `json:"items"`
	Pagination PaginationResponse `json:"pagination"`
	Summary    string             `json:"summary"`
	Filter     FilterResponse     `json:"filter"`
	JSONLD     seo.JSONLD         `json:"json_ld,omitempty"`
}

// DetailResponse represents a single content document with its related
// documents and structured data.
type DetailResponse[T any] struct {
	Item    T            `json:"item"`
	Related []T          `json:"related,omitempty"`
	JSONLD  []seo.JSONLD `json:"json_ld"`
}

// ListResponse represents an unpaginated collection.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

// GalleryItemResponse represents a gallery entry.
type GalleryItemResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Description string          `json:"description,omitempty"`
	Location    string          `json:"location,omitempty"`
	Category    string          `json:"category,omitempty"`
	CoverImage  *ImageResponse  `json:"cover_image,omitempty"`
	Images      []ImageResponse `json:"images"`
	PublishedAt string          `json:"published_at,omitempty"`
}

// PackageResponse represents a bookable service package.
type PackageResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Summary      string         `json:"summary,omitempty"`
	Category     string         `json:"category,omitempty"`
	Destination  string         `json:"destination,omitempty"`
	DurationDays int            `json:"duration_days,omitempty"`
	PriceFrom    float64        `json:"price_from"`
	Currency     string         `json:"currency"`
	Highlights   []string       `json:"highlights"`
	Inclusions   []string       `json:"inclusions"`
	Image        *ImageResponse `json:"image,omitempty"`
	Featured     bool           `json:"featured"`
}

// SiteResponse represents the site identity and its Organization document.
type SiteResponse struct {
	Title        string         `json:"title"`
	Description  string         `json:"description,omitempty"`
	Logo         *ImageResponse `json:"logo,omitempty"`
	ContactEmail string         `json:"contact_email,omitempty"`
	ContactPhone string         `json:"contact_phone,omitempty"`
	Address      string         `json:"address,omitempty"`
	SocialLinks  []string       `json:"social_links"`
	Organization seo.JSONLD     `json:"organization"`
}

// ContactResponse is returned for an accepted contact form submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// ToImageResponse converts an image, returning nil when it has no asset.
func ToImageResponse(img content.Image) *ImageResponse {
	if img.IsZero() {
		return nil
	}
	return &ImageResponse{URL: img.URL, Alt: img.Alt, Width: img.Width, Height: img.Height}
}

// ToCategoryResponses converts categories.
func ToCategoryResponses(categories []content.Category) []CategoryResponse {
	return mapSlice(categories, func(c *content.Category) CategoryResponse {
		return CategoryResponse{Title: c.Title, Slug: c.Slug, Description: c.Description}
	})
}

// ToBlogPostResponse converts a post. When withBody is false the rich-text
// body is dropped.
func ToBlogPostResponse(p *content.BlogPost, withBody bool) BlogPostResponse {
	resp := BlogPostResponse{
		ID:             p.ID,
		Title:          p.Title,
		Slug:           p.Slug,
		Excerpt:        p.Excerpt,
		MainImage:      ToImageResponse(p.MainImage),
		Categories:     ToCategoryResponses(p.Categories),
		Tags:           nonNil(p.Tags),
		ReadingMinutes: p.ReadingMinutes,
		PublishedAt:    timefmt.ISO(p.PublishedAt),
		PublishedOn:    timefmt.FormatDate(p.PublishedAt),
		UpdatedAt:      timefmt.ISO(p.UpdatedAt),
	}
	if withBody {
		resp.Body = p.Body
	}
	if p.Author != nil {
		resp.Author = &AuthorResponse{
			Name:  p.Author.Name,
			Slug:  p.Author.Slug,
			Bio:   p.Author.Bio,
			Image: ToImageResponse(p.Author.Image),
		}
	}
	return resp
}

// ToGalleryItemResponse converts a gallery entry.
func ToGalleryItemResponse(g *content.GalleryItem) GalleryItemResponse {
	images := make([]ImageResponse, 0, len(g.Images))
	for _, img := range g.Images {
		if r := ToImageResponse(img); r != nil {
			images = append(images, *r)
		}
	}
	return GalleryItemResponse{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
		Location:    g.Location,
		Category:    g.Category,
		CoverImage:  ToImageResponse(g.CoverImage),
		Images:      images,
		PublishedAt: timefmt.ISO(g.PublishedAt),
	}
}

// ToPackageResponse converts a service package.
func ToPackageResponse(p *content.ServicePackage) PackageResponse {
	return PackageResponse{
		ID:           p.ID,
		Title:        p.Title,
		Slug:         p.Slug,
		Summary:      p.Summary,
		Category:     p.Category,
		Destination:  p.Destination,
		DurationDays: p.DurationDays,
		PriceFrom:    p.PriceFrom,
		Currency:     p.Currency,
		Highlights:   nonNil(p.Highlights),
		Inclusions:   nonNil(p.Inclusions),
		Image:        ToImageResponse(p.Image),
		Featured:     p.Featured,
	}
}

// ToSiteResponse combines the site settings with the Organization document.
func ToSiteResponse(s *content.SiteSettings, org seo.JSONLD) SiteResponse {
	return SiteResponse{
		Title:        s.Title,
		Description:  s.Description,
		Logo:         ToImageResponse(s.Logo),
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		SocialLinks:  nonNil(s.SocialLinks),
		Organization: org,
	}
}

// ToPaginationResponse converts a page state and its navigation bar.
func ToPaginationResponse(p listing.ListingPage, nav listing.Navigation) PaginationResponse {
	links := make([]PageLinkResponse, 0, len(nav.Links))
	for _, l := range nav.Links {
		links = append(links, PageLinkResponse{Page: l.Page, Href: l.Href, Current: l.Current, Gap: l.Gap})
	}
	return PaginationResponse{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		TotalCount:  p.TotalCount,
		HasNext:     p.HasNext,
		HasPrev:     p.HasPrev,
		PrevHref:    nav.PrevHref,
		NextHref:    nav.NextHref,
		Links:       links,
	}
}

// ToListingResponse converts a service listing, mapping each item with fn.
func ToListingResponse[T, R any](l ports.Listing[T], fn func(*T) R) ListingResponse[R] {
	return ListingResponse[R]{
		Items:      mapSlice(l.Items, fn),
		Pagination: ToPaginationResponse(l.Page, l.Nav),
		Summary:    l.Summary,
		Filter: FilterResponse{
			Search:   l.Filter.Search,
			Category: l.Filter.Category,
			Tag:      l.Filter.Tag,
		},
		JSONLD: l.JSONLD,
	}
}

// ToDetailResponse converts a service detail, mapping the item and its
// related documents with fn.
func ToDetailResponse[T, R any](d *ports.Detail[T], fn func(*T) R) DetailResponse[R] {
	resp := DetailResponse[R]{
		Item:   fn(&d.Item),
		JSONLD: d.JSONLD,
	}
	if len(d.Related) > 0 {
		resp.Related = mapSlice(d.Related, fn)
	}
	if resp.JSONLD == nil {
		resp.JSONLD = []seo.JSONLD{}
	}
	return resp
}

// NewListResponse wraps items with their count. The items are never encoded
// as null.
func NewListResponse[T any](items []T) ListResponse[T] {
	items = nonNil(items)
	return ListResponse[T]{Items: items, Count: len(items)}
}

func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks maps a downstream name to "ok" or its failure message.
type HealthResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks,omitempty"`
	Degraded []string          `json:"degraded,omitempty"`
}
