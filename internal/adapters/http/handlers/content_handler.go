// Package handlers provides HTTP request handlers for the site, admin and
// health endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

// ContentHandler serves the public travel site API: site identity, blog,
// gallery and service packages.
type ContentHandler struct {
	svc ports.ContentService
}

// NewContentHandler creates a new ContentHandler with the given service port.
func NewContentHandler(svc ports.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// Site handles GET /api/v1/site.
func (h *ContentHandler) Site(w http.ResponseWriter, r *http.Request) {
	settings := h.svc.SiteSettings(r.Context())
	org := h.svc.Organization(r.Context())

	writeJSON(w, http.StatusOK, dto.ToSiteResponse(&settings, org))
}

// ListBlogPosts handles GET /api/v1/blog.
func (h *ContentHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	l := h.svc.ListBlogPosts(r.Context(), filterState(r))

	writeJSON(w, http.StatusOK, dto.ToListingResponse(l, blogSummary))
}

// ListCategories handles GET /api/v1/blog/categories.
func (h *ContentHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories := h.svc.ListCategories(r.Context())

	writeJSON(w, http.StatusOK, dto.NewListResponse(dto.ToCategoryResponses(categories)))
}

// GetBlogPost handles GET /api/v1/blog/{slug}.
func (h *ContentHandler) GetBlogPost(w http.ResponseWriter, r *http.Request) {
	s, err := slug(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.GetBlogPost(r.Context(), s)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDetailResponse(d, blogDetail))
}

// ListGallery handles GET /api/v1/gallery.
func (h *ContentHandler) ListGallery(w http.ResponseWriter, r *http.Request) {
	l := h.svc.ListGallery(r.Context(), filterState(r))

	writeJSON(w, http.StatusOK, dto.ToListingResponse(l, dto.ToGalleryItemResponse))
}

// GetGalleryItem handles GET /api/v1/gallery/{slug}.
func (h *ContentHandler) GetGalleryItem(w http.ResponseWriter, r *http.Request) {
	s, err := slug(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.GetGalleryItem(r.Context(), s)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDetailResponse(d, dto.ToGalleryItemResponse))
}

// ListPackages handles GET /api/v1/packages.
func (h *ContentHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages := h.svc.ListPackages(r.Context(), filterState(r).Category)

	items := make([]dto.PackageResponse, len(packages))
	for i := range packages {
		items[i] = dto.ToPackageResponse(&packages[i])
	}
	writeJSON(w, http.StatusOK, dto.NewListResponse(items))
}

// GetPackage handles GET /api/v1/packages/{slug}.
func (h *ContentHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	s, err := slug(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	d, err := h.svc.GetPackage(r.Context(), s)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDetailResponse(d, dto.ToPackageResponse))
}

func blogSummary(p *content.BlogPost) dto.BlogPostResponse {
	return dto.ToBlogPostResponse(p, false)
}

func blogDetail(p *content.BlogPost) dto.BlogPostResponse {
	return dto.ToBlogPostResponse(p, true)
}
