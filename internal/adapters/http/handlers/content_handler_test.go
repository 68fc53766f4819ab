package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sitekit/internal/domain"
	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/domain/listing"
	"github.com/jsamuelsen11/sitekit/internal/domain/seo"
	"github.com/jsamuelsen11/sitekit/internal/ports"
	"github.com/jsamuelsen11/sitekit/mocks"
)

func newContentHandler(t *testing.T) (*handlers.ContentHandler, *mocks.MockContentService) {
	t.Helper()
	svc := mocks.NewMockContentService(t)
	return handlers.NewContentHandler(svc), svc
}

// --- Site ---

func TestSite_Success(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().SiteSettings(mock.Anything).Return(content.SiteSettings{Title: "Wander"})
	svc.EXPECT().Organization(mock.Anything).Return(seo.JSONLD{"@type": "TravelAgency"})

	rec := httptest.NewRecorder()
	h.Site(rec, httptest.NewRequest(http.MethodGet, "/api/v1/site", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.SiteResponse](t, rec)
	if resp.Title != "Wander" || resp.Organization["@type"] != "TravelAgency" {
		t.Errorf("resp = %+v", resp)
	}
}

// --- Blog ---

func TestListBlogPosts_PassesFilters(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	filter := listing.FilterState{Tag: "beach", Page: 2}
	svc.EXPECT().ListBlogPosts(mock.Anything, filter).Return(ports.Listing[content.BlogPost]{
		Items:   []content.BlogPost{validPost()},
		Page:    listing.ListingPage{CurrentPage: 2, TotalPages: 2, TotalCount: 7, HasPrev: true},
		Summary: "Showing 7-7 of 7 posts",
		Filter:  filter,
	})

	rec := httptest.NewRecorder()
	h.ListBlogPosts(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blog?tag=beach&page=2", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListingResponse[dto.BlogPostResponse]](t, rec)
	if len(resp.Items) != 1 || resp.Items[0].Body != nil {
		t.Errorf("Items = %+v, want one post without body", resp.Items)
	}
	if resp.Pagination.CurrentPage != 2 || resp.Filter.Tag != "beach" {
		t.Errorf("Pagination = %+v, Filter = %+v", resp.Pagination, resp.Filter)
	}
}

func TestListBlogPosts_EmptyEncodesItems(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().ListBlogPosts(mock.Anything, listing.FilterState{}).Return(ports.Listing[content.BlogPost]{})

	rec := httptest.NewRecorder()
	h.ListBlogPosts(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blog", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[map[string]any](t, rec)
	if items, ok := resp["items"].([]any); !ok || len(items) != 0 {
		t.Errorf("items = %v, want []", resp["items"])
	}
}

func TestListCategories(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().ListCategories(mock.Anything).Return([]content.Category{{Title: "Bali", Slug: "bali"}})

	rec := httptest.NewRecorder()
	h.ListCategories(rec, httptest.NewRequest(http.MethodGet, "/api/v1/blog/categories", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse[dto.CategoryResponse]](t, rec)
	if resp.Count != 1 || resp.Items[0].Slug != "bali" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGetBlogPost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		slug       string
		setup      func(svc *mocks.MockContentService)
		wantStatus int
	}{
		{
			name: "found",
			slug: "three-days-in-ubud",
			setup: func(svc *mocks.MockContentService) {
				svc.EXPECT().GetBlogPost(mock.Anything, "three-days-in-ubud").Return(&ports.Detail[content.BlogPost]{
					Item:   validPost(),
					JSONLD: []seo.JSONLD{{"@type": "BlogPosting"}},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "missing",
			slug: "nope",
			setup: func(svc *mocks.MockContentService) {
				svc.EXPECT().GetBlogPost(mock.Anything, "nope").Return(nil, domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty slug",
			slug:       "",
			setup:      func(*mocks.MockContentService) {},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newContentHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/blog/"+tt.slug, nil),
				map[string]string{"slug": tt.slug})
			h.GetBlogPost(rec, req)

			requireStatus(t, rec, tt.wantStatus)
			if tt.wantStatus == http.StatusOK {
				resp := decodeJSON[dto.DetailResponse[dto.BlogPostResponse]](t, rec)
				if resp.Item.Body == nil || len(resp.JSONLD) != 1 {
					t.Errorf("resp = %+v, want body and one JSON-LD document", resp)
				}
			} else if ct := rec.Header().Get("Content-Type"); ct != dto.ContentTypeProblem {
				t.Errorf("Content-Type = %q, want %q", ct, dto.ContentTypeProblem)
			}
		})
	}
}

// --- Gallery ---

func TestListGallery(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().ListGallery(mock.Anything, listing.FilterState{Category: "islands"}).
		Return(ports.Listing[content.GalleryItem]{
			Items: []content.GalleryItem{{Slug: "komodo", Title: "Komodo"}},
		})

	rec := httptest.NewRecorder()
	h.ListGallery(rec, httptest.NewRequest(http.MethodGet, "/api/v1/gallery?category=islands", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListingResponse[dto.GalleryItemResponse]](t, rec)
	if len(resp.Items) != 1 || resp.Items[0].Slug != "komodo" {
		t.Errorf("Items = %+v", resp.Items)
	}
}

func TestGetGalleryItem_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().GetGalleryItem(mock.Anything, "gone").Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/gallery/gone", nil),
		map[string]string{"slug": "gone"})
	h.GetGalleryItem(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- Packages ---

func TestListPackages_ByCategory(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().ListPackages(mock.Anything, "cultural").Return([]content.ServicePackage{validPackage()})

	rec := httptest.NewRecorder()
	h.ListPackages(rec, httptest.NewRequest(http.MethodGet, "/api/v1/packages?category=cultural", nil))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ListResponse[dto.PackageResponse]](t, rec)
	if resp.Count != 1 || resp.Items[0].DurationDays != 7 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestGetPackage_Success(t *testing.T) {
	t.Parallel()
	h, svc := newContentHandler(t)

	svc.EXPECT().GetPackage(mock.Anything, "bali-highlights").
		Return(&ports.Detail[content.ServicePackage]{Item: validPackage()}, nil)

	rec := httptest.NewRecorder()
	req := withChiParams(httptest.NewRequest(http.MethodGet, "/api/v1/packages/bali-highlights", nil),
		map[string]string{"slug": "bali-highlights"})
	h.GetPackage(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.DetailResponse[dto.PackageResponse]](t, rec)
	if resp.Item.Slug != "bali-highlights" || resp.Item.PriceFrom != 899 {
		t.Errorf("Item = %+v", resp.Item)
	}
}
