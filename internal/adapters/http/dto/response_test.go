package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/domain/dashboard"
	"github.com/jsamuelsen11/sitekit/internal/domain/listing"
	"github.com/jsamuelsen11/sitekit/internal/domain/seo"
	"github.com/jsamuelsen11/sitekit/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func validPost() content.BlogPost {
	return content.BlogPost{
		ID:             "post-1",
		Title:          "Three Days in Ubud",
		Slug:           "three-days-in-ubud",
		Excerpt:        "Rice terraces and temples.",
		Body:           json.RawMessage(`[{"_type":"block"}]`),
		MainImage:      content.Image{URL: "https://cdn.example/ubud.jpg", Alt: "Terraces"},
		Author:         &content.Author{Name: "Ayu", Slug: "ayu"},
		Categories:     []content.Category{{Title: "Bali", Slug: "bali"}},
		ReadingMinutes: 4,
		PublishedAt:    testTime,
	}
}

func TestToBlogPostResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		post     content.BlogPost
		withBody bool
		verify   func(t *testing.T, got dto.BlogPostResponse)
	}{
		{
			name:     "maps fields and dates",
			post:     validPost(),
			withBody: true,
			verify: func(t *testing.T, got dto.BlogPostResponse) {
				t.Helper()
				if got.Slug != "three-days-in-ubud" || got.ReadingMinutes != 4 {
					t.Errorf("got %+v", got)
				}
				if got.PublishedAt != "2026-02-12T15:04:05Z" {
					t.Errorf("PublishedAt = %q, want RFC 3339", got.PublishedAt)
				}
				if got.PublishedOn != "Feb 12, 2026" {
					t.Errorf("PublishedOn = %q, want %q", got.PublishedOn, "Feb 12, 2026")
				}
				if got.UpdatedAt != "" {
					t.Errorf("UpdatedAt = %q, want empty for zero time", got.UpdatedAt)
				}
				if string(got.Body) != `[{"_type":"block"}]` {
					t.Errorf("Body = %s", got.Body)
				}
				if got.Author == nil || got.Author.Name != "Ayu" || got.Author.Image != nil {
					t.Errorf("Author = %+v", got.Author)
				}
				if len(got.Categories) != 1 || got.Categories[0].Slug != "bali" {
					t.Errorf("Categories = %+v", got.Categories)
				}
			},
		},
		{
			name: "listing form drops body",
			post: validPost(),
			verify: func(t *testing.T, got dto.BlogPostResponse) {
				t.Helper()
				if got.Body != nil {
					t.Errorf("Body = %s, want nil", got.Body)
				}
			},
		},
		{
			name: "missing author and tags",
			post: func() content.BlogPost {
				p := validPost()
				p.Author = nil
				p.Tags = nil
				return p
			}(),
			verify: func(t *testing.T, got dto.BlogPostResponse) {
				t.Helper()
				if got.Author != nil {
					t.Errorf("Author = %+v, want nil", got.Author)
				}
				if got.Tags == nil {
					t.Error("Tags = nil, want empty slice")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.verify(t, dto.ToBlogPostResponse(&tt.post, tt.withBody))
		})
	}
}

func TestToImageResponse_Zero(t *testing.T) {
	t.Parallel()
	if got := dto.ToImageResponse(content.Image{}); got != nil {
		t.Errorf("ToImageResponse(zero) = %+v, want nil", got)
	}
}

func TestToGalleryItemResponse_SkipsEmptyImages(t *testing.T) {
	t.Parallel()
	item := content.GalleryItem{
		Slug:   "komodo",
		Images: []content.Image{{URL: "https://cdn.example/1.jpg"}, {}, {URL: "https://cdn.example/2.jpg"}},
	}
	got := dto.ToGalleryItemResponse(&item)
	if len(got.Images) != 2 {
		t.Errorf("len(Images) = %d, want 2", len(got.Images))
	}
	if got.CoverImage != nil {
		t.Errorf("CoverImage = %+v, want nil", got.CoverImage)
	}
}

func TestToListingResponse(t *testing.T) {
	t.Parallel()

	l := ports.Listing[content.BlogPost]{
		Items: []content.BlogPost{validPost()},
		Page:  listing.ListingPage{CurrentPage: 2, TotalPages: 3, TotalCount: 13, HasNext: true, HasPrev: true},
		Nav: listing.Navigation{
			Links: []listing.Link{
				{Page: 1, Href: "/blog"},
				{Gap: true},
				{Page: 2, Href: "/blog?page=2", Current: true},
			},
			PrevHref: "/blog",
			NextHref: "/blog?page=3",
		},
		Summary: "Showing 7-12 of 13 posts",
		Filter:  listing.FilterState{Tag: "beach", Page: 2},
		JSONLD:  seo.JSONLD{"@type": "Blog"},
	}

	got := dto.ToListingResponse(l, func(p *content.BlogPost) dto.BlogPostResponse {
		return dto.ToBlogPostResponse(p, false)
	})

	if len(got.Items) != 1 || got.Items[0].Body != nil {
		t.Errorf("Items = %+v", got.Items)
	}
	if got.Pagination.CurrentPage != 2 || got.Pagination.NextHref != "/blog?page=3" {
		t.Errorf("Pagination = %+v", got.Pagination)
	}
	if len(got.Pagination.Links) != 3 || !got.Pagination.Links[1].Gap || !got.Pagination.Links[2].Current {
		t.Errorf("Links = %+v", got.Pagination.Links)
	}
	if got.Filter.Tag != "beach" || got.Summary != l.Summary {
		t.Errorf("Filter = %+v, Summary = %q", got.Filter, got.Summary)
	}
}

func TestToDetailResponse_NilJSONLDEncodesAsArray(t *testing.T) {
	t.Parallel()

	d := &ports.Detail[content.ServicePackage]{Item: content.ServicePackage{Slug: "bali-7d"}}
	got := dto.ToDetailResponse(d, dto.ToPackageResponse)

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if _, ok := m["json_ld"].([]any); !ok {
		t.Errorf("json_ld = %v, want array", m["json_ld"])
	}
	if _, ok := m["related"]; ok {
		t.Error("related should be omitted when empty")
	}
	item, _ := m["item"].(map[string]any)
	if item["highlights"] == nil {
		t.Error("highlights should encode as [] not null")
	}
}

func TestToSiteResponse(t *testing.T) {
	t.Parallel()

	s := content.SiteSettings{Title: "Wander", ContactEmail: "hi@example.travel"}
	got := dto.ToSiteResponse(&s, seo.JSONLD{"@type": "TravelAgency"})

	if got.Title != "Wander" || got.Organization["@type"] != "TravelAgency" {
		t.Errorf("got %+v", got)
	}
	if got.SocialLinks == nil || got.Logo != nil {
		t.Errorf("SocialLinks = %v, Logo = %v", got.SocialLinks, got.Logo)
	}
}

func TestNewListResponse(t *testing.T) {
	t.Parallel()

	empty := dto.NewListResponse[dto.UserResponse](nil)
	if empty.Items == nil || empty.Count != 0 {
		t.Errorf("NewListResponse(nil) = %+v", empty)
	}

	full := dto.NewListResponse(dto.ToUserResponses([]dashboard.UserRow{
		{ID: "u1", Status: dashboard.StatusActive},
		{ID: "u2"},
	}))
	if full.Count != 2 || full.Items[0].Status != dashboard.StatusActive.String() {
		t.Errorf("NewListResponse() = %+v", full)
	}
}

func TestToOverviewResponse(t *testing.T) {
	t.Parallel()

	o := dashboard.Overview{
		TotalUsers:   3,
		AverageScore: "70.0",
		RecentActivity: []dashboard.NotificationRow{
			{ID: "u1", Kind: dashboard.KindSignup, Message: "Ayu signed up", Ago: "2h ago", At: testTime},
		},
	}
	got := dto.ToOverviewResponse(&o)

	if got.TotalUsers != 3 || got.AverageScore != "70.0" {
		t.Errorf("got %+v", got)
	}
	if len(got.RecentActivity) != 1 {
		t.Fatalf("len(RecentActivity) = %d, want 1", len(got.RecentActivity))
	}
	if a := got.RecentActivity[0]; a.Kind != "signup" || a.At != "2026-02-12T15:04:05Z" {
		t.Errorf("activity = %+v", a)
	}
}

func TestToPresenceResponse(t *testing.T) {
	t.Parallel()

	if got := dto.ToPresenceResponse(dashboard.PresenceUpdate{Count: 4, At: testTime}); got.Count != 4 || got.At != "2026-02-12T15:04:05Z" {
		t.Errorf("ToPresenceResponse() = %+v", got)
	}
	if got := dto.ToPresenceResponse(dashboard.PresenceUpdate{}); got.At != "" {
		t.Errorf("zero At = %q, want empty", got.At)
	}
}
