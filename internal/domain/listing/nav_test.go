package listing_test

import (
	"net/url"
	"testing"

	"github.com/jsamuelsen11/sitekit/internal/domain/listing"
)

func TestNav_LinksPreserveFilters(t *testing.T) {
	t.Parallel()

	params := url.Values{"category": {"cultural"}, "page": {"2"}}
	page := listing.NewListingPage(2, 90, 9)

	nav := listing.Nav("/blog", params, page, 5)

	if nav.PrevHref != "/blog?category=cultural" {
		t.Errorf("PrevHref = %q, want %q", nav.PrevHref, "/blog?category=cultural")
	}
	if nav.NextHref != "/blog?category=cultural&page=3" {
		t.Errorf("NextHref = %q, want %q", nav.NextHref, "/blog?category=cultural&page=3")
	}

	// 1 2 3 4 5 … 10
	if len(nav.Links) != 7 {
		t.Fatalf("len(Links) = %d, want 7: %+v", len(nav.Links), nav.Links)
	}
	if !nav.Links[1].Current || nav.Links[1].Page != 2 {
		t.Errorf("Links[1] = %+v, want current page 2", nav.Links[1])
	}
	if !nav.Links[5].Gap || nav.Links[5].Href != "" {
		t.Errorf("Links[5] = %+v, want gap", nav.Links[5])
	}
	if nav.Links[6].Href != "/blog?category=cultural&page=10" {
		t.Errorf("Links[6].Href = %q", nav.Links[6].Href)
	}
}

func TestNav_SinglePageHasNoPrevNext(t *testing.T) {
	t.Parallel()

	nav := listing.Nav("/gallery", nil, listing.NewListingPage(1, 3, 12), 5)
	if nav.PrevHref != "" || nav.NextHref != "" {
		t.Errorf("Prev/Next = %q/%q, want empty", nav.PrevHref, nav.NextHref)
	}
	if len(nav.Links) != 1 || nav.Links[0].Href != "/gallery" {
		t.Errorf("Links = %+v, want single link to /gallery", nav.Links)
	}
}

func TestNav_PastTheEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     listing.ListingPage
		wantPrev string
	}{
		{"beyond last page", listing.NewListingPage(9, 42, 9), "/blog?page=5"},
		{"one past last page", listing.NewListingPage(6, 42, 9), "/blog?page=5"},
		{"empty listing", listing.NewListingPage(4, 0, 9), "/blog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nav := listing.Nav("/blog", nil, tt.page, 5)
			if nav.PrevHref != tt.wantPrev {
				t.Errorf("PrevHref = %q, want %q", nav.PrevHref, tt.wantPrev)
			}
			if nav.NextHref != "" {
				t.Errorf("NextHref = %q, want empty", nav.NextHref)
			}
		})
	}
}
