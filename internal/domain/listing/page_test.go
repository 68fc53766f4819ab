package listing_test

import (
	"testing"

	"github.com/jsamuelsen11/sitekit/internal/domain/listing"
)

func TestNewListingPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                            string
		requested, totalCount, pageSize int
		wantCurrent, wantTotal          int
		wantNext, wantPrev              bool
	}{
		{"first of many", 1, 42, 9, 1, 5, true, false},
		{"middle", 3, 42, 9, 3, 5, true, true},
		{"last", 5, 42, 9, 5, 5, false, true},
		{"exact multiple", 2, 18, 9, 2, 2, false, true},
		{"empty", 1, 0, 9, 1, 0, false, false},
		{"requested below one", -3, 10, 5, 1, 2, true, false},
		{"beyond last page", 9, 10, 5, 9, 2, false, true},
		{"zero page size", 1, 10, 0, 1, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := listing.NewListingPage(tt.requested, tt.totalCount, tt.pageSize)
			if p.CurrentPage != tt.wantCurrent {
				t.Errorf("CurrentPage = %d, want %d", p.CurrentPage, tt.wantCurrent)
			}
			if p.TotalPages != tt.wantTotal {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantTotal)
			}
			if p.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.wantNext)
			}
			if p.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.wantPrev)
			}
			if p.HasNext != (p.CurrentPage < p.TotalPages) {
				t.Error("HasNext must equal CurrentPage < TotalPages")
			}
		})
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	if start, end := listing.Range(1, 9); start != 0 || end != 9 {
		t.Errorf("Range(1, 9) = (%d, %d), want (0, 9)", start, end)
	}
	if start, end := listing.Range(3, 9); start != 18 || end != 27 {
		t.Errorf("Range(3, 9) = (%d, %d), want (18, 27)", start, end)
	}
	if start, _ := listing.Range(0, 9); start != 0 {
		t.Errorf("Range(0, 9) start = %d, want 0", start)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page listing.ListingPage
		want string
	}{
		{"first page", listing.NewListingPage(1, 42, 9), "Showing 1-9 of 42 posts"},
		{"partial last page", listing.NewListingPage(5, 42, 9), "Showing 37-42 of 42 posts"},
		{"single item", listing.NewListingPage(1, 1, 9), "Showing 1 of 1 post"},
		{"lone item on last page", listing.NewListingPage(2, 10, 9), "Showing 10 of 10 posts"},
		{"empty", listing.NewListingPage(1, 0, 9), "No posts found"},
		{"beyond last page", listing.NewListingPage(8, 10, 9), "No posts found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := listing.Summary(tt.page, 9, "post", "posts"); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}
