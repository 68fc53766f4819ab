// Package listing implements the pagination primitives shared by every
// paginated listing: page arithmetic, the visible page window, filter state
// carried in query parameters, and the derived "Showing x-y of z" summary.
package listing

// ListingPage describes where a listing currently is. HasNext and HasPrev are
// always derived from CurrentPage and TotalPages, never set independently.
type ListingPage struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
	HasNext     bool
	HasPrev     bool
}

// NewListingPage computes the page state for the requested page of a result
// set with totalCount items split into pages of pageSize. A requested page
// below 1 is treated as page 1; a non-positive pageSize yields zero pages.
func NewListingPage(requested, totalCount, pageSize int) ListingPage {
	current := max(requested, 1)
	totalCount = max(totalCount, 0)

	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}

	return ListingPage{
		CurrentPage: current,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNext:     current < totalPages,
		HasPrev:     current > 1,
	}
}

// Offset returns the zero-based index of the first item on the current page.
func (p ListingPage) Offset(pageSize int) int {
	return (p.CurrentPage - 1) * pageSize
}

// Range returns the zero-based, half-open [start, end) item slice for the
// requested page, suitable for a CMS slice expression.
func Range(page, pageSize int) (start, end int) {
	page = max(page, 1)
	start = (page - 1) * pageSize
	return start, start + pageSize
}
