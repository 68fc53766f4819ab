package listing

import "net/url"

// Link is one entry of a rendered pagination bar. Gap entries carry no page
// and no href.
type Link struct {
	Page    int
	Href    string
	Current bool
	Gap     bool
}

// Navigation is the complete pagination bar for a listing.
type Navigation struct {
	Links    []Link
	PrevHref string
	NextHref string
}

// Nav builds the pagination bar for page, linking every entry of the page
// window back to path while preserving the other parameters in params.
func Nav(path string, params url.Values, page ListingPage, maxVisible int) Navigation {
	window := Window(page.CurrentPage, page.TotalPages, maxVisible)

	nav := Navigation{Links: make([]Link, 0, len(window))}
	for _, p := range window {
		if p == Gap {
			nav.Links = append(nav.Links, Link{Gap: true})
			continue
		}
		nav.Links = append(nav.Links, Link{
			Page:    p,
			Href:    Href(path, params, p),
			Current: p == page.CurrentPage,
		})
	}

	// Past the end, "previous" jumps back to the last page that has items.
	if page.HasPrev {
		nav.PrevHref = Href(path, params, min(page.CurrentPage-1, max(page.TotalPages, 1)))
	}
	if page.HasNext {
		nav.NextHref = Href(path, params, page.CurrentPage+1)
	}
	return nav
}
