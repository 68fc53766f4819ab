package listing

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names understood by listing pages.
const (
	ParamSearch   = "search"
	ParamCategory = "category"
	ParamTag      = "tag"
	ParamPage     = "page"
)

// FilterState is the filter portion of a listing URL. A zero Page means the
// parameter is absent, which is equivalent to page 1.
type FilterState struct {
	Search   string
	Category string
	Tag      string
	Page     int
}

// ParseFilterState reads a FilterState from query parameters. Blank values and
// a page that is not a positive integer are treated as absent.
func ParseFilterState(params url.Values) FilterState {
	return FilterState{
		Search:   strings.TrimSpace(params.Get(ParamSearch)),
		Category: strings.TrimSpace(params.Get(ParamCategory)),
		Tag:      strings.TrimSpace(params.Get(ParamTag)),
		Page:     parsePage(params.Get(ParamPage)),
	}
}

// CurrentPage returns the effective 1-based page.
func (f FilterState) CurrentPage() int {
	return max(f.Page, 1)
}

// WithSearch starts a new search. Category, tag and page are dropped.
func (f FilterState) WithSearch(search string) FilterState {
	return FilterState{Search: strings.TrimSpace(search)}
}

// WithCategory narrows by category and returns to the first page.
func (f FilterState) WithCategory(category string) FilterState {
	f.Category = strings.TrimSpace(category)
	f.Page = 0
	return f
}

// WithTag narrows by tag and returns to the first page.
func (f FilterState) WithTag(tag string) FilterState {
	f.Tag = strings.TrimSpace(tag)
	f.Page = 0
	return f
}

// WithPage moves to page. Page 1 and below clear the parameter.
func (f FilterState) WithPage(page int) FilterState {
	if page <= 1 {
		page = 0
	}
	f.Page = page
	return f
}

// Values encodes the state back into query parameters, omitting empty fields.
func (f FilterState) Values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set(ParamSearch, f.Search)
	}
	if f.Category != "" {
		v.Set(ParamCategory, f.Category)
	}
	if f.Tag != "" {
		v.Set(ParamTag, f.Tag)
	}
	if f.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(f.Page))
	}
	return v
}

// PageQuery builds the query string (without the leading "?") that navigates
// to target while keeping every other parameter in params. The page parameter
// is omitted for target 1 and appended last otherwise. Parameters other than
// page keep their values and are encoded in key order.
func PageQuery(params url.Values, target int) string {
	rest := url.Values{}
	for key, vals := range params {
		if key == ParamPage {
			continue
		}
		rest[key] = vals
	}

	q := rest.Encode()
	if target <= 1 {
		return q
	}

	pageParam := ParamPage + "=" + strconv.Itoa(target)
	if q == "" {
		return pageParam
	}
	return q + "&" + pageParam
}

// SearchQuery builds the query string for a new search. Every filter and the
// page are dropped; unrelated parameters are kept.
func SearchQuery(params url.Values, search string) string {
	rest := url.Values{}
	for key, vals := range params {
		switch key {
		case ParamSearch, ParamCategory, ParamTag, ParamPage:
			continue
		}
		rest[key] = vals
	}
	if s := strings.TrimSpace(search); s != "" {
		rest.Set(ParamSearch, s)
	}
	return rest.Encode()
}

// Href joins path and the query for target, adding "?" only when the query is
// non-empty.
func Href(path string, params url.Values, target int) string {
	q := PageQuery(params, target)
	if q == "" {
		return path
	}
	return path + "?" + q
}

func parsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return 0
	}
	return n
}
