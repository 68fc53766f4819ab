package content

import "time"

// BlogQuery selects a page of blog posts. Empty strings mean "no filter".
type BlogQuery struct {
	Search   string
	Category string
	Tag      string
	Offset   int
	Limit    int
}

// GalleryQuery selects a page of gallery entries.
type GalleryQuery struct {
	Category string
	Offset   int
	Limit    int
}

// Route is a publicly addressable CMS document, used to build the sitemap.
type Route struct {
	Type      string
	Slug      string
	UpdatedAt time.Time
}
