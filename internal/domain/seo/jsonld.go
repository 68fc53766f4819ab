package seo

import (
	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/domain/timefmt"
)

const schemaContext = "https://schema.org"

// JSONLD is a schema.org document ready to be serialized into a
// <script type="application/ld+json"> tag.
type JSONLD map[string]any

// Crumb is one step of a breadcrumb trail. Path is site-relative.
type Crumb struct {
	Name string
	Path string
}

// BlogPostPath returns the public path of a blog post.
func BlogPostPath(slug string) string { return "/blog/" + slug }

// GalleryPath returns the public path of a gallery entry.
func GalleryPath(slug string) string { return "/gallery/" + slug }

// PackagePath returns the public path of a service package.
func PackagePath(slug string) string { return "/packages/" + slug }

// Organization describes the travel agency itself.
func Organization(site Site) JSONLD {
	doc := JSONLD{
		"@context": schemaContext,
		"@type":    "TravelAgency",
		"name":     site.Name,
		"url":      site.URL("/"),
	}
	setIf(doc, "description", site.Description)
	setIf(doc, "logo", site.LogoURL)
	setIf(doc, "email", site.Email)
	setIf(doc, "telephone", site.Phone)
	if len(site.SameAs) > 0 {
		doc["sameAs"] = site.SameAs
	}
	return doc
}

// BlogPosting describes a single article.
func BlogPosting(site Site, post content.BlogPost) JSONLD {
	url := site.URL(BlogPostPath(post.Slug))
	doc := JSONLD{
		"@context":         schemaContext,
		"@type":            "BlogPosting",
		"headline":         post.Title,
		"url":              url,
		"mainEntityOfPage": JSONLD{"@type": "WebPage", "@id": url},
		"publisher":        publisher(site),
	}
	setIf(doc, "description", post.Excerpt)
	setIf(doc, "datePublished", timefmt.ISO(post.PublishedAt))
	modified := post.UpdatedAt
	if modified.IsZero() {
		modified = post.PublishedAt
	}
	setIf(doc, "dateModified", timefmt.ISO(modified))
	if !post.MainImage.IsZero() {
		doc["image"] = []string{post.MainImage.URL}
	}
	if post.Author != nil && post.Author.Name != "" {
		doc["author"] = JSONLD{"@type": "Person", "name": post.Author.Name}
	} else {
		doc["author"] = JSONLD{"@type": "Organization", "name": site.Name}
	}
	if len(post.Tags) > 0 {
		doc["keywords"] = post.Tags
	}
	if len(post.Categories) > 0 {
		doc["articleSection"] = post.Categories[0].Title
	}
	return doc
}

// Blog describes a listing page of articles.
func Blog(site Site, posts []content.BlogPost) JSONLD {
	items := make([]JSONLD, 0, len(posts))
	for _, p := range posts {
		item := JSONLD{
			"@type":    "BlogPosting",
			"headline": p.Title,
			"url":      site.URL(BlogPostPath(p.Slug)),
		}
		setIf(item, "datePublished", timefmt.ISO(p.PublishedAt))
		items = append(items, item)
	}
	return JSONLD{
		"@context":  schemaContext,
		"@type":     "Blog",
		"name":      site.Name + " Blog",
		"url":       site.URL("/blog"),
		"publisher": publisher(site),
		"blogPost":  items,
	}
}

// BreadcrumbList describes a breadcrumb trail. Positions start at 1.
func BreadcrumbList(site Site, crumbs ...Crumb) JSONLD {
	items := make([]JSONLD, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, JSONLD{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     c.Name,
			"item":     site.URL(c.Path),
		})
	}
	return JSONLD{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

func publisher(site Site) JSONLD {
	p := JSONLD{"@type": "Organization", "name": site.Name}
	if site.LogoURL != "" {
		p["logo"] = JSONLD{"@type": "ImageObject", "url": site.LogoURL}
	}
	return p
}

func setIf(doc JSONLD, key, value string) {
	if value != "" {
		doc[key] = value
	}
}
