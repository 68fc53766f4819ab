package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/domain/content"
)

var testSite = Site{
	BaseURL: "https://example.travel/",
	Name:    "Example Travel",
	LogoURL: "https://cdn.example.travel/logo.png",
	Phone:   "+62 361 000 000",
	SameAs:  []string{"https://instagram.com/example"},
}

func TestSite_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "", want: "https://example.travel/"},
		{path: "/", want: "https://example.travel/"},
		{path: "/blog", want: "https://example.travel/blog"},
		{path: "blog/bali", want: "https://example.travel/blog/bali"},
		{path: "https://cdn.example.travel/a.jpg", want: "https://cdn.example.travel/a.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := testSite.URL(tt.path); got != tt.want {
				t.Errorf("URL(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestBlogPosting(t *testing.T) {
	t.Parallel()

	post := content.BlogPost{
		Title:       "Ten Days in Bali",
		Slug:        "ten-days-in-bali",
		Excerpt:     "Temples, rice terraces and beaches.",
		MainImage:   content.Image{URL: "https://cdn.example.travel/bali.jpg"},
		Author:      &content.Author{Name: "Ayu"},
		Categories:  []content.Category{{Title: "Itineraries"}},
		PublishedAt: time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC),
	}

	doc := BlogPosting(testSite, post)

	checks := map[string]any{
		"@context":       "https://schema.org",
		"@type":          "BlogPosting",
		"headline":       "Ten Days in Bali",
		"url":            "https://example.travel/blog/ten-days-in-bali",
		"datePublished":  "2025-05-01T09:00:00Z",
		"dateModified":   "2025-05-01T09:00:00Z",
		"articleSection": "Itineraries",
	}
	for key, want := range checks {
		if doc[key] != want {
			t.Errorf("doc[%q] = %v, want %v", key, doc[key], want)
		}
	}

	author, ok := doc["author"].(JSONLD)
	if !ok || author["@type"] != "Person" || author["name"] != "Ayu" {
		t.Errorf("author = %v, want Person Ayu", doc["author"])
	}

	if _, err := json.Marshal(doc); err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
}

func TestBlogPosting_NoAuthorUsesOrganization(t *testing.T) {
	t.Parallel()

	doc := BlogPosting(testSite, content.BlogPost{Title: "x", Slug: "x"})

	author, ok := doc["author"].(JSONLD)
	if !ok || author["@type"] != "Organization" || author["name"] != "Example Travel" {
		t.Errorf("author = %v, want the site organization", doc["author"])
	}
	if _, present := doc["datePublished"]; present {
		t.Error("datePublished should be omitted for an undated post")
	}
}

func TestOrganization(t *testing.T) {
	t.Parallel()

	doc := Organization(testSite)

	if doc["@type"] != "TravelAgency" {
		t.Errorf("@type = %v, want TravelAgency", doc["@type"])
	}
	if doc["telephone"] != "+62 361 000 000" {
		t.Errorf("telephone = %v", doc["telephone"])
	}
	if _, present := doc["email"]; present {
		t.Error("email should be omitted when empty")
	}
}

func TestBreadcrumbList(t *testing.T) {
	t.Parallel()

	doc := BreadcrumbList(testSite,
		Crumb{Name: "Home", Path: "/"},
		Crumb{Name: "Blog", Path: "/blog"},
	)

	items, ok := doc["itemListElement"].([]JSONLD)
	if !ok || len(items) != 2 {
		t.Fatalf("itemListElement = %v, want 2 items", doc["itemListElement"])
	}
	if items[1]["position"] != 2 || items[1]["item"] != "https://example.travel/blog" {
		t.Errorf("items[1] = %v", items[1])
	}
}

func TestMarshalSitemap(t *testing.T) {
	t.Parallel()

	lastMod := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Path: "/", LastMod: lastMod, ChangeFreq: ChangeWeekly, Priority: 1},
		{Path: "/blog/bali", LastMod: lastMod},
		{Path: "/blog/bali"},
		{Path: "/admin"},
		{Path: "/admin/users"},
		{Path: "/api/contact"},
		{Path: "/apiary"},
	}

	body, err := MarshalSitemap(testSite, entries)
	if err != nil {
		t.Fatalf("MarshalSitemap() error = %v", err)
	}
	xml := string(body)

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`,
		"<loc>https://example.travel/</loc>",
		"<lastmod>2025-06-01T00:00:00Z</lastmod>",
		"<priority>1.0</priority>",
		"<loc>https://example.travel/apiary</loc>",
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("sitemap missing %q:\n%s", want, xml)
		}
	}
	for _, banned := range []string{"/admin", "/api/"} {
		if strings.Contains(xml, banned) {
			t.Errorf("sitemap contains excluded path %q", banned)
		}
	}
	if n := strings.Count(xml, "<loc>https://example.travel/blog/bali</loc>"); n != 1 {
		t.Errorf("blog/bali listed %d times, want 1", n)
	}
}

func TestRobots(t *testing.T) {
	t.Parallel()

	want := "User-agent: *\nAllow: /\nDisallow: /admin\nDisallow: /api\n\nSitemap: https://example.travel/sitemap.xml\n"
	if got := Robots(testSite); got != want {
		t.Errorf("Robots() =\n%s\nwant\n%s", got, want)
	}
}
