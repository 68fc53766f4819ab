package seo

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

// sitemapNamespace is the sitemaps.org protocol namespace.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Change frequencies accepted by the sitemap protocol.
const (
	ChangeDaily   = "daily"
	ChangeWeekly  = "weekly"
	ChangeMonthly = "monthly"
)

// ExcludedPrefixes are never listed in the sitemap and are disallowed in
// robots.txt.
var ExcludedPrefixes = []string{"/admin", "/api"}

// Entry is one URL in the sitemap. Path is site-relative.
type Entry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// StaticEntries lists the fixed pages of the site.
func StaticEntries(now time.Time) []Entry {
	return []Entry{
		{Path: "/", LastMod: now, ChangeFreq: ChangeWeekly, Priority: 1.0},
		{Path: "/about", LastMod: now, ChangeFreq: ChangeMonthly, Priority: 0.8},
		{Path: "/packages", LastMod: now, ChangeFreq: ChangeWeekly, Priority: 0.9},
		{Path: "/gallery", LastMod: now, ChangeFreq: ChangeWeekly, Priority: 0.7},
		{Path: "/blog", LastMod: now, ChangeFreq: ChangeDaily, Priority: 0.8},
		{Path: "/contact", LastMod: now, ChangeFreq: ChangeMonthly, Priority: 0.6},
	}
}

// Excluded reports whether path falls under one of ExcludedPrefixes.
func Excluded(path string) bool {
	for _, prefix := range ExcludedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// MarshalSitemap renders entries as sitemap XML, dropping excluded paths and
// duplicate locations.
func MarshalSitemap(site Site, entries []Entry) ([]byte, error) {
	set := xmlURLSet{XMLNS: sitemapNamespace, URLs: make([]xmlURL, 0, len(entries))}
	seen := make(map[string]struct{}, len(entries))

	for _, e := range entries {
		if Excluded(e.Path) {
			continue
		}
		loc := site.URL(e.Path)
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}

		u := xmlURL{Loc: loc, ChangeFreq: e.ChangeFreq}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format(time.RFC3339)
		}
		if e.Priority > 0 {
			u.Priority = fmt.Sprintf("%.1f", e.Priority)
		}
		set.URLs = append(set.URLs, u)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots renders robots.txt allowing everything except the excluded prefixes
// and pointing crawlers at the sitemap.
func Robots(site Site) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	for _, prefix := range ExcludedPrefixes {
		b.WriteString("Disallow: " + prefix + "\n")
	}
	b.WriteString("\nSitemap: " + site.URL("/sitemap.xml") + "\n")
	return b.String()
}
