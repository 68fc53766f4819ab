// Package seo builds the machine-readable artifacts search engines consume:
// schema.org JSON-LD documents, the XML sitemap, and robots.txt.
package seo

import "strings"

// Site is the public identity of the site, used as the publisher of every
// JSON-LD document and as the origin of absolute URLs.
type Site struct {
	BaseURL     string
	Name        string
	Description string
	LogoURL     string
	Email       string
	Phone       string
	SameAs      []string
}

// URL joins path onto the site's base URL.
func (s Site) URL(path string) string {
	base := strings.TrimRight(s.BaseURL, "/")
	if path == "" || path == "/" {
		return base + "/"
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
