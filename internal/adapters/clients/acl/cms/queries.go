package cms

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Projection fragments shared by the queries below.
const (
	imageProjection = `{"url": asset->url, alt, "width": asset->metadata.dimensions.width, "height": asset->metadata.dimensions.height}`

	postProjection = `{
  _id, title, "slug": slug.current, excerpt, publishedAt, _createdAt, _updatedAt, tags,
  "plainText": pt::text(body),
  "mainImage": mainImage` + imageProjection + `,
  "author": author->{name, "slug": slug.current, bio, "image": image` + imageProjection + `},
  "categories": categories[]->{title, "slug": slug.current, description}
}`

	postDetailProjection = `{
  _id, title, "slug": slug.current, excerpt, body, publishedAt, _createdAt, _updatedAt, tags,
  "plainText": pt::text(body),
  "mainImage": mainImage` + imageProjection + `,
  "author": author->{name, "slug": slug.current, bio, "image": image` + imageProjection + `},
  "categories": categories[]->{title, "slug": slug.current, description}
}`

	galleryProjection = `{
  _id, title, "slug": slug.current, description, location, publishedAt, _createdAt, _updatedAt,
  "category": category->slug.current,
  "coverImage": coverImage` + imageProjection + `,
  "images": images[]` + imageProjection + `
}`

	packageProjection = `{
  _id, title, "slug": slug.current, summary, destination, durationDays, priceFrom, currency,
  highlights, inclusions, featured, _updatedAt,
  "category": category->slug.current,
  "image": image` + imageProjection + `
}`
)

// publishedFilter excludes drafts and documents without a slug.
const publishedFilter = `defined(slug.current) && !(_id in path("drafts.**"))`

const blogFilter = `_type == "blogPost" && ` + publishedFilter + `
  && ($search == "" || title match $search + "*" || excerpt match $search + "*" || pt::text(body) match $search + "*")
  && ($category == "" || $category in categories[]->slug.current)
  && ($tag == "" || $tag in tags)`

const galleryFilter = `_type == "gallery" && ` + publishedFilter + `
  && ($category == "" || category->slug.current == $category)`

// GROQ queries issued by the CMS client.
const (
	BlogPageQuery = `{
  "items": *[` + blogFilter + `] | order(publishedAt desc) [$start...$end] ` + postProjection + `,
  "total": count(*[` + blogFilter + `])
}`

	BlogPostQuery = `*[_type == "blogPost" && slug.current == $slug && !(_id in path("drafts.**"))][0] ` + postDetailProjection

	RelatedPostsQuery = `*[_type == "blogPost" && ` + publishedFilter + ` && _id != $id
  && count((categories[]->slug.current)[@ in $categories]) > 0]
  | order(publishedAt desc) [0...$limit] ` + postProjection

	CategoriesQuery = `*[_type == "category" && defined(slug.current)] | order(title asc) {title, "slug": slug.current, description}`

	GalleryPageQuery = `{
  "items": *[` + galleryFilter + `] | order(publishedAt desc) [$start...$end] ` + galleryProjection + `,
  "total": count(*[` + galleryFilter + `])
}`

	GalleryItemQuery = `*[_type == "gallery" && slug.current == $slug && !(_id in path("drafts.**"))][0] ` + galleryProjection

	PackagesQuery = `*[_type == "servicePackage" && ` + publishedFilter + `
  && ($category == "" || category->slug.current == $category)]
  | order(featured desc, title asc) ` + packageProjection

	PackageQuery = `*[_type == "servicePackage" && slug.current == $slug && !(_id in path("drafts.**"))][0] ` + packageProjection

	SiteSettingsQuery = `*[_type == "siteSettings" && !(_id in path("drafts.**"))][0] {
  title, description, contactEmail, contactPhone, address, socialLinks,
  "logo": logo` + imageProjection + `
}`

	RoutesQuery = `*[_type in ["blogPost", "gallery", "servicePackage"] && ` + publishedFilter + `] {_type, "slug": slug.current, _updatedAt}`
)

// Params encodes a query and its parameters for the query API. Each
// parameter is sent as "$name" with a JSON-encoded value.
func Params(query string, params map[string]any) (url.Values, error) {
	v := url.Values{"query": {query}}
	for name, value := range params {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("encoding query parameter %s: %w", name, err)
		}
		v.Set("$"+name, string(raw))
	}
	return v, nil
}
