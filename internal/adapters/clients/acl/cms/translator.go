package cms

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/domain/content"
	"github.com/jsamuelsen11/sitekit/internal/domain/timefmt"
)

// Fallbacks for required fields the CMS left empty.
const (
	UntitledTitle   = "Untitled"
	DefaultCurrency = "USD"
	StatusNew       = "new"
)

// ToImage converts a projected image. A nil or asset-less image becomes the
// zero Image.
func ToImage(dto *ImageDTO) content.Image {
	if dto == nil || strings.TrimSpace(dto.URL) == "" {
		return content.Image{}
	}
	return content.Image{
		URL:    dto.URL,
		Alt:    strings.TrimSpace(dto.Alt),
		Width:  dto.Width,
		Height: dto.Height,
	}
}

// ToCategory converts a projected category.
func ToCategory(dto CategoryDTO) content.Category {
	return content.Category{
		Title:       orDefault(dto.Title, dto.Slug),
		Slug:        dto.Slug,
		Description: dto.Description,
	}
}

// ToCategories converts categories, dropping entries without a slug. The
// result is never nil.
func ToCategories(dtos []CategoryDTO) []content.Category {
	out := make([]content.Category, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Slug == "" {
			continue
		}
		out = append(out, ToCategory(dto))
	}
	return out
}

// ToBlogPost converts a projected post. Title falls back to "Untitled",
// PublishedAt to the creation time, and an author without a name is
// dropped.
func ToBlogPost(dto *BlogPostDTO) content.BlogPost {
	created := parseTime(dto.CreatedAt)
	published := parseTime(dto.PublishedAt)
	if published.IsZero() {
		published = created
	}
	updated := parseTime(dto.UpdatedAt)
	if updated.IsZero() {
		updated = published
	}

	return content.BlogPost{
		ID:             dto.ID,
		Title:          orDefault(dto.Title, UntitledTitle),
		Slug:           dto.Slug,
		Excerpt:        strings.TrimSpace(dto.Excerpt),
		Body:           dto.Body,
		MainImage:      ToImage(dto.MainImage),
		Author:         toAuthor(dto.Author),
		Categories:     ToCategories(dto.Categories),
		Tags:           compact(dto.Tags),
		ReadingMinutes: content.ReadingMinutes(dto.PlainText),
		PublishedAt:    published,
		UpdatedAt:      updated,
	}
}

// ToBlogPosts converts a slice of posts. The result is never nil.
func ToBlogPosts(dtos []BlogPostDTO) []content.BlogPost {
	out := make([]content.BlogPost, len(dtos))
	for i := range dtos {
		out[i] = ToBlogPost(&dtos[i])
	}
	return out
}

// ToBlogPage converts the paginated post query result.
func ToBlogPage(dto BlogPageDTO) content.Page[content.BlogPost] {
	return content.Page[content.BlogPost]{Items: ToBlogPosts(dto.Items), Total: max(dto.Total, 0)}
}

// ToGalleryItem converts a projected gallery entry. Images without an asset
// are dropped and a missing cover falls back to the first image.
func ToGalleryItem(dto *GalleryItemDTO) content.GalleryItem {
	images := make([]content.Image, 0, len(dto.Images))
	for i := range dto.Images {
		if img := ToImage(&dto.Images[i]); !img.IsZero() {
			images = append(images, img)
		}
	}

	cover := ToImage(dto.CoverImage)
	if cover.IsZero() && len(images) > 0 {
		cover = images[0]
	}

	published := parseTime(dto.PublishedAt)
	if published.IsZero() {
		published = parseTime(dto.CreatedAt)
	}

	return content.GalleryItem{
		ID:          dto.ID,
		Title:       orDefault(dto.Title, UntitledTitle),
		Slug:        dto.Slug,
		Description: strings.TrimSpace(dto.Description),
		Location:    strings.TrimSpace(dto.Location),
		Category:    dto.Category,
		CoverImage:  cover,
		Images:      images,
		PublishedAt: published,
		UpdatedAt:   parseTime(dto.UpdatedAt),
	}
}

// ToGalleryPage converts the paginated gallery query result.
func ToGalleryPage(dto GalleryPageDTO) content.Page[content.GalleryItem] {
	items := make([]content.GalleryItem, len(dto.Items))
	for i := range dto.Items {
		items[i] = ToGalleryItem(&dto.Items[i])
	}
	return content.Page[content.GalleryItem]{Items: items, Total: max(dto.Total, 0)}
}

// ToServicePackage converts a projected package. Currency defaults to USD
// and a missing price becomes zero.
func ToServicePackage(dto *ServicePackageDTO) content.ServicePackage {
	var price float64
	if dto.PriceFrom != nil && *dto.PriceFrom > 0 {
		price = *dto.PriceFrom
	}

	return content.ServicePackage{
		ID:           dto.ID,
		Title:        orDefault(dto.Title, UntitledTitle),
		Slug:         dto.Slug,
		Summary:      strings.TrimSpace(dto.Summary),
		Category:     dto.Category,
		Destination:  strings.TrimSpace(dto.Destination),
		DurationDays: max(dto.DurationDays, 0),
		PriceFrom:    price,
		Currency:     strings.ToUpper(orDefault(dto.Currency, DefaultCurrency)),
		Highlights:   compact(dto.Highlights),
		Inclusions:   compact(dto.Inclusions),
		Image:        ToImage(dto.Image),
		Featured:     dto.Featured,
		UpdatedAt:    parseTime(dto.UpdatedAt),
	}
}

// ToServicePackages converts a slice of packages. The result is never nil.
func ToServicePackages(dtos []ServicePackageDTO) []content.ServicePackage {
	out := make([]content.ServicePackage, len(dtos))
	for i := range dtos {
		out[i] = ToServicePackage(&dtos[i])
	}
	return out
}

// ToSiteSettings converts the settings singleton. Social links without a URL
// are dropped.
func ToSiteSettings(dto *SiteSettingsDTO) content.SiteSettings {
	links := make([]string, 0, len(dto.SocialLinks))
	for _, l := range dto.SocialLinks {
		if u := strings.TrimSpace(l.URL); u != "" {
			links = append(links, u)
		}
	}

	return content.SiteSettings{
		Title:        strings.TrimSpace(dto.Title),
		Description:  strings.TrimSpace(dto.Description),
		Logo:         ToImage(dto.Logo),
		ContactEmail: strings.TrimSpace(dto.ContactEmail),
		ContactPhone: strings.TrimSpace(dto.ContactPhone),
		Address:      strings.TrimSpace(dto.Address),
		SocialLinks:  links,
	}
}

// ToRoutes converts sitemap routes, dropping any without a slug.
func ToRoutes(dtos []RouteDTO) []content.Route {
	out := make([]content.Route, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Slug == "" {
			continue
		}
		out = append(out, content.Route{
			Type:      dto.Type,
			Slug:      dto.Slug,
			UpdatedAt: parseTime(dto.UpdatedAt),
		})
	}
	return out
}

// ToCreateMutation wraps a submission in a create mutation. The submission
// must already carry its document ID.
func ToCreateMutation(sub *content.ContactSubmission) MutateRequestDTO {
	submitted := sub.SubmittedAt
	if submitted.IsZero() {
		submitted = time.Now()
	}

	return MutateRequestDTO{Mutations: []MutationDTO{{
		Create: &ContactSubmissionDTO{
			ID:          sub.ID,
			Type:        content.TypeContactSubmission,
			Name:        sub.Name,
			Email:       sub.Email,
			Subject:     sub.Subject,
			Message:     sub.Message,
			Phone:       sub.Phone,
			Destination: sub.Destination,
			TravelDate:  sub.TravelDate,
			Travelers:   sub.Travelers,
			Budget:      sub.Budget,
			PackageSlug: sub.PackageSlug,
			Status:      StatusNew,
			SubmittedAt: submitted.UTC().Format(time.RFC3339),
		},
	}}}
}

func toAuthor(dto *AuthorDTO) *content.Author {
	if dto == nil || strings.TrimSpace(dto.Name) == "" {
		return nil
	}
	return &content.Author{
		Name:  strings.TrimSpace(dto.Name),
		Slug:  dto.Slug,
		Bio:   strings.TrimSpace(dto.Bio),
		Image: ToImage(dto.Image),
	}
}

// parseTime returns the zero time for absent or malformed values.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := timefmt.Parse(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return fallback
}

// compact trims entries and drops blanks. The result is never nil.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
