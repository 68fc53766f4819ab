// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sitekit/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/sitekit/internal/domain"
)

// Public content tolerates a minute of staleness; everything else is private.
const (
	cachePublic  = "public, max-age=60"
	cacheNoStore = "no-store"
)

// Handlers groups the request handlers mounted by NewRouter.
type Handlers struct {
	Content  *handlers.ContentHandler
	Contact  *handlers.ContactHandler
	SEO      *handlers.SEOHandler
	Admin    *handlers.AdminHandler
	Realtime *handlers.RealtimeHandler
	Health   *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Every route except the
// realtime event stream runs under requestTimeout; zero disables it.
func NewRouter(h Handlers, requestTimeout time.Duration, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrMethodNotAllowed)
	})

	r.Group(func(r chi.Router) {
		if requestTimeout > 0 {
			r.Use(middleware.Timeout(requestTimeout))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(cacheNoStore))

			r.Get("/health/live", h.Health.Liveness)
			r.Get("/health/ready", h.Health.Readiness)

			r.Post("/api/contact", h.Contact.Submit)

			// Admin dashboard.
			r.Get("/api/admin/v1/overview", h.Admin.Overview)
			r.Get("/api/admin/v1/users", h.Admin.Users)
			r.Get("/api/admin/v1/contacts", h.Admin.Contacts)
			r.Get("/api/admin/v1/tasks", h.Admin.Tasks)
			r.Get("/api/admin/v1/notifications", h.Admin.Notifications)
			r.Get("/api/admin/v1/payments", h.Admin.Payments)
			r.Get("/api/admin/v1/resumes", h.Admin.Resumes)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(cachePublic))

			// Crawler documents.
			r.Get("/sitemap.xml", h.SEO.Sitemap)
			r.Get("/robots.txt", h.SEO.Robots)

			// Public site API.
			r.Get("/api/v1/site", h.Content.Site)
			r.Get("/api/v1/blog", h.Content.ListBlogPosts)
			r.Get("/api/v1/blog/categories", h.Content.ListCategories)
			r.Get("/api/v1/blog/{slug}", h.Content.GetBlogPost)
			r.Get("/api/v1/gallery", h.Content.ListGallery)
			r.Get("/api/v1/gallery/{slug}", h.Content.GetGalleryItem)
			r.Get("/api/v1/packages", h.Content.ListPackages)
			r.Get("/api/v1/packages/{slug}", h.Content.GetPackage)
		})
	})

	r.Get("/api/admin/v1/realtime/users", h.Realtime.Users)

	return r
}
