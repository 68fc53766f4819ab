package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/sitekit/mocks"
)

func TestSitemap(t *testing.T) {
	t.Parallel()

	t.Run("renders xml", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockContentService(t)
		h := handlers.NewSEOHandler(svc)

		svc.EXPECT().Sitemap(mock.Anything).Return([]byte(`<?xml version="1.0"?><urlset></urlset>`), nil)

		rec := httptest.NewRecorder()
		h.Sitemap(rec, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

		requireStatus(t, rec, http.StatusOK)
		if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/xml") {
			t.Errorf("Content-Type = %q, want application/xml", ct)
		}
		if !strings.Contains(rec.Body.String(), "<urlset>") {
			t.Errorf("body = %q", rec.Body.String())
		}
	})

	t.Run("render failure", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewMockContentService(t)
		h := handlers.NewSEOHandler(svc)

		svc.EXPECT().Sitemap(mock.Anything).Return(nil, errors.New("xml: unsupported type"))

		rec := httptest.NewRecorder()
		h.Sitemap(rec, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil))

		requireStatus(t, rec, http.StatusInternalServerError)
	})
}

func TestRobots(t *testing.T) {
	t.Parallel()
	svc := mocks.NewMockContentService(t)
	h := handlers.NewSEOHandler(svc)

	svc.EXPECT().Robots(mock.Anything).Return("User-agent: *\nDisallow: /admin\n")

	rec := httptest.NewRecorder()
	h.Robots(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	requireStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	if !strings.Contains(rec.Body.String(), "Disallow: /admin") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
