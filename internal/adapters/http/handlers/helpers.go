package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/sitekit/internal/adapters/http/dto"
	"github.com/jsamuelsen11/sitekit/internal/domain"
	"github.com/jsamuelsen11/sitekit/internal/domain/listing"
	"github.com/jsamuelsen11/sitekit/internal/platform/logging"
)

// slugParam is the chi URL parameter carrying a document slug.
const slugParam = "slug"

// slug extracts the document slug path parameter. An empty slug is reported
// as not found.
func slug(r *http.Request) (string, error) {
	s := chi.URLParam(r, slugParam)
	if s == "" {
		return "", domain.ErrNotFound
	}
	return s, nil
}

// filterState reads the listing filters from the query string.
func filterState(r *http.Request) listing.FilterState {
	return listing.ParseFilterState(r.URL.Query())
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeText writes a raw body with the given content type and a 200 status.
func writeText(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		logging.FromContext(r.Context()).Debug("write response failed", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (64 KB).
const maxJSONBodyBytes = 64 << 10

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes. On failure, it writes a 400 error response
// and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}
