// Package acl implements the Anti-Corruption Layer that translates between
// downstream API representations and domain types. The CMS and document
// store translators live in subpackages (acl/cms, acl/store); the shared
// request lifecycle and error mapping live here.
package acl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/sitekit/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// errorEnvelope matches the error bodies of both downstreams. The CMS sends
// {"error":{"description":"..."}} and the document store sends
// {"error":{"message":"...","status":"NOT_FOUND"}}, sometimes wrapped in a
// one-element array.
type errorEnvelope struct {
	Error struct {
		Description string `json:"description"`
		Message     string `json:"message"`
		Status      string `json:"status"`
	} `json:"error"`
	Message string `json:"message"`
}

// TranslateHTTPError maps an HTTP error response to a domain error, using
// the downstream's error description for context when one can be parsed.
func TranslateHTTPError(resp *http.Response) error {
	detail := parseErrorDetail(resp)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)

	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)

	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)

	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseErrorDetail reads a JSON error body and returns its most specific
// message, or "" when the body is absent or not understood.
func parseErrorDetail(resp *http.Response) string {
	if resp.Body == nil {
		return ""
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "json") {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return ""
	}
	body = bytes.TrimSpace(body)

	var env errorEnvelope
	if bytes.HasPrefix(body, []byte("[")) {
		var list []errorEnvelope
		if err := json.Unmarshal(body, &list); err != nil || len(list) == 0 {
			return ""
		}
		env = list[0]
	} else if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}

	for _, s := range []string{env.Error.Description, env.Error.Message, env.Message} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}
