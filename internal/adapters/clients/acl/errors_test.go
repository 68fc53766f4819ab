package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/sitekit/internal/domain"
)

func TestTranslateHTTPError_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantErr    error
	}{
		{
			name:       "404 maps to ErrNotFound",
			statusCode: http.StatusNotFound,
			wantErr:    domain.ErrNotFound,
		},
		{
			name:       "400 maps to ErrValidation",
			statusCode: http.StatusBadRequest,
			wantErr:    domain.ErrValidation,
		},
		{
			name:       "422 maps to ErrValidation",
			statusCode: http.StatusUnprocessableEntity,
			wantErr:    domain.ErrValidation,
		},
		{
			name:       "409 maps to ErrConflict",
			statusCode: http.StatusConflict,
			wantErr:    domain.ErrConflict,
		},
		{
			name:       "401 maps to ErrForbidden",
			statusCode: http.StatusUnauthorized,
			wantErr:    domain.ErrForbidden,
		},
		{
			name:       "403 maps to ErrForbidden",
			statusCode: http.StatusForbidden,
			wantErr:    domain.ErrForbidden,
		},
		{
			name:       "429 maps to ErrUnavailable",
			statusCode: http.StatusTooManyRequests,
			wantErr:    domain.ErrUnavailable,
		},
		{
			name:       "500 maps to ErrUnavailable",
			statusCode: http.StatusInternalServerError,
			wantErr:    domain.ErrUnavailable,
		},
		{
			name:       "502 maps to ErrUnavailable",
			statusCode: http.StatusBadGateway,
			wantErr:    domain.ErrUnavailable,
		},
		{
			name:       "503 maps to ErrUnavailable",
			statusCode: http.StatusServiceUnavailable,
			wantErr:    domain.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{},
				Body:       http.NoBody,
			}

			got := TranslateHTTPError(resp)

			if !errors.Is(got, tt.wantErr) {
				t.Errorf("TranslateHTTPError() = %v, want errors.Is %v", got, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_BodyParsing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		contentType string
		body        string
		wantSubstr  string
	}{
		{
			name:        "extracts CMS error description",
			statusCode:  http.StatusBadRequest,
			contentType: "application/json; charset=utf-8",
			body:        `{"error":{"description":"expected '}' following object body","type":"queryParseError"}}`,
			wantSubstr:  "expected '}' following object body",
		},
		{
			name:        "extracts store error message",
			statusCode:  http.StatusNotFound,
			contentType: "application/json",
			body:        `{"error":{"code":404,"message":"database (default) does not exist","status":"NOT_FOUND"}}`,
			wantSubstr:  "database (default) does not exist",
		},
		{
			name:        "extracts message from array-wrapped store error",
			statusCode:  http.StatusForbidden,
			contentType: "application/json",
			body:        `[{"error":{"code":403,"message":"missing permissions","status":"PERMISSION_DENIED"}}]`,
			wantSubstr:  "missing permissions",
		},
		{
			name:        "falls back to status text for non-JSON body",
			statusCode:  http.StatusNotFound,
			contentType: "text/plain",
			body:        "nope",
			wantSubstr:  "Not Found",
		},
		{
			name:        "falls back to status text for empty body",
			statusCode:  http.StatusConflict,
			contentType: "application/json",
			body:        "",
			wantSubstr:  "Conflict",
		},
		{
			name:        "falls back to status text for empty array",
			statusCode:  http.StatusBadGateway,
			contentType: "application/json",
			body:        "[]",
			wantSubstr:  "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp := &http.Response{
				StatusCode: tt.statusCode,
				Header:     http.Header{"Content-Type": []string{tt.contentType}},
				Body:       io.NopCloser(strings.NewReader(tt.body)),
			}

			got := TranslateHTTPError(resp)

			if !strings.Contains(got.Error(), tt.wantSubstr) {
				t.Errorf("error = %q, want substring %q", got.Error(), tt.wantSubstr)
			}
		})
	}
}

func TestTranslateHTTPError_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusTeapot,
		Header:     http.Header{},
		Body:       http.NoBody,
	}

	got := TranslateHTTPError(resp)

	if errors.Is(got, domain.ErrNotFound) ||
		errors.Is(got, domain.ErrValidation) ||
		errors.Is(got, domain.ErrConflict) ||
		errors.Is(got, domain.ErrForbidden) ||
		errors.Is(got, domain.ErrUnavailable) {
		t.Errorf("unexpected status should not match any domain error, got: %v", got)
	}

	if !strings.Contains(got.Error(), "418") {
		t.Errorf("error = %q, want status code 418 in message", got.Error())
	}
}

func TestTranslateHTTPError_NilBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       nil,
	}

	got := TranslateHTTPError(resp)

	if !errors.Is(got, domain.ErrNotFound) {
		t.Errorf("error is not ErrNotFound: %v", got)
	}
}
