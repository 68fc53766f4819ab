package middleware

import (
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"
)

const redacted = "[REDACTED]"

// sensitiveHeaders holds lowercase names of headers that carry credentials:
// generic auth, session cookies, and the Firebase/Google keys an admin
// browser session may forward.
var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"cookie":              true,
	"set-cookie":          true,
	"x-api-key":           true,
	"x-goog-api-key":      true,
	"x-firebase-appcheck": true,
}

// RedactHeaders turns headers into log attributes sorted by name, with
// credential values replaced and multi-value headers comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	names := slices.Sorted(maps.Keys(headers))

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := strings.Join(headers[name], ",")
		if sensitiveHeaders[strings.ToLower(name)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return attrs
}
