package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the canonical set of HTTP header names (lowercase) that
// carry credentials and must be redacted before logging. This set is shared
// between the masq defense-in-depth layer and the HTTP middleware's
// RedactHeaders utility so the two cannot silently drift apart.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// PersonalFields are attribute keys carrying contact-form data submitted by
// site visitors. They are never written in the clear.
var PersonalFields = []string{"email", "phone", "message"}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// jwtPattern matches raw JWT strings (header.payload.signature). Requires at
// least 10 characters per segment to avoid false positives on short
// dot-separated strings like version numbers.
var jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

// credentialURLPattern matches URLs with embedded credentials, such as
// redis://:password@host:6379 in a logged connection error.
var credentialURLPattern = regexp.MustCompile(`(?i)[a-z][a-z0-9+.\-]*://[^\s/@]*:[^\s/@]+@`)

// CMS tokens are opaque "sk" prefixed strings.
var cmsTokenPattern = regexp.MustCompile(`\bsk[A-Za-z0-9]{20,}\b`)

// fixedRedactOptions is the number of masq options beyond the dynamic
// SensitiveHeaders and PersonalFields sets (3 field names + 2 prefixes +
// 4 regexes).
const fixedRedactOptions = 9

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name for known sensitive fields
// and by regex for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveHeaders)+len(PersonalFields))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range PersonalFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldName("password"),
		masq.WithFieldName("secret"),
		masq.WithFieldName("token"),

		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("token_"),

		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(credentialURLPattern),
		masq.WithRegex(cmsTokenPattern),
	)

	return masq.New(opts...)
}
