// Package dashboard maps raw document-store records into the view models the
// admin dashboard renders. Every mapper is a pure, total function: absent or
// malformed fields become fallback strings, never errors.
package dashboard

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/jsamuelsen11/sitekit/internal/domain/timefmt"
)

// Collection names read by the dashboard.
const (
	CollectionUsers    = "users"
	CollectionSessions = "sessions"
	CollectionResumes  = "resumes"
	CollectionPayments = "payments"
)

// Document is a single record read from the document store. Fields holds the
// decoded values: strings, bools, int64, float64, time.Time, nil, []any and
// map[string]any.
type Document struct {
	ID         string
	Collection string
	Fields     map[string]any
	CreateTime time.Time
	UpdateTime time.Time
}

// Value returns the raw value at a dotted path such as "profile.name", or nil
// when any segment is missing.
func (d Document) Value(path string) any {
	var cur any = d.Fields
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		next, ok := m[key]
		if !ok {
			return nil
		}
		cur = next
	}
	return cur
}

// String returns the trimmed string at path, or "" if absent or not a string.
func (d Document) String(path string) string {
	s, _ := d.Value(path).(string)
	return strings.TrimSpace(s)
}

// FirstString returns the first non-empty string among paths.
func (d Document) FirstString(paths ...string) string {
	for _, p := range paths {
		if s := d.String(p); s != "" {
			return s
		}
	}
	return ""
}

// Float returns the numeric value at path. The second result is false when
// the field is absent or not a number.
func (d Document) Float(path string) (float64, bool) {
	switch v := d.Value(path).(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// Int returns the integer value at path, truncating floats.
func (d Document) Int(path string) (int64, bool) {
	switch v := d.Value(path).(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	default:
		f, ok := d.Float(path)
		return int64(f), ok
	}
}

// Bool returns the boolean at path; anything else is false.
func (d Document) Bool(path string) bool {
	b, _ := d.Value(path).(bool)
	return b
}

// Time returns the timestamp at path. The second result is false when the
// field is absent or cannot be interpreted as a time.
func (d Document) Time(path string) (time.Time, bool) {
	t, err := timefmt.Parse(d.Value(path))
	return t, err == nil
}

// Strings returns the string elements of the array at path.
func (d Document) Strings(path string) []string {
	switch v := d.Value(path).(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
