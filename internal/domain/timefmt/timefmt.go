// Package timefmt normalizes the heterogeneous timestamp shapes returned by the
// CMS and the document store (epoch-second objects, ISO-8601 strings, native
// time values) and renders them in a fixed UTC format, so that every place a
// timestamp is rendered produces byte-identical output.
package timefmt

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// Fallback display strings.
const (
	NotAvailable = "N/A"
	InvalidDate  = "Invalid Date"
)

// Output layouts. Both are always rendered in UTC.
const (
	TimestampLayout = "Jan 2, 2006, 15:04 UTC"
	DateLayout      = "Jan 2, 2006"
)

var (
	// ErrAbsent is returned by Parse when no value was supplied.
	ErrAbsent = errors.New("timestamp absent")

	// ErrInvalid is returned by Parse when a value was supplied but could not
	// be interpreted as a point in time.
	ErrInvalid = errors.New("timestamp invalid")
)

// maxEpochSeconds bounds stored timestamps to 1e8 days either side of the
// epoch. Anything beyond it is corrupt.
const maxEpochSeconds = 8.64e12

// stringLayouts are tried in order when parsing string input.
var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Parse interprets v as a point in time. Supported inputs:
//
//   - nil, "", zero time.Time, nil *time.Time: ErrAbsent
//   - time.Time and *time.Time
//   - ISO-8601 strings (RFC 3339, with or without zone, or a bare date)
//   - maps carrying "_seconds"/"seconds" and optionally
//     "_nanoseconds"/"nanoseconds"/"nanos" (serialized store timestamps)
//   - integer and float numbers, read as Unix seconds
//
// Everything else yields ErrInvalid.
func Parse(v any) (time.Time, error) {
	switch val := v.(type) {
	case nil:
		return time.Time{}, ErrAbsent
	case time.Time:
		if val.IsZero() {
			return time.Time{}, ErrAbsent
		}
		return val.UTC(), nil
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, ErrAbsent
		}
		return val.UTC(), nil
	case string:
		return parseString(val)
	case map[string]any:
		return parseEpochObject(val)
	default:
		if secs, ok := toFloat(v); ok {
			return fromSeconds(secs, 0)
		}
		return time.Time{}, ErrInvalid
	}
}

// FormatTimestamp renders v as "Jan 2, 2006, 15:04 UTC". Absent input renders
// as "N/A"; present but uninterpretable input renders as "Invalid Date".
func FormatTimestamp(v any) string {
	t, err := Parse(v)
	switch {
	case errors.Is(err, ErrAbsent):
		return NotAvailable
	case err != nil:
		return InvalidDate
	default:
		return t.Format(TimestampLayout)
	}
}

// FormatDate renders v as "Jan 2, 2006". Any failure renders as "N/A".
func FormatDate(v any) string {
	t, err := Parse(v)
	if err != nil {
		return NotAvailable
	}
	return t.Format(DateLayout)
}

// ISO renders v as an RFC 3339 UTC string, or "" when v is not a valid time.
// Used for machine-readable output such as JSON-LD and sitemaps.
func ISO(v any) string {
	t, err := Parse(v)
	if err != nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrAbsent
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalid
}

func parseEpochObject(m map[string]any) (time.Time, error) {
	secs, ok := firstNumber(m, "_seconds", "seconds")
	if !ok {
		return time.Time{}, ErrInvalid
	}
	nanos, _ := firstNumber(m, "_nanoseconds", "nanoseconds", "nanos")
	return fromSeconds(secs, nanos)
}

func firstNumber(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, present := m[k]; present {
			return toFloat(v)
		}
	}
	return 0, false
}

func fromSeconds(secs, nanos float64) (time.Time, error) {
	if math.IsNaN(secs) || math.Abs(secs) > maxEpochSeconds {
		return time.Time{}, ErrInvalid
	}
	if math.IsNaN(nanos) || nanos < 0 || nanos >= float64(time.Second) {
		return time.Time{}, ErrInvalid
	}
	whole, frac := math.Modf(secs)
	ns := int64(frac*float64(time.Second)) + int64(nanos)
	return time.Unix(int64(whole), ns).UTC(), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
