package timefmt

import (
	"fmt"
	"time"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 365 * day
)

// Since renders how long before now the timestamp v was, for example
// "3 hours ago". Absent or invalid input renders as "N/A". Timestamps in the
// future render as "just now".
func Since(v any, now time.Time) string {
	t, err := Parse(v)
	if err != nil {
		return NotAvailable
	}
	return Ago(now.Sub(t))
}

// Ago renders an elapsed duration as a coarse relative phrase.
func Ago(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < day:
		return plural(int(d/time.Hour), "hour")
	case d < month:
		return plural(int(d/day), "day")
	case d < year:
		return plural(int(d/month), "month")
	default:
		return plural(int(d/year), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
