package dashboard

import (
	"time"

	"github.com/jsamuelsen11/sitekit/internal/domain/timefmt"
)

// DefaultActiveWindow is how recently a user must have logged in to count as
// active.
const DefaultActiveWindow = 7 * 24 * time.Hour

// ActivityStatus is the binary recency status shown for users and contacts.
type ActivityStatus string

const (
	StatusActive   ActivityStatus = "active"
	StatusInactive ActivityStatus = "inactive"
)

// String implements fmt.Stringer.
func (s ActivityStatus) String() string {
	return string(s)
}

// Activity reports whether lastSeen falls within window of now. Absent or
// unparseable timestamps are inactive. Timestamps in the future are active.
func Activity(lastSeen any, now time.Time, window time.Duration) ActivityStatus {
	t, err := timefmt.Parse(lastSeen)
	if err != nil {
		return StatusInactive
	}
	if now.Sub(t) <= window {
		return StatusActive
	}
	return StatusInactive
}
