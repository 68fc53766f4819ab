package dashboard

import "time"

// Query reads the most recent documents of one collection.
type Query struct {
	Collection string
	OrderBy    string
	Descending bool
	Limit      int
}

// Recent returns a query for the newest documents of collection by
// createdAt.
func Recent(collection string, limit int) Query {
	return Query{Collection: collection, OrderBy: "createdAt", Descending: true, Limit: limit}
}

// PresenceUpdate is one reading of the realtime "users online" count.
type PresenceUpdate struct {
	Count int
	At    time.Time
}
