package listing

import "fmt"

// Summary renders the derived count line shown above a listing, for example
// "Showing 10-18 of 42 posts". noun and plural name a single item and many
// items respectively.
func Summary(p ListingPage, pageSize int, noun, plural string) string {
	if p.TotalCount == 0 || pageSize <= 0 {
		return fmt.Sprintf("No %s found", plural)
	}

	from := p.Offset(pageSize) + 1
	if from > p.TotalCount {
		return fmt.Sprintf("No %s found", plural)
	}
	to := min(from+pageSize-1, p.TotalCount)

	label := plural
	if p.TotalCount == 1 {
		label = noun
	}

	if from == to {
		return fmt.Sprintf("Showing %d of %d %s", from, p.TotalCount, label)
	}
	return fmt.Sprintf("Showing %d-%d of %d %s", from, to, p.TotalCount, label)
}
