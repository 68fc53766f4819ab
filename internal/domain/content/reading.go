package content

import "strings"

// wordsPerMinute is the reading speed used for reading-time estimates.
const wordsPerMinute = 200

// ReadingMinutes estimates how long plain text takes to read, rounding up.
// Any non-empty text takes at least one minute.
func ReadingMinutes(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
