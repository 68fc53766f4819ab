package listing

// DefaultMaxVisible is the number of page links shown when no explicit
// maximum is configured.
const DefaultMaxVisible = 5

// Gap marks a skipped range of pages in a window. It is never a valid page
// number.
const Gap = 0

// Window returns the page numbers to render as links for a listing with total
// pages, centred on current and bounded by maxVisible. Skipped ranges are
// represented by Gap. Pages 1 and total are always present once the listing is
// larger than maxVisible.
//
// Near either boundary the window hugs that boundary instead of staying
// centred, so for total=10, maxVisible=5:
//
//	current=1  -> 1 2 3 4 5 … 10
//	current=10 -> 1 … 6 7 8 9 10
func Window(current, total, maxVisible int) []int {
	if total <= 0 {
		return []int{}
	}
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	current = min(max(current, 1), total)

	if total <= maxVisible {
		pages := make([]int, 0, total)
		for p := 1; p <= total; p++ {
			pages = append(pages, p)
		}
		return pages
	}

	half := maxVisible / 2
	start := max(1, current-half)
	end := min(total, start+maxVisible-1)
	if end-start+1 < maxVisible {
		start = max(1, end-maxVisible+1)
	}

	pages := make([]int, 0, maxVisible+4)
	if start > 1 {
		pages = append(pages, 1)
		if start > 2 {
			pages = append(pages, Gap)
		}
	}
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	if end < total {
		if end < total-1 {
			pages = append(pages, Gap)
		}
		pages = append(pages, total)
	}
	return pages
}
