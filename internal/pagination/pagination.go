// Package pagination slices result lists into fixed-size pages and lays out
// the page buttons shown under a list.
package pagination

// DefaultPageSize is the number of items per page of every list view
const DefaultPageSize = 10

// maxPlainPages is the largest page count shown without ellipses
const maxPlainPages = 5

// TotalPages returns ceil(n/size). An empty list has zero pages.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Page returns the 1-based page of items. Out of range pages are empty.
func Page[T any](items []T, page, size int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// Label is one page button; Ellipsis marks a gap between numbers
type Label struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Labels lays out the page buttons for current out of total pages. Up to
// five pages are all listed. Beyond that the first and last page are always
// shown around a window of current-1..current+1, widened to pages 2-4 near
// the start and to the last four pages near the end, with an ellipsis
// wherever the window does not touch an end.
func Labels(current, total int) []Label {
	if total <= 0 {
		return []Label{}
	}
	current = clamp(current, 1, total)

	if total <= maxPlainPages {
		out := make([]Label, 0, total)
		for p := 1; p <= total; p++ {
			out = append(out, Label{Page: p})
		}
		return out
	}

	start := max(2, current-1)
	end := min(total-1, current+1)
	if current <= 3 {
		end = 4
	}
	if current >= total-2 {
		start = total - 3
	}

	out := []Label{{Page: 1}}
	if start > 2 {
		out = append(out, Label{Ellipsis: true})
	}
	for p := start; p <= end; p++ {
		out = append(out, Label{Page: p})
	}
	if end < total-1 {
		out = append(out, Label{Ellipsis: true})
	}
	out = append(out, Label{Page: total})
	return out
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
