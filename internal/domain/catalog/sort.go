package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
)

// SortKey selects the ordering of the result list
type SortKey string

const (
	SortNone    SortKey = ""
	SortRecency SortKey = "date"
	SortRating  SortKey = "ratings"
)

// ParseSortKey validates a sort key; empty and "none" keep catalog order
func ParseSortKey(s string) (SortKey, error) {
	switch k := strings.ToLower(strings.TrimSpace(s)); k {
	case "", "none":
		return SortNone, nil
	case string(SortRecency), "recency":
		return SortRecency, nil
	case string(SortRating), "rating":
		return SortRating, nil
	default:
		return SortNone, fmt.Errorf("catalog: unknown sort key %q", s)
	}
}

// Sort returns a stably sorted copy. Ties keep their input order.
func Sort(jobs []domain.JobPosting, key SortKey) []domain.JobPosting {
	out := slices.Clone(jobs)
	if out == nil {
		out = []domain.JobPosting{}
	}

	switch key {
	case SortRecency:
		slices.SortStableFunc(out, func(a, b domain.JobPosting) int {
			return cmp.Compare(postedMillis(b.PostedAt), postedMillis(a.PostedAt))
		})
	case SortRating:
		slices.SortStableFunc(out, func(a, b domain.JobPosting) int {
			return cmp.Compare(b.Ratings, a.Ratings)
		})
	}

	return out
}

// postedMillis treats a missing timestamp as the Unix epoch
func postedMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
