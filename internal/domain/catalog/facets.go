package catalog

import (
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
)

// Facet names a categorical dimension of the catalog
type Facet string

const (
	FacetLocation   Facet = "location"
	FacetWorkType   Facet = "workType"
	FacetCompany    Facet = "company"
	FacetEducation  Facet = "education"
	FacetIndustry   Facet = "industry"
	FacetPostedBy   Facet = "postedBy"
	FacetPostedDate Facet = "postedDate"
)

// Facets lists every dimension in display order
var Facets = []Facet{
	FacetLocation,
	FacetWorkType,
	FacetCompany,
	FacetEducation,
	FacetIndustry,
	FacetPostedDate,
	FacetPostedBy,
}

// CollapsedLimit is how many values a collapsible facet shows by default
const CollapsedLimit = 5

// Collapsible reports whether a facet is truncated until expanded
func (f Facet) Collapsible() bool {
	switch f {
	case FacetLocation, FacetCompany, FacetIndustry:
		return true
	default:
		return false
	}
}

// FacetCount is one value of a facet with its occurrence count
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary holds the counts of every facet over a whole catalog
type Summary map[Facet][]FacetCount

// Summarize counts distinct case-folded values per facet in first-seen
// order. Scalar facets count a job once per value, array facets once per
// distinct element; empty values are skipped.
func Summarize(jobs []domain.JobPosting, now time.Time) Summary {
	s := Summary{
		FacetLocation:   countScalar(jobs, func(j domain.JobPosting) string { return j.Location }),
		FacetWorkType:   countScalar(jobs, func(j domain.JobPosting) string { return j.WorkType }),
		FacetCompany:    countScalar(jobs, func(j domain.JobPosting) string { return j.Company }),
		FacetPostedBy:   countScalar(jobs, func(j domain.JobPosting) string { return j.PostedBy }),
		FacetEducation:  countList(jobs, func(j domain.JobPosting) []string { return j.EducationRequired }),
		FacetIndustry:   countList(jobs, func(j domain.JobPosting) []string { return j.IndustryType }),
		FacetPostedDate: countScalar(jobs, func(j domain.JobPosting) string { return FreshnessBucket(j.PostedAt, now) }),
	}
	return s
}

// Visible returns the values of a facet to display. Collapsible facets are
// cut to CollapsedLimit unless expanded.
func (s Summary) Visible(f Facet, expanded bool) []FacetCount {
	values := s[f]
	if !expanded && f.Collapsible() && len(values) > CollapsedLimit {
		return values[:CollapsedLimit]
	}
	return values
}

// Total sums the counts of a facet
func (s Summary) Total(f Facet) int {
	total := 0
	for _, fc := range s[f] {
		total += fc.Count
	}
	return total
}

type counter struct {
	index map[string]int
	out   []FacetCount
}

func newCounter() *counter {
	return &counter{index: make(map[string]int), out: []FacetCount{}}
}

func (c *counter) add(value string) {
	if i, ok := c.index[value]; ok {
		c.out[i].Count++
		return
	}
	c.index[value] = len(c.out)
	c.out = append(c.out, FacetCount{Value: value, Count: 1})
}

func countScalar(jobs []domain.JobPosting, get func(domain.JobPosting) string) []FacetCount {
	c := newCounter()
	for _, j := range jobs {
		if v := Fold(get(j)); v != "" {
			c.add(v)
		}
	}
	return c.out
}

func countList(jobs []domain.JobPosting, get func(domain.JobPosting) []string) []FacetCount {
	c := newCounter()
	for _, j := range jobs {
		seen := make(map[string]struct{})
		for _, raw := range get(j) {
			v := Fold(raw)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			c.add(v)
		}
	}
	return c.out
}
