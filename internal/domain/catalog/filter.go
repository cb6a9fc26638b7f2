package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
)

// ExperienceBracket is the experience filter of the search bar
type ExperienceBracket string

const (
	ExperienceAny     ExperienceBracket = ""
	ExperienceFresher ExperienceBracket = "fresher"
	Experience1To3    ExperienceBracket = "1-3"
	Experience3To5    ExperienceBracket = "3-5"
	Experience5Plus   ExperienceBracket = "5+"
)

// ParseExperienceBracket validates a bracket name; empty means any
func ParseExperienceBracket(s string) (ExperienceBracket, error) {
	switch b := ExperienceBracket(strings.ToLower(strings.TrimSpace(s))); b {
	case ExperienceAny, ExperienceFresher, Experience1To3, Experience3To5, Experience5Plus:
		return b, nil
	default:
		return ExperienceAny, fmt.Errorf("catalog: unknown experience bracket %q", s)
	}
}

// Admits reports whether a parsed experience falls inside the bracket
func (b ExperienceBracket) Admits(years int) bool {
	switch b {
	case ExperienceFresher:
		return years == 0
	case Experience1To3:
		return years >= 1 && years <= 3
	case Experience3To5:
		return years >= 3 && years <= 5
	case Experience5Plus:
		return years >= 5
	default:
		return true
	}
}

const (
	// SalaryCapSentinel disables the salary upper bound
	SalaryCapSentinel = 100
	// DefaultMaxExperience is the experience ceiling before the user moves it
	DefaultMaxExperience = 30
)

// AppliedFilters is the committed search bar snapshot
type AppliedFilters struct {
	Query      string            `json:"query"`
	Location   string            `json:"location"`
	Experience ExperienceBracket `json:"experience"`
}

// SidebarFilters is the committed sidebar snapshot
type SidebarFilters struct {
	Locations   []string `json:"locations"`
	WorkTypes   []string `json:"workTypes"`
	Companies   []string `json:"companies"`
	Education   []string `json:"education"`
	Industries  []string `json:"industries"`
	PostedDates []string `json:"postedDates"`
	PostedBy    []string `json:"postedBy"`

	MinSalary     float64 `json:"minSalary"`
	MaxSalary     float64 `json:"maxSalary"`
	MaxExperience int     `json:"maxExperience"`
}

// DefaultSidebarFilters selects nothing and leaves both ranges open
func DefaultSidebarFilters() SidebarFilters {
	return SidebarFilters{
		MinSalary:     0,
		MaxSalary:     SalaryCapSentinel,
		MaxExperience: DefaultMaxExperience,
	}
}

// Validate rejects ranges the sidebar controls cannot produce
func (s SidebarFilters) Validate() error {
	if s.MinSalary < 0 || s.MaxSalary < s.MinSalary {
		return fmt.Errorf("catalog: invalid salary range %.0f-%.0f", s.MinSalary, s.MaxSalary)
	}
	if s.MaxExperience < 0 {
		return fmt.Errorf("catalog: invalid max experience %d", s.MaxExperience)
	}
	return nil
}

// SidebarSelection is a partial sidebar sent by a client. Nil bounds keep
// their defaults.
type SidebarSelection struct {
	Locations   []string `json:"locations"`
	WorkTypes   []string `json:"workTypes"`
	Companies   []string `json:"companies"`
	Education   []string `json:"education"`
	Industries  []string `json:"industries"`
	PostedDates []string `json:"postedDates"`
	PostedBy    []string `json:"postedBy"`

	MinSalary     *float64 `json:"minSalary"`
	MaxSalary     *float64 `json:"maxSalary"`
	MaxExperience *int     `json:"maxExperience"`
}

// Empty reports whether nothing was selected and no bound was moved
func (s SidebarSelection) Empty() bool {
	return len(s.Locations) == 0 && len(s.WorkTypes) == 0 && len(s.Companies) == 0 &&
		len(s.Education) == 0 && len(s.Industries) == 0 && len(s.PostedDates) == 0 &&
		len(s.PostedBy) == 0 && s.MinSalary == nil && s.MaxSalary == nil && s.MaxExperience == nil
}

// Filters merges the selection onto DefaultSidebarFilters and validates it
func (s SidebarSelection) Filters() (SidebarFilters, error) {
	f := DefaultSidebarFilters()
	f.Locations = cloneStrings(s.Locations)
	f.WorkTypes = cloneStrings(s.WorkTypes)
	f.Companies = cloneStrings(s.Companies)
	f.Education = cloneStrings(s.Education)
	f.Industries = cloneStrings(s.Industries)
	f.PostedDates = cloneStrings(s.PostedDates)
	f.PostedBy = cloneStrings(s.PostedBy)
	if s.MinSalary != nil {
		f.MinSalary = *s.MinSalary
	}
	if s.MaxSalary != nil {
		f.MaxSalary = *s.MaxSalary
	}
	if s.MaxExperience != nil {
		f.MaxExperience = *s.MaxExperience
	}
	if err := f.Validate(); err != nil {
		return SidebarFilters{}, err
	}
	return f, nil
}

// Selection returns the selected values of a facet
func (s SidebarFilters) Selection(f Facet) []string {
	switch f {
	case FacetLocation:
		return s.Locations
	case FacetWorkType:
		return s.WorkTypes
	case FacetCompany:
		return s.Companies
	case FacetEducation:
		return s.Education
	case FacetIndustry:
		return s.Industries
	case FacetPostedDate:
		return s.PostedDates
	case FacetPostedBy:
		return s.PostedBy
	default:
		return nil
	}
}

// Clone deep-copies the selection slices
func (s SidebarFilters) Clone() SidebarFilters {
	out := s
	out.Locations = cloneStrings(s.Locations)
	out.WorkTypes = cloneStrings(s.WorkTypes)
	out.Companies = cloneStrings(s.Companies)
	out.Education = cloneStrings(s.Education)
	out.Industries = cloneStrings(s.Industries)
	out.PostedDates = cloneStrings(s.PostedDates)
	out.PostedBy = cloneStrings(s.PostedBy)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

type selection map[string]struct{}

func newSelection(values []string) selection {
	if len(values) == 0 {
		return nil
	}
	sel := make(selection, len(values))
	for _, v := range values {
		sel[Fold(v)] = struct{}{}
	}
	return sel
}

func (s selection) admits(value string) bool {
	if s == nil {
		return true
	}
	_, ok := s[Fold(value)]
	return ok
}

func (s selection) admitsAny(values []string) bool {
	if s == nil {
		return true
	}
	for _, v := range values {
		if _, ok := s[Fold(v)]; ok {
			return true
		}
	}
	return false
}

// Predicate is the compiled admission test of both filter snapshots
type Predicate struct {
	query      string
	location   string
	experience ExperienceBracket

	locations   selection
	workTypes   selection
	companies   selection
	education   selection
	industries  selection
	postedDates selection
	postedBy    selection

	minSalary     float64
	maxSalary     float64
	maxExperience int

	now time.Time
}

// NewPredicate compiles the snapshots. now anchors the posted-date buckets.
func NewPredicate(applied AppliedFilters, sidebar SidebarFilters, now time.Time) Predicate {
	return Predicate{
		query:      Fold(applied.Query),
		location:   Fold(applied.Location),
		experience: applied.Experience,

		locations:   newSelection(sidebar.Locations),
		workTypes:   newSelection(sidebar.WorkTypes),
		companies:   newSelection(sidebar.Companies),
		education:   newSelection(sidebar.Education),
		industries:  newSelection(sidebar.Industries),
		postedDates: newSelection(sidebar.PostedDates),
		postedBy:    newSelection(sidebar.PostedBy),

		minSalary:     sidebar.MinSalary,
		maxSalary:     sidebar.MaxSalary,
		maxExperience: sidebar.MaxExperience,

		now: now,
	}
}

// Match reports whether a job passes every criterion
func (p Predicate) Match(job domain.JobPosting) bool {
	if p.query != "" && !p.matchesQuery(job) {
		return false
	}
	if p.location != "" && !strings.Contains(Fold(job.Location), p.location) {
		return false
	}

	years := ParseExperience(job.Experience)
	if !p.experience.Admits(years) {
		return false
	}

	if !p.locations.admits(job.Location) ||
		!p.workTypes.admits(job.WorkType) ||
		!p.companies.admits(job.Company) ||
		!p.education.admitsAny(job.EducationRequired) ||
		!p.industries.admitsAny(job.IndustryType) ||
		!p.postedBy.admits(job.PostedBy) {
		return false
	}
	if p.postedDates != nil && !p.postedDates.admits(FreshnessBucket(job.PostedAt, p.now)) {
		return false
	}

	if years > p.maxExperience {
		return false
	}

	salary := ParseSalary(job.Salary)
	if salary < p.minSalary {
		return false
	}
	if p.maxSalary < SalaryCapSentinel && salary > p.maxSalary {
		return false
	}

	return true
}

func (p Predicate) matchesQuery(job domain.JobPosting) bool {
	if strings.Contains(Fold(job.Title), p.query) || strings.Contains(Fold(job.Company), p.query) {
		return true
	}
	for _, skill := range job.KeySkills {
		if strings.Contains(Fold(skill), p.query) {
			return true
		}
	}
	return false
}

// Filter returns the jobs admitted by both snapshots in catalog order
func Filter(jobs []domain.JobPosting, applied AppliedFilters, sidebar SidebarFilters, now time.Time) []domain.JobPosting {
	p := NewPredicate(applied, sidebar, now)
	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if p.Match(j) {
			out = append(out, j)
		}
	}
	return out
}
