package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
)

// Companies is the company directory view
type Companies struct {
	Items   []domain.Company
	Loading bool
}

func ReduceCompanies(c Companies, ev Event) Companies {
	switch e := ev.(type) {
	case Mounted:
		c.Loading = true
	case CompaniesResolved:
		c.Items = e.Companies
		if c.Items == nil {
			c.Items = []domain.Company{}
		}
		c.Loading = false
	}
	return c
}

// MyJobsTab selects the list shown by the my jobs view
type MyJobsTab string

const (
	TabSaved   MyJobsTab = "saved"
	TabApplied MyJobsTab = "applied"
)

// ParseMyJobsTab validates a tab name; empty selects saved jobs
func ParseMyJobsTab(s string) (MyJobsTab, error) {
	switch t := MyJobsTab(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return TabSaved, nil
	case TabSaved, TabApplied:
		return t, nil
	default:
		return TabSaved, fmt.Errorf("view: unknown tab %q", s)
	}
}

// MyJobs is the saved/applied jobs view
type MyJobs struct {
	Tab      MyJobsTab
	Saved    []domain.JobPosting
	Applied  []domain.JobPosting
	Loading  bool
	LoadedAt time.Time
}

func NewMyJobs() MyJobs {
	return MyJobs{Tab: TabSaved, Saved: []domain.JobPosting{}, Applied: []domain.JobPosting{}}
}

func ReduceMyJobs(m MyJobs, ev Event) MyJobs {
	switch e := ev.(type) {
	case Mounted:
		m.Loading = true
	case MyJobsResolved:
		m.Saved = nonNil(e.Saved)
		m.Applied = nonNil(e.Applied)
		m.Loading = false
		m.LoadedAt = e.Saved.LoadedAt
	case TabChanged:
		m.Tab = e.Tab
	}
	return m
}

// Visible returns the list of the selected tab
func (m MyJobs) Visible() []domain.JobPosting {
	if m.Tab == TabApplied {
		return m.Applied
	}
	return m.Saved
}

func nonNil(res catalog.LoadResult) []domain.JobPosting {
	if res.Jobs == nil {
		return []domain.JobPosting{}
	}
	return res.Jobs
}

// MyJobsPage is the rendered my jobs view
type MyJobsPage struct {
	Tab     MyJobsTab `json:"tab"`
	Loading bool      `json:"loading"`
	Saved   int       `json:"saved"`
	Applied int       `json:"applied"`
	Jobs    []JobCard `json:"jobs"`
}

func (m MyJobs) Render() MyJobsPage {
	return MyJobsPage{
		Tab:     m.Tab,
		Loading: m.Loading,
		Saved:   len(m.Saved),
		Applied: len(m.Applied),
		Jobs:    Cards(m.Visible(), m.LoadedAt),
	}
}
