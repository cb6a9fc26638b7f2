package view

import (
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/pagination"
)

// List is a paginated job list such as the jobs tab or a company's openings
type List struct {
	Company  *domain.Company
	Jobs     []domain.JobPosting
	Loading  bool
	LoadedAt time.Time
	Cursor   pagination.Cursor
}

func NewList() List {
	return List{
		Jobs:   []domain.JobPosting{},
		Cursor: pagination.NewCursor(0, pagination.DefaultPageSize),
	}
}

// CompanyResolved delivers a company header along with its openings
type CompanyResolved struct {
	Company domain.Company
	FetchResolved
}

func (CompanyResolved) eventName() string { return "company_resolved" }

func ReduceList(l List, ev Event) List {
	switch e := ev.(type) {
	case Mounted:
		l.Loading = true
	case FetchResolved:
		l = l.resolved(e.Result)
	case CompanyResolved:
		company := e.Company
		l.Company = &company
		l = l.resolved(e.Result)
	case PageChanged:
		l.Cursor = l.Cursor.Goto(e.Page)
	case NextPage:
		l.Cursor = l.Cursor.Next()
	case PrevPage:
		l.Cursor = l.Cursor.Prev()
	}
	return l
}

func (l List) resolved(res catalog.LoadResult) List {
	jobs := res.Jobs
	if jobs == nil {
		jobs = []domain.JobPosting{}
	}
	l.Jobs = jobs
	l.Loading = false
	l.LoadedAt = res.LoadedAt
	l.Cursor = l.Cursor.Reset(len(jobs))
	return l
}

// Page returns the jobs on the current page
func (l List) Page() []domain.JobPosting {
	return pagination.Page(l.Jobs, l.Cursor.Page(), l.Cursor.Size())
}
