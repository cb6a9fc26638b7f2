package view

import (
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/pagination"
)

// Search is the state of the search results view. The catalog is held
// unchanged for the life of the view; Results, Facets and Cursor are
// derived from it.
type Search struct {
	Catalog  []domain.JobPosting
	Loading  bool
	LoadedAt time.Time

	Facets   catalog.Summary
	Expanded map[catalog.Facet]bool

	Draft   catalog.AppliedFilters
	Applied catalog.AppliedFilters
	Sidebar catalog.SidebarFilters
	Sort    catalog.SortKey

	Results []domain.JobPosting
	Cursor  pagination.Cursor
}

// NewSearch returns the initial state of a search view
func NewSearch() Search {
	return Search{
		Catalog:  []domain.JobPosting{},
		Facets:   catalog.Summary{},
		Expanded: map[catalog.Facet]bool{},
		Sidebar:  catalog.DefaultSidebarFilters(),
		Results:  []domain.JobPosting{},
		Cursor:   pagination.NewCursor(0, pagination.DefaultPageSize),
	}
}

// ReduceSearch is the transition function of the search view
func ReduceSearch(s Search, ev Event) Search {
	switch e := ev.(type) {
	case Mounted:
		s.Loading = true

	case FetchResolved:
		s.Catalog = e.Result.Jobs
		if s.Catalog == nil {
			s.Catalog = []domain.JobPosting{}
		}
		s.Loading = false
		s.LoadedAt = e.Result.LoadedAt
		s.Facets = catalog.Summarize(s.Catalog, s.LoadedAt)
		s = s.refilter()

	case QueryChanged:
		s.Draft = catalog.AppliedFilters{Query: e.Query, Location: e.Location, Experience: e.Experience}

	case QueryApplied:
		s.Applied = s.Draft
		s = s.refilter()

	case SidebarApplied:
		s.Sidebar = e.Filters.Clone()
		s = s.refilter()

	case SidebarCleared:
		s.Sidebar = catalog.DefaultSidebarFilters()
		s = s.refilter()

	case SortChanged:
		s.Sort = e.Key
		s = s.refilter()

	case FacetToggled:
		expanded := make(map[catalog.Facet]bool, len(s.Expanded)+1)
		for k, v := range s.Expanded {
			expanded[k] = v
		}
		expanded[e.Facet] = !expanded[e.Facet]
		s.Expanded = expanded

	case PageChanged:
		s.Cursor = s.Cursor.Goto(e.Page)
	case NextPage:
		s.Cursor = s.Cursor.Next()
	case PrevPage:
		s.Cursor = s.Cursor.Prev()
	}

	return s
}

// refilter recomputes the result list and returns to page 1
func (s Search) refilter() Search {
	filtered := catalog.Filter(s.Catalog, s.Applied, s.Sidebar, s.LoadedAt)
	s.Results = catalog.Sort(filtered, s.Sort)
	s.Cursor = s.Cursor.Reset(len(s.Results))
	return s
}

// VisibleFacets returns every facet cut to what the sidebar displays
func (s Search) VisibleFacets() map[catalog.Facet][]catalog.FacetCount {
	out := make(map[catalog.Facet][]catalog.FacetCount, len(catalog.Facets))
	for _, f := range catalog.Facets {
		out[f] = s.Facets.Visible(f, s.Expanded[f])
	}
	return out
}

// Page returns the jobs on the current page
func (s Search) Page() []domain.JobPosting {
	return pagination.Page(s.Results, s.Cursor.Page(), s.Cursor.Size())
}
