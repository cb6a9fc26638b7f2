package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/view"
)

func searchCatalog() []domain.JobPosting {
	return []domain.JobPosting{
		{ID: "1", Title: "Backend Engineer", Company: "Acme", Location: "Pune", Experience: "5 years",
			WorkType: "Full-time", PostedAt: loadedAt.Add(-time.Hour), Ratings: 3.5, KeySkills: []string{"Go"}},
		{ID: "2", Title: "Frontend Engineer", Company: "Globex", Location: "Remote", Experience: "2 years",
			WorkType: "Contract", PostedAt: loadedAt.Add(-48 * time.Hour), Ratings: 4.8, KeySkills: []string{"React"}},
		{ID: "3", Title: "Data Analyst", Company: "Initech", Location: "Pune", Experience: "0 years",
			WorkType: "Full-time", PostedAt: loadedAt.Add(-30 * time.Minute), Ratings: 4.0, KeySkills: []string{"SQL"}},
	}
}

func loaded(list []domain.JobPosting) view.Search {
	return view.ReduceSearch(view.ReduceSearch(view.NewSearch(), view.Mounted{}), resolved(list))
}

func resultIDs(jobs []domain.JobPosting) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func TestSearch_MountedThenResolved(t *testing.T) {
	s := view.ReduceSearch(view.NewSearch(), view.Mounted{})
	assert.True(t, s.Loading)

	s = view.ReduceSearch(s, resolved(searchCatalog()))
	assert.False(t, s.Loading)
	assert.Equal(t, []string{"1", "2", "3"}, resultIDs(s.Results))
	assert.Equal(t, []catalog.FacetCount{{Value: "pune", Count: 2}, {Value: "remote", Count: 1}}, s.Facets[catalog.FacetLocation])
	assert.Equal(t, 1, s.Cursor.Page())
}

func TestSearch_DraftIsNotAppliedUntilCommitted(t *testing.T) {
	s := loaded(searchCatalog())

	s = view.ReduceSearch(s, view.QueryChanged{Query: "engineer"})
	assert.Len(t, s.Results, 3)
	assert.Empty(t, s.Applied.Query)

	s = view.ReduceSearch(s, view.QueryApplied{})
	assert.Equal(t, "engineer", s.Applied.Query)
	assert.Equal(t, []string{"1", "2"}, resultIDs(s.Results))
}

func TestSearch_SidebarSnapshotIsIndependent(t *testing.T) {
	s := loaded(searchCatalog())

	filters := catalog.DefaultSidebarFilters()
	filters.Locations = []string{"Pune"}
	s = view.ReduceSearch(s, view.SidebarApplied{Filters: filters})

	filters.Locations[0] = "Remote"
	assert.Equal(t, []string{"Pune"}, s.Sidebar.Locations)
	assert.Equal(t, []string{"1", "3"}, resultIDs(s.Results))

	s = view.ReduceSearch(s, view.SidebarCleared{})
	assert.Equal(t, catalog.DefaultSidebarFilters(), s.Sidebar)
	assert.Len(t, s.Results, 3)
}

func TestSearch_SortOrdersResults(t *testing.T) {
	s := loaded(searchCatalog())

	s = view.ReduceSearch(s, view.SortChanged{Key: catalog.SortRecency})
	assert.Equal(t, []string{"3", "1", "2"}, resultIDs(s.Results))

	s = view.ReduceSearch(s, view.SortChanged{Key: catalog.SortRating})
	assert.Equal(t, []string{"2", "3", "1"}, resultIDs(s.Results))

	assert.Equal(t, []string{"1", "2", "3"}, resultIDs(s.Catalog))
}

func TestSearch_FilterChangeResetsPage(t *testing.T) {
	s := loaded(jobs(23))

	s = view.ReduceSearch(s, view.PageChanged{Page: 3})
	assert.Equal(t, 3, s.Cursor.Page())
	assert.Len(t, s.Page(), 3)

	s = view.ReduceSearch(s, view.SortChanged{Key: catalog.SortRating})
	assert.Equal(t, 1, s.Cursor.Page())
	assert.Len(t, s.Page(), 10)
}

func TestSearch_PagingIsClamped(t *testing.T) {
	s := loaded(jobs(23))

	s = view.ReduceSearch(s, view.PrevPage{})
	assert.Equal(t, 1, s.Cursor.Page())

	s = view.ReduceSearch(s, view.PageChanged{Page: 99})
	assert.Equal(t, 3, s.Cursor.Page())

	s = view.ReduceSearch(s, view.NextPage{})
	assert.Equal(t, 3, s.Cursor.Page())
}

func TestSearch_FacetToggle(t *testing.T) {
	list := make([]domain.JobPosting, 0, 7)
	for _, loc := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		list = append(list, domain.JobPosting{ID: loc, Location: loc, PostedAt: loadedAt})
	}
	s := loaded(list)
	before := s

	assert.Len(t, s.VisibleFacets()[catalog.FacetLocation], catalog.CollapsedLimit)

	s = view.ReduceSearch(s, view.FacetToggled{Facet: catalog.FacetLocation})
	assert.Len(t, s.VisibleFacets()[catalog.FacetLocation], 7)
	assert.False(t, before.Expanded[catalog.FacetLocation])

	s = view.ReduceSearch(s, view.FacetToggled{Facet: catalog.FacetLocation})
	assert.Len(t, s.VisibleFacets()[catalog.FacetLocation], catalog.CollapsedLimit)
}

func TestSearch_FailedLoadIsEmpty(t *testing.T) {
	s := view.ReduceSearch(view.NewSearch(), view.FetchResolved{Result: catalog.LoadResult{Failed: true, LoadedAt: loadedAt}})

	assert.NotNil(t, s.Results)
	assert.Empty(t, s.Results)
	assert.Equal(t, 0, s.Cursor.TotalPages())

	page := s.Render()
	assert.Empty(t, page.Jobs)
	assert.Empty(t, page.Paging.Labels)
}

func TestSearch_Render(t *testing.T) {
	s := loaded(searchCatalog())
	page := s.Render()

	assert.False(t, page.Loading)
	assert.Len(t, page.Jobs, 3)
	assert.Equal(t, "Today", page.Jobs[0].Posted)
	assert.Equal(t, "2 days ago", page.Jobs[1].Posted)
	assert.Equal(t, 1, page.Paging.TotalPages)
	assert.False(t, page.Paging.HasNext)
}
