package tools

import (
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/view"
)

// SearchParams defines the search bar, sidebar, sort and page of a search
type SearchParams struct {
	Query      string `json:"query,omitempty" jsonschema:"Matches title, company or any key skill"`
	Location   string `json:"location,omitempty" jsonschema:"Substring of the job location"`
	Experience string `json:"experience,omitempty" jsonschema:"Experience bracket: fresher, 1-3, 3-5 or 5+"`

	Locations   []string `json:"locations,omitempty" jsonschema:"Sidebar location selection"`
	WorkTypes   []string `json:"work_types,omitempty" jsonschema:"Sidebar work type selection"`
	Companies   []string `json:"companies,omitempty" jsonschema:"Sidebar company selection"`
	Education   []string `json:"education,omitempty" jsonschema:"Sidebar education selection"`
	Industries  []string `json:"industries,omitempty" jsonschema:"Sidebar industry selection"`
	PostedDates []string `json:"posted_dates,omitempty" jsonschema:"Freshness buckets such as today or 1 week ago"`
	PostedBy    []string `json:"posted_by,omitempty" jsonschema:"Sidebar poster selection"`

	MinSalary     *float64 `json:"min_salary,omitempty" jsonschema:"Lower salary bound"`
	MaxSalary     *float64 `json:"max_salary,omitempty" jsonschema:"Upper salary bound, 100 means no bound"`
	MaxExperience *int     `json:"max_experience,omitempty" jsonschema:"Experience ceiling in years"`

	Sort string `json:"sort,omitempty" jsonschema:"none, date or ratings"`
	Page int    `json:"page,omitempty" jsonschema:"1-based result page"`
}

// SearchQuery converts the params to a view query
func (p SearchParams) SearchQuery() (view.SearchQuery, error) {
	exp, err := catalog.ParseExperienceBracket(p.Experience)
	if err != nil {
		return view.SearchQuery{}, err
	}
	sort, err := catalog.ParseSortKey(p.Sort)
	if err != nil {
		return view.SearchQuery{}, err
	}

	q := view.SearchQuery{
		Query:      p.Query,
		Location:   p.Location,
		Experience: exp,
		Sort:       sort,
		Page:       p.Page,
	}
	if sel := p.sidebar(); !sel.Empty() {
		sidebar, err := sel.Filters()
		if err != nil {
			return view.SearchQuery{}, err
		}
		q.Sidebar = &sidebar
	}
	return q, nil
}

func (p SearchParams) sidebar() catalog.SidebarSelection {
	return catalog.SidebarSelection{
		Locations:     p.Locations,
		WorkTypes:     p.WorkTypes,
		Companies:     p.Companies,
		Education:     p.Education,
		Industries:    p.Industries,
		PostedDates:   p.PostedDates,
		PostedBy:      p.PostedBy,
		MinSalary:     p.MinSalary,
		MaxSalary:     p.MaxSalary,
		MaxExperience: p.MaxExperience,
	}
}
