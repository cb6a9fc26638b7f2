package httpapi

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/view"
)

// searchForm is the query string of GET /search
type searchForm struct {
	Query      string `form:"q"`
	Location   string `form:"location"`
	Experience string `form:"experience"`

	Locations   []string `form:"locations"`
	WorkTypes   []string `form:"work_types"`
	Companies   []string `form:"companies"`
	Education   []string `form:"education"`
	Industries  []string `form:"industries"`
	PostedDates []string `form:"posted_dates"`
	PostedBy    []string `form:"posted_by"`

	MinSalary     *float64 `form:"min_salary"`
	MaxSalary     *float64 `form:"max_salary"`
	MaxExperience *int     `form:"max_experience"`

	Sort   string   `form:"sort"`
	Page   int      `form:"page"`
	Expand []string `form:"expand"`
}

func (f searchForm) query() (view.SearchQuery, error) {
	exp, err := catalog.ParseExperienceBracket(f.Experience)
	if err != nil {
		return view.SearchQuery{}, err
	}
	sort, err := catalog.ParseSortKey(f.Sort)
	if err != nil {
		return view.SearchQuery{}, err
	}
	expand := make([]catalog.Facet, 0, len(f.Expand))
	for _, name := range f.Expand {
		facet, err := parseFacet(name)
		if err != nil {
			return view.SearchQuery{}, err
		}
		expand = append(expand, facet)
	}

	q := view.SearchQuery{
		Query:      f.Query,
		Location:   f.Location,
		Experience: exp,
		Sort:       sort,
		Page:       f.Page,
		Expand:     expand,
	}

	if sel := f.sidebar(); !sel.Empty() {
		sidebar, err := sel.Filters()
		if err != nil {
			return view.SearchQuery{}, err
		}
		q.Sidebar = &sidebar
	}
	return q, nil
}

func (f searchForm) sidebar() catalog.SidebarSelection {
	return catalog.SidebarSelection{
		Locations:     f.Locations,
		WorkTypes:     f.WorkTypes,
		Companies:     f.Companies,
		Education:     f.Education,
		Industries:    f.Industries,
		PostedDates:   f.PostedDates,
		PostedBy:      f.PostedBy,
		MinSalary:     f.MinSalary,
		MaxSalary:     f.MaxSalary,
		MaxExperience: f.MaxExperience,
	}
}

func parseFacet(name string) (catalog.Facet, error) {
	f := catalog.Facet(name)
	if !slices.Contains(catalog.Facets, f) {
		return "", fmt.Errorf("unknown facet %q", name)
	}
	return f, nil
}

// search runs a one-shot search against a freshly loaded catalog
func (h *Handler) search(c *gin.Context) {
	var form searchForm
	if err := c.ShouldBindQuery(&form); err != nil {
		badRequest(c, err)
		return
	}
	q, err := form.query()
	if err != nil {
		badRequest(c, err)
		return
	}

	state, err := view.RunSearch(c.Request.Context(), h.catalog, q, h.logger)
	if err != nil {
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state.Render())
}

// sessionPage is the body returned by every search session route
type sessionPage struct {
	ID   string          `json:"id"`
	Page view.SearchPage `json:"page"`
}

// openSearch mounts a search view kept across requests. The catalog load
// continues in the background; the response reports loading until it settles.
func (h *Handler) openSearch(c *gin.Context) {
	host := view.MountSearch(c.Request.Context(), h.catalog, h.logger)
	h.sessions.Add(host)
	c.JSON(http.StatusCreated, sessionPage{ID: host.ID(), Page: host.State().Render()})
}

func (h *Handler) getSearch(c *gin.Context) {
	host, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "search session not found"})
		return
	}
	c.JSON(http.StatusOK, sessionPage{ID: host.ID(), Page: host.State().Render()})
}

// eventRequest is one user event sent to a search session
type eventRequest struct {
	Type       string                    `json:"type" binding:"required"`
	Query      string                    `json:"query"`
	Location   string                    `json:"location"`
	Experience string                    `json:"experience"`
	Sidebar    *catalog.SidebarSelection `json:"sidebar"`
	Sort       string                    `json:"sort"`
	Facet      string                    `json:"facet"`
	Page       int                       `json:"page"`
}

func (r eventRequest) event() (view.Event, error) {
	switch r.Type {
	case "query_changed":
		exp, err := catalog.ParseExperienceBracket(r.Experience)
		if err != nil {
			return nil, err
		}
		return view.QueryChanged{Query: r.Query, Location: r.Location, Experience: exp}, nil
	case "query_applied":
		return view.QueryApplied{}, nil
	case "sidebar_applied":
		if r.Sidebar == nil {
			return nil, fmt.Errorf("sidebar_applied requires sidebar")
		}
		filters, err := r.Sidebar.Filters()
		if err != nil {
			return nil, err
		}
		return view.SidebarApplied{Filters: filters}, nil
	case "sidebar_cleared":
		return view.SidebarCleared{}, nil
	case "sort_changed":
		key, err := catalog.ParseSortKey(r.Sort)
		if err != nil {
			return nil, err
		}
		return view.SortChanged{Key: key}, nil
	case "facet_toggled":
		facet, err := parseFacet(r.Facet)
		if err != nil {
			return nil, err
		}
		return view.FacetToggled{Facet: facet}, nil
	case "page_changed":
		return view.PageChanged{Page: r.Page}, nil
	case "next_page":
		return view.NextPage{}, nil
	case "prev_page":
		return view.PrevPage{}, nil
	default:
		return nil, fmt.Errorf("unknown event %q", r.Type)
	}
}

// searchEvents applies a batch of events in order. The batch is validated
// before any event is dispatched.
func (h *Handler) searchEvents(c *gin.Context) {
	host, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "search session not found"})
		return
	}

	var body struct {
		Events []eventRequest `json:"events" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}

	events := make([]view.Event, 0, len(body.Events))
	for _, r := range body.Events {
		ev, err := r.event()
		if err != nil {
			badRequest(c, err)
			return
		}
		events = append(events, ev)
	}

	state := host.State()
	for _, ev := range events {
		state = host.Dispatch(ev)
	}
	c.JSON(http.StatusOK, sessionPage{ID: host.ID(), Page: state.Render()})
}

func (h *Handler) closeSearch(c *gin.Context) {
	if !h.sessions.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "search session not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
