package view

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/pkg/logging"
)

// SearchQuery is a complete search view interaction: the search bar, the
// sidebar, the sort and the page, applied in that order
type SearchQuery struct {
	Query      string
	Location   string
	Experience catalog.ExperienceBracket
	Sidebar    *catalog.SidebarFilters
	Sort       catalog.SortKey
	Page       int
	Expand     []catalog.Facet
}

// Events returns the user events that reproduce the query on a loaded view
func (q SearchQuery) Events() []Event {
	events := []Event{
		QueryChanged{Query: q.Query, Location: q.Location, Experience: q.Experience},
		QueryApplied{},
	}
	if q.Sidebar != nil {
		events = append(events, SidebarApplied{Filters: *q.Sidebar})
	}
	if q.Sort != catalog.SortNone {
		events = append(events, SortChanged{Key: q.Sort})
	}
	for _, f := range q.Expand {
		events = append(events, FacetToggled{Facet: f})
	}
	if q.Page > 1 {
		events = append(events, PageChanged{Page: q.Page})
	}
	return events
}

// RunSearch mounts a search view, waits for its catalog, replays the query
// and returns the final state. The view is unmounted before returning.
func RunSearch(ctx context.Context, svc catalog.Service, q SearchQuery, logger *logging.Logger) (Search, error) {
	h := MountSearch(ctx, svc, logger)
	defer h.Unmount()

	if err := h.Wait(ctx); err != nil {
		return Search{}, fmt.Errorf("view: search: %w", err)
	}

	state := h.State()
	for _, ev := range q.Events() {
		state = h.Dispatch(ev)
	}
	return state, nil
}

// RunList mounts a list view with mount, waits for it and moves to page
func RunList(ctx context.Context, mount func(context.Context) *Host[List], page int) (List, error) {
	h := mount(ctx)
	defer h.Unmount()

	if err := h.Wait(ctx); err != nil {
		return List{}, fmt.Errorf("view: list: %w", err)
	}
	if page > 1 {
		return h.Dispatch(PageChanged{Page: page}), nil
	}
	return h.State(), nil
}

// Settle waits for a freshly mounted host and returns its state
func Settle[S any](ctx context.Context, h *Host[S]) (S, error) {
	if err := h.Wait(ctx); err != nil {
		var zero S
		return zero, fmt.Errorf("view: %w", err)
	}
	return h.State(), nil
}
