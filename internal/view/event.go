package view

import (
	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
)

// Event is a named transition applied to a view state
type Event interface {
	eventName() string
}

// Mounted starts the single fetch of a view
type Mounted struct{}

// FetchResolved delivers the settled catalog of a job list view
type FetchResolved struct {
	Result catalog.LoadResult
}

// QueryChanged edits the uncommitted search bar
type QueryChanged struct {
	Query      string
	Location   string
	Experience catalog.ExperienceBracket
}

// QueryApplied commits the search bar draft as the applied snapshot
type QueryApplied struct{}

// SidebarApplied commits a new sidebar snapshot
type SidebarApplied struct {
	Filters catalog.SidebarFilters
}

// SidebarCleared resets the sidebar snapshot to its defaults
type SidebarCleared struct{}

type SortChanged struct {
	Key catalog.SortKey
}

// FacetToggled expands or collapses a facet's value list
type FacetToggled struct {
	Facet catalog.Facet
}

// PageChanged jumps to a page, clamped to the valid range
type PageChanged struct {
	Page int
}

type NextPage struct{}

type PrevPage struct{}

// CompaniesResolved delivers the company directory
type CompaniesResolved struct {
	Companies []domain.Company
}

// MyJobsResolved delivers both lists of the my jobs view
type MyJobsResolved struct {
	Saved   catalog.LoadResult
	Applied catalog.LoadResult
}

// TabChanged switches the visible tab of the my jobs view
type TabChanged struct {
	Tab MyJobsTab
}

// NotificationsResolved delivers a user's notifications
type NotificationsResolved struct {
	Items []domain.Notification
}

type NotificationRead struct{ ID string }

type NotificationUnread struct{ ID string }

type NotificationDeleted struct{ ID string }

type NotificationsCleared struct{}

func (Mounted) eventName() string               { return "mounted" }
func (FetchResolved) eventName() string         { return "fetch_resolved" }
func (QueryChanged) eventName() string          { return "query_changed" }
func (QueryApplied) eventName() string          { return "query_applied" }
func (SidebarApplied) eventName() string        { return "sidebar_applied" }
func (SidebarCleared) eventName() string        { return "sidebar_cleared" }
func (SortChanged) eventName() string           { return "sort_changed" }
func (FacetToggled) eventName() string          { return "facet_toggled" }
func (PageChanged) eventName() string           { return "page_changed" }
func (NextPage) eventName() string              { return "next_page" }
func (PrevPage) eventName() string              { return "prev_page" }
func (CompaniesResolved) eventName() string     { return "companies_resolved" }
func (MyJobsResolved) eventName() string        { return "my_jobs_resolved" }
func (TabChanged) eventName() string            { return "tab_changed" }
func (NotificationsResolved) eventName() string { return "notifications_resolved" }
func (NotificationRead) eventName() string      { return "notification_read" }
func (NotificationUnread) eventName() string    { return "notification_unread" }
func (NotificationDeleted) eventName() string   { return "notification_deleted" }
func (NotificationsCleared) eventName() string  { return "notifications_cleared" }

// Name returns the wire name of an event
func Name(e Event) string {
	return e.eventName()
}
