package view

import (
	"context"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/pkg/logging"
)

// NotificationSource loads a user's notifications, empty on failure
type NotificationSource interface {
	List(ctx context.Context, userID string) []domain.Notification
}

// MountSearch creates a search view and starts loading the catalog
func MountSearch(ctx context.Context, svc catalog.Service, logger *logging.Logger) *Host[Search] {
	h := NewHost(NewSearch(), ReduceSearch, logger)
	h.Mount(ctx, func(ctx context.Context) Event {
		return FetchResolved{Result: svc.Catalog(ctx)}
	})
	return h
}

// MountJobCards creates the jobs tab view
func MountJobCards(ctx context.Context, svc catalog.Service, logger *logging.Logger) *Host[List] {
	h := NewHost(NewList(), ReduceList, logger)
	h.Mount(ctx, func(ctx context.Context) Event {
		return FetchResolved{Result: svc.JobCards(ctx)}
	})
	return h
}

// MountCompanyJobs creates the openings view of one company
func MountCompanyJobs(ctx context.Context, svc catalog.Service, companyID string, logger *logging.Logger) *Host[List] {
	h := NewHost(NewList(), ReduceList, logger)
	h.Mount(ctx, func(ctx context.Context) Event {
		company, res := svc.CompanyJobs(ctx, companyID)
		return CompanyResolved{Company: company, FetchResolved: FetchResolved{Result: res}}
	})
	return h
}

func MountCompanies(ctx context.Context, svc catalog.Service, logger *logging.Logger) *Host[Companies] {
	h := NewHost(Companies{Items: []domain.Company{}}, ReduceCompanies, logger)
	h.Mount(ctx, func(ctx context.Context) Event {
		return CompaniesResolved{Companies: svc.Companies(ctx)}
	})
	return h
}

// MountMyJobs loads the saved and applied lists one after the other
func MountMyJobs(ctx context.Context, svc catalog.Service, logger *logging.Logger) *Host[MyJobs] {
	h := NewHost(NewMyJobs(), ReduceMyJobs, logger)
	h.Mount(ctx, func(ctx context.Context) Event {
		return MyJobsResolved{Saved: svc.SavedJobs(ctx), Applied: svc.AppliedJobs(ctx)}
	})
	return h
}

func MountNotifications(ctx context.Context, src NotificationSource, userID string, logger *logging.Logger) *Host[Notifications] {
	h := NewHost(NewNotifications(), ReduceNotifications, logger)
	h.Mount(ctx, func(ctx context.Context) Event {
		return NotificationsResolved{Items: src.List(ctx, userID)}
	})
	return h
}
