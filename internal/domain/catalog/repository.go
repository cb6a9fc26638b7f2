package catalog

import (
	"context"
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
)

// Repository records loaded catalogs for later inspection
type Repository interface {
	// RecordCatalog stores a snapshot of a freshly loaded catalog
	RecordCatalog(ctx context.Context, jobs []domain.JobPosting, loadedAt time.Time) error

	// CompanyStats returns per-company job counts of the recorded catalog
	CompanyStats(ctx context.Context, limit int) ([]CompanyStat, error)
}

// CompanyStat aggregates recorded jobs of one company
type CompanyStat struct {
	Company   string   `json:"company"`
	Jobs      int      `json:"jobs"`
	TopSkills []string `json:"topSkills"`
}

type nopRepository struct{}

func (nopRepository) RecordCatalog(context.Context, []domain.JobPosting, time.Time) error {
	return nil
}

func (nopRepository) CompanyStats(context.Context, int) ([]CompanyStat, error) {
	return []CompanyStat{}, nil
}

// NopRepository discards snapshots
func NopRepository() Repository {
	return nopRepository{}
}
