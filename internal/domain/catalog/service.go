package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/pkg/logging"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

// API is the subset of the portal API the catalog reads from
type API interface {
	FetchCatalog(ctx context.Context) ([]portalapi.Record, error)
	FetchJobCards(ctx context.Context) ([]portalapi.Record, error)
	Companies(ctx context.Context) ([]portalapi.Record, error)
	CompanyJobs(ctx context.Context, companyID string) (portalapi.CompanyJobs, error)
	SavedJobs(ctx context.Context) ([]portalapi.Record, error)
	AppliedJobs(ctx context.Context) ([]portalapi.Record, error)
}

var _ API = (*portalapi.Client)(nil)

// Service loads the job lists behind every view
type Service interface {
	// Catalog loads the search catalog
	Catalog(ctx context.Context) LoadResult
	// JobCards loads the jobs tab list
	JobCards(ctx context.Context) LoadResult
	// Companies loads the company directory, empty on failure
	Companies(ctx context.Context) []domain.Company
	// CompanyJobs loads one company and its openings
	CompanyJobs(ctx context.Context, companyID string) (domain.Company, LoadResult)
	SavedJobs(ctx context.Context) LoadResult
	AppliedJobs(ctx context.Context) LoadResult
	// Stats summarizes recorded catalogs per company
	Stats(ctx context.Context, limit int) ([]CompanyStat, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	api    API
	repo   Repository
	clock  func() time.Time
	logger *logging.Logger
}

// WithAPI sets the portal API
func WithAPI(api API) Option {
	return func(c *config) {
		c.api = api
	}
}

// WithRepository sets where loaded catalogs are recorded
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock:  time.Now,
		repo:   NopRepository(),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.api == nil {
		return nil, fmt.Errorf("catalog.Service: api is required")
	}
	if cfg.repo == nil {
		cfg.repo = NopRepository()
	}
	if cfg.logger == nil {
		cfg.logger = logging.Nop()
	}

	return &service{
		api:    cfg.api,
		repo:   cfg.repo,
		clock:  cfg.clock,
		logger: cfg.logger.Named("catalog"),
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(api API, repo Repository, logger *logging.Logger) (Service, error) {
	return NewService(WithAPI(api), WithRepository(repo), WithLogger(logger))
}

type service struct {
	api    API
	repo   Repository
	clock  func() time.Time
	logger *logging.Logger
}

func (s *service) loader(name string, fetch FetchFunc) *Loader {
	return NewLoader(name, fetch, s.clock, s.logger)
}

func (s *service) Catalog(ctx context.Context) LoadResult {
	res := s.loader("catalog", s.api.FetchCatalog).Load(ctx)
	if !res.Failed && len(res.Jobs) > 0 {
		if err := s.repo.RecordCatalog(ctx, res.Jobs, res.LoadedAt); err != nil {
			s.logger.Warn("failed to record catalog snapshot", "jobs", len(res.Jobs), "err", err)
		}
	}
	return res
}

func (s *service) JobCards(ctx context.Context) LoadResult {
	return s.loader("job_cards", s.api.FetchJobCards).Load(ctx)
}

func (s *service) SavedJobs(ctx context.Context) LoadResult {
	return s.loader("saved_jobs", s.api.SavedJobs).Load(ctx)
}

func (s *service) AppliedJobs(ctx context.Context) LoadResult {
	return s.loader("applied_jobs", s.api.AppliedJobs).Load(ctx)
}

func (s *service) Companies(ctx context.Context) []domain.Company {
	records, err := s.api.Companies(ctx)
	if err != nil {
		s.logger.Warn("companies fetch failed, showing empty list", "err", err)
		return []domain.Company{}
	}
	return NormalizeCompanies(records)
}

func (s *service) CompanyJobs(ctx context.Context, companyID string) (domain.Company, LoadResult) {
	company := domain.Company{ID: companyID}

	var header portalapi.Record
	res := s.loader("company_jobs", func(ctx context.Context) ([]portalapi.Record, error) {
		out, err := s.api.CompanyJobs(ctx, companyID)
		if err != nil {
			return nil, err
		}
		header = out.Company
		return out.Jobs, nil
	}).Load(ctx)

	if header != nil {
		company = NormalizeCompany(header, 0)
		if str(header, "companyId", "id") == "" {
			company.ID = companyID
		}
	}

	return company, res
}

func (s *service) Stats(ctx context.Context, limit int) ([]CompanyStat, error) {
	if limit <= 0 {
		limit = 10
	}
	stats, err := s.repo.CompanyStats(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("catalog: company stats: %w", err)
	}
	return stats, nil
}
