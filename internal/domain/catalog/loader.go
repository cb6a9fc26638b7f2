package catalog

import (
	"context"
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/pkg/logging"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

// FetchFunc retrieves the raw records of one list endpoint
type FetchFunc func(ctx context.Context) ([]portalapi.Record, error)

// LoadResult is the settled state of a catalog fetch
type LoadResult struct {
	Jobs     []domain.JobPosting `json:"jobs"`
	Loading  bool                `json:"loading"`
	LoadedAt time.Time           `json:"loadedAt"`
	// Failed is set when the fetch failed and Jobs was downgraded to empty
	Failed bool `json:"-"`
}

// Loader fetches and normalizes one job list. It never returns an error:
// every failure settles as an empty list.
type Loader struct {
	name   string
	fetch  FetchFunc
	clock  func() time.Time
	logger *logging.Logger
}

func NewLoader(name string, fetch FetchFunc, clock func() time.Time, logger *logging.Logger) *Loader {
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Loader{name: name, fetch: fetch, clock: clock, logger: logger}
}

// Load performs the single fetch of a view
func (l *Loader) Load(ctx context.Context) LoadResult {
	now := l.clock()

	records, err := l.fetch(ctx)
	if err != nil {
		l.logger.Warn("catalog fetch failed, showing empty list", "list", l.name, "err", err)
		return LoadResult{Jobs: []domain.JobPosting{}, Loading: false, LoadedAt: now, Failed: true}
	}

	jobs := NormalizeJobs(records, now)
	l.logger.Debug("catalog loaded", "list", l.name, "jobs", len(jobs))

	return LoadResult{Jobs: jobs, Loading: false, LoadedAt: now}
}
