package catalog_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

type fakeAPI struct {
	catalog     []portalapi.Record
	companyJobs portalapi.CompanyJobs
	err         error
}

func (f *fakeAPI) FetchCatalog(context.Context) ([]portalapi.Record, error) {
	return f.catalog, f.err
}

func (f *fakeAPI) FetchJobCards(context.Context) ([]portalapi.Record, error) {
	return f.catalog, f.err
}

func (f *fakeAPI) Companies(context.Context) ([]portalapi.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []portalapi.Record{{"companyName": []byte(`"Acme"`)}}, nil
}

func (f *fakeAPI) CompanyJobs(context.Context, string) (portalapi.CompanyJobs, error) {
	return f.companyJobs, f.err
}

func (f *fakeAPI) SavedJobs(context.Context) ([]portalapi.Record, error) {
	return f.catalog, f.err
}

func (f *fakeAPI) AppliedJobs(context.Context) ([]portalapi.Record, error) {
	return f.catalog, f.err
}

type recordingRepo struct {
	recorded [][]domain.JobPosting
	err      error
}

func (r *recordingRepo) RecordCatalog(_ context.Context, jobs []domain.JobPosting, _ time.Time) error {
	r.recorded = append(r.recorded, jobs)
	return r.err
}

func (r *recordingRepo) CompanyStats(context.Context, int) ([]catalog.CompanyStat, error) {
	return []catalog.CompanyStat{{Company: "acme", Jobs: 2}}, r.err
}

func fixedClock() time.Time { return loadTime }

func TestNewService_RequiresAPI(t *testing.T) {
	_, err := catalog.NewService()
	assert.Error(t, err)
}

func TestService_CatalogRecordsSnapshot(t *testing.T) {
	repo := &recordingRepo{}
	api := &fakeAPI{catalog: records(t, `[{"title":"A"},{"id":"b","title":"B"}]`)}

	svc, err := catalog.NewService(catalog.WithAPI(api), catalog.WithRepository(repo), catalog.WithClock(fixedClock))
	require.NoError(t, err)

	res := svc.Catalog(context.Background())
	assert.False(t, res.Loading)
	assert.Equal(t, loadTime, res.LoadedAt)
	require.Len(t, res.Jobs, 2)
	assert.Equal(t, "0", res.Jobs[0].ID)
	assert.Equal(t, "b", res.Jobs[1].ID)

	require.Len(t, repo.recorded, 1)
	assert.Len(t, repo.recorded[0], 2)
}

func TestService_FailuresSettleEmpty(t *testing.T) {
	repo := &recordingRepo{}
	api := &fakeAPI{err: errors.New("connection refused")}

	svc, err := catalog.NewService(catalog.WithAPI(api), catalog.WithRepository(repo))
	require.NoError(t, err)

	ctx := context.Background()
	for name, res := range map[string]catalog.LoadResult{
		"catalog": svc.Catalog(ctx),
		"cards":   svc.JobCards(ctx),
		"saved":   svc.SavedJobs(ctx),
		"applied": svc.AppliedJobs(ctx),
	} {
		assert.False(t, res.Loading, name)
		assert.NotNil(t, res.Jobs, name)
		assert.Empty(t, res.Jobs, name)
	}

	assert.Empty(t, svc.Companies(ctx))
	assert.Empty(t, repo.recorded)
}

func TestService_RecordFailureDoesNotFailLoad(t *testing.T) {
	repo := &recordingRepo{err: errors.New("graph down")}
	api := &fakeAPI{catalog: records(t, `[{"title":"A"}]`)}

	svc, err := catalog.NewServiceWithDeps(api, repo, nil)
	require.NoError(t, err)

	res := svc.Catalog(context.Background())
	assert.Len(t, res.Jobs, 1)
}

func TestService_CompanyJobs(t *testing.T) {
	api := &fakeAPI{companyJobs: portalapi.CompanyJobs{
		Company: record(t, `{"companyName":"Acme","ratings":4}`),
		Jobs:    records(t, `[{"title":"A"},{"title":"B"}]`),
	}}

	svc, err := catalog.NewService(catalog.WithAPI(api))
	require.NoError(t, err)

	company, res := svc.CompanyJobs(context.Background(), "7")
	assert.Equal(t, "7", company.ID)
	assert.Equal(t, "Acme", company.Name)
	assert.Len(t, res.Jobs, 2)

	api.err = errors.New("404")
	company, res = svc.CompanyJobs(context.Background(), "9")
	assert.Equal(t, "9", company.ID)
	assert.Empty(t, res.Jobs)
}

func TestService_Stats(t *testing.T) {
	svc, err := catalog.NewService(catalog.WithAPI(&fakeAPI{}), catalog.WithRepository(&recordingRepo{}))
	require.NoError(t, err)

	stats, err := svc.Stats(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []catalog.CompanyStat{{Company: "acme", Jobs: 2}}, stats)
}
