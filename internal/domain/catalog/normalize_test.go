package catalog_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

var loadTime = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func records(t *testing.T, body string) []portalapi.Record {
	t.Helper()
	return portalapi.Records(portalapi.CoerceList([]byte(body)))
}

func record(t *testing.T, body string) portalapi.Record {
	t.Helper()
	var rec portalapi.Record
	require.NoError(t, json.Unmarshal([]byte(body), &rec))
	return rec
}

func TestNormalizeJob_FullRecord(t *testing.T) {
	rec := record(t, `{
		"id": 42,
		"title": "Backend Engineer",
		"company": "Acme",
		"location": "Pune",
		"salary": "₹20 LPA",
		"experience": "5 years",
		"work_type": "Full-time",
		"posted_by": "Company",
		"created_at": "2025-03-10T08:30:00.123456Z",
		"rating": 4.2,
		"key_skills": ["Go", "SQL"],
		"education_required": ["B.Tech"],
		"industry_type": ["IT-Software"],
		"tags": ["urgent"],
		"job_description": "<p>Build APIs</p>",
		"openings": 3,
		"applicants": "12",
		"job_highlights": ["Remote friendly", "Stock options"]
	}`)

	job := catalog.NormalizeJob(rec, 7, loadTime)

	assert.Equal(t, "42", job.ID)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Acme", job.Company)
	assert.Equal(t, "Full-time", job.WorkType)
	assert.Equal(t, "Company", job.PostedBy)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 30, 0, 123456000, time.UTC), job.PostedAt)
	assert.InDelta(t, 4.2, job.Ratings, 1e-9)
	assert.Equal(t, []string{"Go", "SQL"}, job.KeySkills)
	assert.Equal(t, []string{"B.Tech"}, job.EducationRequired)
	assert.Equal(t, []string{"IT-Software"}, job.IndustryType)
	assert.Equal(t, []string{"urgent"}, job.Tags)
	assert.Equal(t, "<p>Build APIs</p>", job.Description)
	assert.Equal(t, 3, job.Openings)
	assert.Equal(t, 12, job.Applicants)
	assert.Equal(t, "Remote friendly\nStock options", job.JobHighlights)
}

func TestNormalizeJob_Defaults(t *testing.T) {
	job := catalog.NormalizeJob(record(t, `{}`), 3, loadTime)

	assert.Equal(t, "3", job.ID)
	assert.Equal(t, loadTime, job.PostedAt)
	assert.Zero(t, job.Ratings)
	assert.Empty(t, job.Title)
	assert.NotNil(t, job.KeySkills)
	assert.NotNil(t, job.EducationRequired)
	assert.NotNil(t, job.IndustryType)
	assert.NotNil(t, job.Tags)
}

func TestNormalizeJob_AlternateShapes(t *testing.T) {
	rec := record(t, `{
		"id": "job-9",
		"company": {"companyName": "Globex", "companyId": "5"},
		"WorkType": "Remote",
		"PostedBy": "recruiter1",
		"posted": "2025-03-01",
		"ratings": "3.5",
		"IndustryType": "Finance",
		"KeySkills": ["Excel", 7, null, ""],
		"created_at": null
	}`)

	job := catalog.NormalizeJob(rec, 0, loadTime)

	assert.Equal(t, "job-9", job.ID)
	assert.Equal(t, "Globex", job.Company)
	assert.Equal(t, "Remote", job.WorkType)
	assert.Equal(t, "recruiter1", job.PostedBy)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), job.PostedAt)
	assert.InDelta(t, 3.5, job.Ratings, 1e-9)
	assert.Equal(t, []string{"Finance"}, job.IndustryType)
	assert.Equal(t, []string{"Excel", "7"}, job.KeySkills)
}

func TestNormalizeJob_UnparseableTimeFallsBack(t *testing.T) {
	job := catalog.NormalizeJob(record(t, `{"created_at":"yesterday-ish"}`), 0, loadTime)
	assert.Equal(t, loadTime, job.PostedAt)
}

func TestNormalizeJobs_IndexFallbackFollowsPosition(t *testing.T) {
	jobs := catalog.NormalizeJobs(records(t, `[{"id":"a"},{},{"id":""},{"id":0}]`), loadTime)
	require.Len(t, jobs, 4)

	ids := []string{jobs[0].ID, jobs[1].ID, jobs[2].ID, jobs[3].ID}
	assert.Equal(t, []string{"a", "1", "2", "0"}, ids)
}

func TestNormalizeCompany(t *testing.T) {
	cs := catalog.NormalizeCompanies(records(t, `{
		"x": {"companyId": "11", "companyName": "Acme", "ratings": 4.5, "reviewNo": 20, "TopCompany": true, "slogan": "We build"},
		"y": {"name": "Initech"},
		"z": {}
	}`))
	require.Len(t, cs, 3)

	assert.Equal(t, "11", cs[0].ID)
	assert.Equal(t, "Acme", cs[0].Name)
	assert.InDelta(t, 4.5, cs[0].Ratings, 1e-9)
	assert.Equal(t, 20, cs[0].Reviews)
	assert.True(t, cs[0].TopCompany)
	assert.Equal(t, "We build", cs[0].Slogan)

	assert.Equal(t, "Initech", cs[1].ID)
	assert.Equal(t, "2", cs[2].ID)
}
