package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeJobs maps raw records to fully populated postings. now is the
// load time used for records without a posting timestamp.
func NormalizeJobs(records []portalapi.Record, now time.Time) []domain.JobPosting {
	jobs := make([]domain.JobPosting, 0, len(records))
	for i, rec := range records {
		jobs = append(jobs, NormalizeJob(rec, i, now))
	}
	return jobs
}

// NormalizeJob maps one record. index is the record's position in the
// response and becomes the identifier when the record carries none.
func NormalizeJob(rec portalapi.Record, index int, now time.Time) domain.JobPosting {
	job := domain.JobPosting{
		ID:                str(rec, "id", "job_id", "jobId"),
		Title:             str(rec, "title", "job_title"),
		Company:           str(rec, "company", "company_name", "companyName"),
		Location:          str(rec, "location"),
		Salary:            str(rec, "salary"),
		Experience:        str(rec, "experience"),
		WorkType:          str(rec, "work_type", "WorkType", "workType"),
		PostedBy:          str(rec, "posted_by", "PostedBy", "postedBy"),
		PostedAt:          parseTime(str(rec, "created_at", "posted"), now),
		Ratings:           number(rec, "rating", "ratings"),
		KeySkills:         list(rec, "key_skills", "KeySkills", "keySkills"),
		EducationRequired: list(rec, "education_required", "EducationRequired", "educationRequired"),
		IndustryType:      list(rec, "industry_type", "IndustryType", "industryType"),
		Tags:              list(rec, "tags"),
		Description:       text(rec, "job_description", "jobDescription", "description"),
		Logo:              str(rec, "logo", "logo_url"),
		Department:        text(rec, "department", "Department"),
		Openings:          integer(rec, "openings"),
		Applicants:        integer(rec, "applicants"),
		JobHighlights:     text(rec, "job_highlights", "JobHighlights"),
		CompanyOverview:   text(rec, "company_overview", "companyOverview"),
		Responsibilities:  text(rec, "responsibilities", "Responsibilities"),
	}

	if job.ID == "" {
		job.ID = strconv.Itoa(index)
	}

	return job
}

// NormalizeCompanies maps company directory records
func NormalizeCompanies(records []portalapi.Record) []domain.Company {
	out := make([]domain.Company, 0, len(records))
	for i, rec := range records {
		out = append(out, NormalizeCompany(rec, i))
	}
	return out
}

// NormalizeCompany maps one company record, falling back to the name and
// then the position for the identifier
func NormalizeCompany(rec portalapi.Record, index int) domain.Company {
	c := domain.Company{
		ID:          str(rec, "companyId", "id"),
		Name:        str(rec, "companyName", "name"),
		Logo:        str(rec, "logo_url", "logo"),
		Slogan:      str(rec, "slogan"),
		Ratings:     number(rec, "ratings", "rating"),
		Reviews:     integer(rec, "reviewNo", "review_count"),
		TopCompany:  boolean(rec, "TopCompany"),
		Description: str(rec, "description"),
		Website:     str(rec, "website"),
	}

	if c.ID == "" {
		c.ID = c.Name
	}
	if c.ID == "" {
		c.ID = strconv.Itoa(index)
	}
	return c
}

func parseTime(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return fallback
}
