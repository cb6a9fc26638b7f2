package neo4j

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobportal/internal/domain"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"

	pkgneo4j "github.com/honeycarbs/jobportal/pkg/neo4j"
)

var _ catalog.Repository = (*CatalogRepository)(nil)

// CatalogRepository records catalog snapshots as a Job/Company/Skill graph
type CatalogRepository struct {
	client *pkgneo4j.Client
}

func NewCatalogRepository(client *pkgneo4j.Client) *CatalogRepository {
	return &CatalogRepository{client: client}
}

// RecordCatalog merges every posting with its company and skills and
// links it to a new Snapshot node
func (r *CatalogRepository) RecordCatalog(ctx context.Context, jobs []domain.JobPosting, loadedAt time.Time) error {
	if len(jobs) == 0 {
		return nil
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		CREATE (snap:Snapshot {id: $snapshotId, loadedAt: datetime({epochMillis: $loadedAt}), size: $size})
		WITH snap
		UNWIND $jobs AS job
		MERGE (j:Job {id: job.id})
		SET j.title = job.title,
		    j.location = job.location,
		    j.salary = job.salary,
		    j.experience = job.experience,
		    j.workType = job.workType,
		    j.postedBy = job.postedBy,
		    j.ratings = job.ratings,
		    j.postedAt = datetime({epochMillis: job.postedAt})
		MERGE (snap)-[:INCLUDES]->(j)
		WITH j, job
		FOREACH (_ IN CASE WHEN job.company.key = '' THEN [] ELSE [1] END |
			MERGE (c:Company {key: job.company.key})
			SET c.name = job.company.name
			MERGE (j)-[:POSTED_BY]->(c)
		)
		WITH j, job
		FOREACH (skill IN job.skills |
			MERGE (s:Skill {key: skill.key})
			SET s.name = skill.name
			MERGE (j)-[:REQUIRES]->(s)
		)
	`

	jobsData := make([]map[string]any, 0, len(jobs))
	for _, job := range jobs {
		skills := make([]map[string]any, 0, len(job.KeySkills))
		seen := make(map[string]struct{}, len(job.KeySkills))
		for _, skill := range job.KeySkills {
			key := catalog.Fold(skill)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			skills = append(skills, map[string]any{"key": key, "name": skill})
		}

		jobsData = append(jobsData, map[string]any{
			"id":         job.ID,
			"title":      job.Title,
			"company":    map[string]any{"key": catalog.Fold(job.Company), "name": job.Company},
			"location":   job.Location,
			"salary":     job.Salary,
			"experience": job.Experience,
			"workType":   job.WorkType,
			"postedBy":   job.PostedBy,
			"ratings":    job.Ratings,
			"postedAt":   job.PostedAt.UnixMilli(),
			"skills":     skills,
		})
	}

	params := map[string]any{
		"snapshotId": uuid.NewString(),
		"loadedAt":   loadedAt.UnixMilli(),
		"size":       len(jobs),
		"jobs":       jobsData,
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})
	if err != nil {
		return fmt.Errorf("neo4j: record catalog: %w", err)
	}
	return nil
}

// CompanyStats counts recorded jobs per company, busiest first, with the
// three most requested skills of each
func (r *CatalogRepository) CompanyStats(ctx context.Context, limit int) ([]catalog.CompanyStat, error) {
	if limit <= 0 {
		limit = 10
	}

	session := r.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := `
		MATCH (j:Job)-[:POSTED_BY]->(c:Company)
		WITH c, count(DISTINCT j) AS jobs
		ORDER BY jobs DESC, c.name ASC
		LIMIT $limit
		OPTIONAL MATCH (c)<-[:POSTED_BY]-(:Job)-[:REQUIRES]->(s:Skill)
		WITH c, jobs, s, count(s) AS uses
		ORDER BY jobs DESC, c.name ASC, uses DESC, s.name ASC
		WITH c, jobs, collect(s.name)[0..3] AS skills
		RETURN c.name AS company, jobs, skills
		ORDER BY jobs DESC, company ASC
	`

	out, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"limit": limit})
		if err != nil {
			return nil, err
		}

		stats := make([]catalog.CompanyStat, 0, limit)
		for result.Next(ctx) {
			rec := result.Record()
			stats = append(stats, companyStat(rec))
		}
		return stats, result.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("neo4j: company stats: %w", err)
	}
	return out.([]catalog.CompanyStat), nil
}

func companyStat(rec *neo4j.Record) catalog.CompanyStat {
	stat := catalog.CompanyStat{TopSkills: []string{}}

	if v, ok := rec.Get("company"); ok {
		stat.Company, _ = v.(string)
	}
	if v, ok := rec.Get("jobs"); ok {
		if n, ok := v.(int64); ok {
			stat.Jobs = int(n)
		}
	}
	if v, ok := rec.Get("skills"); ok {
		if list, ok := v.([]any); ok {
			for _, item := range list {
				if name, ok := item.(string); ok {
					stat.TopSkills = append(stat.TopSkills, name)
				}
			}
		}
	}
	return stat
}
