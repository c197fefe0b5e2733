package neo4j

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/honeycarbs/jobshop/internal/domain"
	"github.com/honeycarbs/jobshop/internal/domain/job"
	apperr "github.com/honeycarbs/jobshop/internal/errors"

	pkgneo4j "github.com/honeycarbs/jobshop/pkg/neo4j"
)

// Ensure JobRepository can back the directory
var _ job.Source = (*JobRepository)(nil)

// JobRepository stores postings as a graph: each Job is POSTED_BY a
// Company, IN_CATEGORY a Category and REQUIRES its Skills in order
type JobRepository struct {
	client *pkgneo4j.Client
}

// NewJobRepository creates a JobRepository with a Neo4j client
func NewJobRepository(client *pkgneo4j.Client) *JobRepository {
	return &JobRepository{
		client: client,
	}
}

func (r *JobRepository) Name() string {
	return "neo4j"
}

const upsertJobsQuery = `
	UNWIND $jobs AS job
	MERGE (j:Job {id: job.id})
	SET j.title = job.title,
	    j.location = job.location,
	    j.type = job.type,
	    j.salary = job.salary,
	    j.experience = job.experience,
	    j.description = job.description,
	    j.postedDate = job.postedDate,
	    j.seq = CASE WHEN $keepSeq AND j.seq IS NOT NULL THEN j.seq ELSE $base + job.seq END
	WITH j, job
	OPTIONAL MATCH (j)-[old:POSTED_BY|IN_CATEGORY|REQUIRES]->()
	DELETE old
	WITH DISTINCT j, job
	MERGE (c:Company {slug: job.company.slug})
	ON CREATE SET c.name = job.company.name
	MERGE (j)-[:POSTED_BY {name: job.company.name}]->(c)
	WITH j, job
	FOREACH (_ IN CASE WHEN job.category = '' THEN [] ELSE [1] END |
		MERGE (cat:Category {name: job.category})
		MERGE (j)-[:IN_CATEGORY]->(cat)
	)
	FOREACH (skill IN job.skills |
		MERGE (s:Skill {slug: skill.slug})
		ON CREATE SET s.name = skill.name
		CREATE (j)-[:REQUIRES {position: skill.position, name: skill.name}]->(s)
	)
`

const nextSeqQuery = `
	MATCH (j:Job)
	RETURN coalesce(max(j.seq), -1) + 1 AS next
`

const pruneJobsQuery = `
	MATCH (j:Job)
	WHERE NOT j.id IN $ids
	DETACH DELETE j
`

const selectJobsQuery = `
	MATCH (j:Job)
	WHERE $id IS NULL OR j.id = $id
	OPTIONAL MATCH (j)-[p:POSTED_BY]->(:Company)
	OPTIONAL MATCH (j)-[:IN_CATEGORY]->(cat:Category)
	OPTIONAL MATCH (j)-[r:REQUIRES]->(:Skill)
	WITH j, p, cat, r
	ORDER BY r.position
	WITH j, p, cat, collect(r.name) AS skills
	RETURN j.id AS id,
	       j.title AS title,
	       p.name AS company,
	       j.location AS location,
	       j.type AS type,
	       j.salary AS salary,
	       j.experience AS experience,
	       j.description AS description,
	       j.postedDate AS postedDate,
	       cat.name AS category,
	       skills
	ORDER BY j.seq, j.id
`

// UpsertJobs merges postings into the graph. Existing postings keep their
// display position; new ones are appended after every stored posting in
// batch order. Relationships of an existing posting are replaced.
func (r *JobRepository) UpsertJobs(ctx context.Context, jobs []domain.JobPosting) error {
	if len(jobs) == 0 {
		return nil
	}

	session := r.client.WriteSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, nextSeqQuery, nil)
		if err != nil {
			return nil, err
		}
		record, err := res.Single(ctx)
		if err != nil {
			return nil, err
		}
		next, _ := record.Get("next")
		base, ok := next.(int64)
		if !ok {
			return nil, fmt.Errorf("unexpected seq value %T", next)
		}
		return runConsume(ctx, tx, upsertJobsQuery, upsertParams(jobs, true, base))
	})
	if err != nil {
		return fmt.Errorf("neo4j: upsert jobs: %w", err)
	}
	return nil
}

// ReplaceAll makes the stored postings exactly jobs, in one transaction
func (r *JobRepository) ReplaceAll(ctx context.Context, jobs []domain.JobPosting) error {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}

	session := r.client.WriteSession(ctx)
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		if _, err := runConsume(ctx, tx, pruneJobsQuery, map[string]any{"ids": ids}); err != nil {
			return nil, err
		}
		if len(jobs) == 0 {
			return nil, nil
		}
		return runConsume(ctx, tx, upsertJobsQuery, upsertParams(jobs, false, 0))
	})
	if err != nil {
		return fmt.Errorf("neo4j: replace jobs: %w", err)
	}
	return nil
}

// Load returns every stored posting in display order
func (r *JobRepository) Load(ctx context.Context) ([]domain.JobPosting, error) {
	jobs, err := r.selectJobs(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("neo4j: load jobs: %w", err)
	}
	return jobs, nil
}

// FindByID loads a single posting
func (r *JobRepository) FindByID(ctx context.Context, id string) (domain.JobPosting, error) {
	jobs, err := r.selectJobs(ctx, id)
	if err != nil {
		return domain.JobPosting{}, apperr.Internal("failed to load job "+id, err)
	}
	if len(jobs) == 0 {
		return domain.JobPosting{}, apperr.NotFound("job "+id+" not found", nil)
	}
	return jobs[0], nil
}

func (r *JobRepository) selectJobs(ctx context.Context, id any) ([]domain.JobPosting, error) {
	session := r.client.ReadSession(ctx)
	defer session.Close(ctx)

	result, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, selectJobsQuery, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	})
	if err != nil {
		return nil, err
	}

	records := result.([]*neo4j.Record)
	jobs := make([]domain.JobPosting, 0, len(records))
	for _, record := range records {
		jobs = append(jobs, postingFromRecord(record))
	}
	return jobs, nil
}

func runConsume(ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]any) (any, error) {
	result, err := tx.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return result.Consume(ctx)
}

// upsertParams binds a batch. With keepSeq, postings already stored keep
// their seq and new ones get base plus their batch index.
func upsertParams(jobs []domain.JobPosting, keepSeq bool, base int64) map[string]any {
	return map[string]any{
		"jobs":    jobParams(jobs),
		"keepSeq": keepSeq,
		"base":    base,
	}
}

func jobParams(jobs []domain.JobPosting) []map[string]any {
	out := make([]map[string]any, 0, len(jobs))
	for i, j := range jobs {
		skills := make([]map[string]any, 0, len(j.Skills))
		for pos, name := range j.Skills {
			skills = append(skills, map[string]any{
				"slug":     nodeKey(name),
				"name":     name,
				"position": pos,
			})
		}

		out = append(out, map[string]any{
			"id":          j.ID,
			"title":       j.Title,
			"company":     map[string]any{"slug": nodeKey(j.Company), "name": j.Company},
			"location":    j.Location,
			"type":        string(j.Type),
			"salary":      j.Salary,
			"experience":  j.Experience,
			"description": j.Description,
			"postedDate":  j.PostedDate,
			"category":    j.Category,
			"skills":      skills,
			"seq":         i,
		})
	}
	return out
}

func nodeKey(name string) string {
	if s := slug(name); s != "" {
		return s
	}
	return name
}

func postingFromRecord(record *neo4j.Record) domain.JobPosting {
	skills := make([]string, 0)
	if raw, ok := record.Get("skills"); ok {
		if list, ok := raw.([]any); ok {
			for _, v := range list {
				if s, ok := v.(string); ok {
					skills = append(skills, s)
				}
			}
		}
	}

	return domain.JobPosting{
		ID:          stringValue(record, "id"),
		Title:       stringValue(record, "title"),
		Company:     stringValue(record, "company"),
		Location:    stringValue(record, "location"),
		Type:        domain.JobType(stringValue(record, "type")),
		Salary:      stringValue(record, "salary"),
		Experience:  stringValue(record, "experience"),
		Description: stringValue(record, "description"),
		PostedDate:  stringValue(record, "postedDate"),
		Category:    stringValue(record, "category"),
		Skills:      skills,
	}
}

// stringValue reads a nullable string column
func stringValue(record *neo4j.Record, key string) string {
	v, ok := record.Get(key)
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
