package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobshop/internal/domain"
	"github.com/honeycarbs/jobshop/internal/domain/job"
	"github.com/honeycarbs/jobshop/pkg/logging"
)

// Criteria mirrors the listings page filters
type Criteria struct {
	Search   string `json:"search,omitempty" jsonschema:"Free text matched against title, company, description and skills"`
	Location string `json:"location,omitempty" jsonschema:"Case-insensitive location substring"`
	Category string `json:"category,omitempty" jsonschema:"Exact category name, All or empty for every category"`
	Type     string `json:"type,omitempty" jsonschema:"Full-time, Part-time, Contract or Internship; All or empty for every type"`
}

func (c Criteria) query() domain.QueryCriteria {
	return domain.QueryCriteria{
		SearchTerm:     c.Search,
		LocationFilter: c.Location,
		CategoryFilter: c.Category,
		TypeFilter:     c.Type,
	}.Normalize()
}

// JobSummary is the compact listing card of a posting
type JobSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Category string `json:"category"`
	Salary   string `json:"salary,omitempty"`
}

type JobSearchResult struct {
	Total   int          `json:"total" jsonschema:"Postings in the directory"`
	Matched int          `json:"matched" jsonschema:"Postings matching the criteria"`
	Jobs    []JobSummary `json:"jobs"`
}

type JobIDParams struct {
	ID string `json:"id" jsonschema:"Posting identifier"`
}

type FiltersParams struct{}

type FiltersResult struct {
	Categories []string `json:"categories"`
	Types      []string `json:"types"`
}

type jobTools struct {
	service job.Service
	logger  *logging.Logger
}

// WithJobTools registers job_search, job_detail and job_filters
func WithJobTools(service job.Service) Option {
	return func(reg *registry) {
		t := jobTools{service: service, logger: reg.logger}

		addTool(reg, &sdkmcp.Tool{
			Name:        "job_search",
			Description: "Filter the agency's job directory by text, location, category and type",
		}, t.search)

		addTool(reg, &sdkmcp.Tool{
			Name:        "job_detail",
			Description: "Return the full posting for one job id",
		}, t.detail)

		addTool(reg, &sdkmcp.Tool{
			Name:        "job_filters",
			Description: "List the category and job type filter options",
		}, t.filters)
	}
}

func (t jobTools) search(ctx context.Context, _ *sdkmcp.CallToolRequest, params *Criteria) (*sdkmcp.CallToolResult, JobSearchResult, error) {
	if t.service == nil {
		return nil, JobSearchResult{}, fmt.Errorf("job service not configured")
	}
	if params == nil {
		params = &Criteria{}
	}

	res, err := t.service.Search(ctx, params.query())
	if err != nil {
		t.logger.Error("job_search failed", "err", err)
		return nil, JobSearchResult{}, err
	}

	out := JobSearchResult{
		Total:   res.Total,
		Matched: res.Matched,
		Jobs:    make([]JobSummary, 0, len(res.Jobs)),
	}
	for _, j := range res.Jobs {
		out.Jobs = append(out.Jobs, JobSummary{
			ID:       j.ID,
			Title:    j.Title,
			Company:  j.Company,
			Location: j.Location,
			Type:     string(j.Type),
			Category: j.Category,
			Salary:   j.Salary,
		})
	}

	t.logger.Debug("job_search completed", "matched", out.Matched, "total", out.Total)
	return textResult("Showing %d of %d jobs", out.Matched, out.Total), out, nil
}

func (t jobTools) detail(ctx context.Context, _ *sdkmcp.CallToolRequest, params *JobIDParams) (*sdkmcp.CallToolResult, domain.JobPosting, error) {
	if t.service == nil {
		return nil, domain.JobPosting{}, fmt.Errorf("job service not configured")
	}
	if params == nil || params.ID == "" {
		return nil, domain.JobPosting{}, fmt.Errorf("id is required")
	}

	posting, err := t.service.Get(ctx, params.ID)
	if err != nil {
		return nil, domain.JobPosting{}, err
	}
	return textResult("%s at %s (%s)", posting.Title, posting.Company, posting.Location), posting, nil
}

func (t jobTools) filters(_ context.Context, _ *sdkmcp.CallToolRequest, _ *FiltersParams) (*sdkmcp.CallToolResult, FiltersResult, error) {
	if t.service == nil {
		return nil, FiltersResult{}, fmt.Errorf("job service not configured")
	}

	out := FiltersResult{
		Categories: t.service.Categories(),
		Types:      t.service.Types(),
	}
	return textResult("%d categories, %d types", len(out.Categories), len(out.Types)), out, nil
}
