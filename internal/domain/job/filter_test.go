package job

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/jobshop/internal/domain"
)

func sampleJobs() []domain.JobPosting {
	return []domain.JobPosting{
		{
			ID:          "1",
			Title:       "Senior Graphic Designer",
			Company:     "Acme Ads",
			Location:    "Mumbai, Maharashtra",
			Type:        domain.JobTypeFullTime,
			Description: "Own the visual identity of our clients.",
			Category:    "Design",
			Skills:      []string{"Photoshop", "Branding"},
		},
		{
			ID:          "2",
			Title:       "Backend Engineer",
			Company:     "Acme Ads",
			Location:    "Bengaluru, Karnataka",
			Type:        domain.JobTypeFullTime,
			Description: "Build APIs for the ad platform.",
			Category:    "IT & Software",
			Skills:      []string{"Go", "SQL"},
		},
		{
			ID:          "3",
			Title:       "Sales Executive",
			Company:     "Beta Corp",
			Location:    "Pune, Maharashtra",
			Type:        domain.JobTypeContract,
			Description: "Grow enterprise accounts.",
			Category:    "Sales",
			Skills:      []string{"Negotiation"},
		},
	}
}

func ids(jobs []domain.JobPosting) []string {
	out := make([]string, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.ID)
	}
	return out
}

func criteria(mutate func(*domain.QueryCriteria)) domain.QueryCriteria {
	c := domain.DefaultCriteria()
	mutate(&c)
	return c
}

func TestFilterJobs(t *testing.T) {
	tests := []struct {
		name     string
		criteria domain.QueryCriteria
		expected []string
	}{
		{
			name:     "default criteria returns everything",
			criteria: domain.DefaultCriteria(),
			expected: []string{"1", "2", "3"},
		},
		{
			name:     "search matches company across postings in order",
			criteria: criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "acme" }),
			expected: []string{"1", "2"},
		},
		{
			name:     "search matches title",
			criteria: criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "engineer" }),
			expected: []string{"2"},
		},
		{
			name:     "search matches description",
			criteria: criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "ENTERPRISE" }),
			expected: []string{"3"},
		},
		{
			name:     "search matches any skill",
			criteria: criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "sq" }),
			expected: []string{"2"},
		},
		{
			name:     "location is a case-insensitive substring",
			criteria: criteria(func(c *domain.QueryCriteria) { c.LocationFilter = "MAHARASHTRA" }),
			expected: []string{"1", "3"},
		},
		{
			name:     "category is exact",
			criteria: criteria(func(c *domain.QueryCriteria) { c.CategoryFilter = "Design" }),
			expected: []string{"1"},
		},
		{
			name:     "category is case-sensitive",
			criteria: criteria(func(c *domain.QueryCriteria) { c.CategoryFilter = "design" }),
			expected: []string{},
		},
		{
			name:     "type is exact",
			criteria: criteria(func(c *domain.QueryCriteria) { c.TypeFilter = "Contract" }),
			expected: []string{"3"},
		},
		{
			name:     "type is case-sensitive",
			criteria: criteria(func(c *domain.QueryCriteria) { c.TypeFilter = "full-time" }),
			expected: []string{},
		},
		{
			name: "dimensions combine conjunctively",
			criteria: criteria(func(c *domain.QueryCriteria) {
				c.TypeFilter = "Contract"
				c.SearchTerm = "acme"
			}),
			expected: []string{},
		},
		{
			name: "search hit excluded by category",
			criteria: criteria(func(c *domain.QueryCriteria) {
				c.SearchTerm = "designer"
				c.CategoryFilter = "Sales"
			}),
			expected: []string{},
		},
		{
			name:     "unknown category fails closed",
			criteria: criteria(func(c *domain.QueryCriteria) { c.CategoryFilter = "Astronautics" }),
			expected: []string{},
		},
		{
			name:     "empty category is not the sentinel",
			criteria: criteria(func(c *domain.QueryCriteria) { c.CategoryFilter = "" }),
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterJobs(sampleJobs(), tt.criteria)
			assert.NotNil(t, got)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilterJobsIdentity(t *testing.T) {
	jobs := sampleJobs()

	got := FilterJobs(jobs, domain.DefaultCriteria())

	assert.Equal(t, jobs, got)
}

func TestFilterJobsSubsetAndOrder(t *testing.T) {
	jobs := sampleJobs()
	position := map[string]int{}
	for i, j := range jobs {
		position[j.ID] = i
	}

	queries := []domain.QueryCriteria{
		criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "a" }),
		criteria(func(c *domain.QueryCriteria) { c.LocationFilter = "a" }),
		criteria(func(c *domain.QueryCriteria) { c.TypeFilter = "Full-time" }),
		criteria(func(c *domain.QueryCriteria) {
			c.SearchTerm = "e"
			c.LocationFilter = "u"
		}),
	}

	for _, q := range queries {
		got := FilterJobs(jobs, q)
		last := -1
		for _, j := range got {
			pos, ok := position[j.ID]
			assert.True(t, ok, "result %q is not in the input", j.ID)
			assert.Equal(t, jobs[pos], j)
			assert.Greater(t, pos, last, "relative order must be preserved")
			last = pos
		}
	}
}

func TestFilterJobsSearchIsCaseInsensitive(t *testing.T) {
	jobs := append(sampleJobs(), domain.JobPosting{
		ID:       "4",
		Title:    "Frontend Developer",
		Company:  "Gamma",
		Type:     domain.JobTypeInternship,
		Category: "IT & Software",
		Skills:   []string{"React", "TypeScript"},
	})

	upper := FilterJobs(jobs, criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "REACT" }))
	lower := FilterJobs(jobs, criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "react" }))

	assert.Equal(t, lower, upper)
	assert.Equal(t, []string{"4"}, ids(upper))
}

func TestFilterJobsNoMatchIsEmptyNotError(t *testing.T) {
	term := uuid.NewString()

	got := FilterJobs(sampleJobs(), criteria(func(c *domain.QueryCriteria) { c.SearchTerm = term }))

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterJobsEmptyDataset(t *testing.T) {
	assert.Empty(t, FilterJobs(nil, domain.DefaultCriteria()))
	assert.Empty(t, FilterJobs([]domain.JobPosting{}, domain.DefaultCriteria()))
}

func TestFilterJobsMissingFieldsDoNotMatch(t *testing.T) {
	jobs := []domain.JobPosting{{ID: "bare", Title: "Analyst", Company: "Delta"}}

	assert.Len(t, FilterJobs(jobs, domain.DefaultCriteria()), 1)
	assert.Empty(t, FilterJobs(jobs, criteria(func(c *domain.QueryCriteria) { c.LocationFilter = "delhi" })))
	assert.Empty(t, FilterJobs(jobs, criteria(func(c *domain.QueryCriteria) { c.CategoryFilter = "Finance" })))
	assert.Empty(t, FilterJobs(jobs, criteria(func(c *domain.QueryCriteria) { c.TypeFilter = "Full-time" })))
	assert.Empty(t, FilterJobs(jobs, criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "python" })))
}

func TestFilterJobsDoesNotMutateInput(t *testing.T) {
	jobs := sampleJobs()
	before := sampleJobs()

	_ = FilterJobs(jobs, criteria(func(c *domain.QueryCriteria) { c.SearchTerm = "acme" }))

	assert.Equal(t, before, jobs)
}
