package job

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobshop/internal/domain"
)

var testCategories = []string{"IT & Software", "Design", "Sales"}

func TestNewDirectory(t *testing.T) {
	d, err := NewDirectory(sampleJobs(), testCategories)
	require.NoError(t, err)

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, sampleJobs(), d.All())
	assert.Equal(t, []string{"All", "IT & Software", "Design", "Sales"}, d.Categories())
	assert.Equal(t, []string{"All", "Full-time", "Part-time", "Contract", "Internship"}, d.Types())

	j, ok := d.FindByID("2")
	require.True(t, ok)
	assert.Equal(t, "Backend Engineer", j.Title)

	_, ok = d.FindByID("missing")
	assert.False(t, ok)
}

func TestNewDirectoryRejectsBadPostings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]domain.JobPosting) []domain.JobPosting
		errMsg string
	}{
		{
			name: "duplicate id",
			mutate: func(js []domain.JobPosting) []domain.JobPosting {
				js[1].ID = js[0].ID
				return js
			},
			errMsg: "duplicate posting id",
		},
		{
			name: "missing id",
			mutate: func(js []domain.JobPosting) []domain.JobPosting {
				js[2].ID = ""
				return js
			},
			errMsg: "has no id",
		},
		{
			name: "missing title",
			mutate: func(js []domain.JobPosting) []domain.JobPosting {
				js[0].Title = ""
				return js
			},
			errMsg: "needs a title",
		},
		{
			name: "unknown type",
			mutate: func(js []domain.JobPosting) []domain.JobPosting {
				js[0].Type = "Freelance"
				return js
			},
			errMsg: "unknown type",
		},
		{
			name: "unknown category",
			mutate: func(js []domain.JobPosting) []domain.JobPosting {
				js[0].Category = "Astronautics"
				return js
			},
			errMsg: "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDirectory(tt.mutate(sampleJobs()), testCategories)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNewDirectoryRejectsSentinelCategory(t *testing.T) {
	_, err := NewDirectory(nil, []string{"All"})
	assert.Error(t, err)
}

func TestDirectoryIsIsolatedFromCaller(t *testing.T) {
	jobs := sampleJobs()
	d, err := NewDirectory(jobs, testCategories)
	require.NoError(t, err)

	jobs[0].Title = "changed"
	jobs[0].Skills[0] = "changed"

	all := d.All()
	all[1].Title = "changed too"

	j, _ := d.FindByID("1")
	assert.Equal(t, "Senior Graphic Designer", j.Title)
	assert.Equal(t, "Photoshop", j.Skills[0])

	j, _ = d.FindByID("2")
	assert.Equal(t, "Backend Engineer", j.Title)
}

func TestEmptyDirectoryFiltersToEmpty(t *testing.T) {
	d, err := NewDirectory(nil, testCategories)
	require.NoError(t, err)

	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Filter(domain.DefaultCriteria()))
}

type staticSource struct {
	jobs []domain.JobPosting
	err  error
}

func (s staticSource) Name() string { return "static" }

func (s staticSource) Load(context.Context) ([]domain.JobPosting, error) {
	return s.jobs, s.err
}

func TestLoadDirectory(t *testing.T) {
	d, err := LoadDirectory(context.Background(), staticSource{jobs: sampleJobs()}, testCategories)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Len())

	_, err = LoadDirectory(context.Background(), staticSource{err: errors.New("offline")}, testCategories)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "static")

	_, err = LoadDirectory(context.Background(), nil, testCategories)
	assert.Error(t, err)
}

func TestDirectoryFingerprint(t *testing.T) {
	a, err := NewDirectory(sampleJobs(), testCategories)
	require.NoError(t, err)
	b, err := NewDirectory(sampleJobs(), testCategories)
	require.NoError(t, err)

	assert.Len(t, a.Fingerprint(), 64)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())

	reordered := sampleJobs()
	reordered[0], reordered[1] = reordered[1], reordered[0]
	c, err := NewDirectory(reordered, testCategories)
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	d, err := NewDirectory(sampleJobs(), append(testCategories, "Finance"))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())

	var nilDir *Directory
	assert.Empty(t, nilDir.Fingerprint())
}
