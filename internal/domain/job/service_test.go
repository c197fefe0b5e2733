package job

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobshop/internal/domain"
	apperr "github.com/honeycarbs/jobshop/internal/errors"
)

type memoryCache struct {
	entries map[domain.QueryCriteria][]domain.JobPosting
	gets    int
	sets    int
	failSet bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[domain.QueryCriteria][]domain.JobPosting{}}
}

func (c *memoryCache) Get(_ context.Context, criteria domain.QueryCriteria) ([]domain.JobPosting, error) {
	c.gets++
	jobs, ok := c.entries[criteria]
	if !ok {
		return nil, errors.New("miss")
	}
	return jobs, nil
}

func (c *memoryCache) Set(_ context.Context, criteria domain.QueryCriteria, jobs []domain.JobPosting) error {
	c.sets++
	if c.failSet {
		return errors.New("cache down")
	}
	c.entries[criteria] = jobs
	return nil
}

func newTestService(t *testing.T, opts ...Option) Service {
	t.Helper()
	d, err := NewDirectory(sampleJobs(), testCategories)
	require.NoError(t, err)

	svc, err := NewService(append([]Option{WithDirectory(d)}, opts...)...)
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresDirectory(t *testing.T) {
	_, err := NewService()
	assert.Error(t, err)
}

func TestServiceSearch(t *testing.T) {
	svc := newTestService(t)

	c := domain.DefaultCriteria()
	c.SearchTerm = "acme"

	res, err := svc.Search(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, ids(res.Jobs))
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Matched)
	assert.Equal(t, c, res.Criteria)
}

func TestServiceSearchUsesCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newTestService(t, WithCache(cache))

	c := domain.DefaultCriteria()
	c.CategoryFilter = "Design"

	first, err := svc.Search(context.Background(), c)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, cache.gets)
	assert.Equal(t, 1, cache.sets)
}

func TestServiceSearchIgnoresCacheFailures(t *testing.T) {
	cache := newMemoryCache()
	cache.failSet = true
	svc := newTestService(t, WithCache(cache))

	res, err := svc.Search(context.Background(), domain.DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Matched)
}

func TestServiceSearchCachedEmptyResult(t *testing.T) {
	cache := newMemoryCache()
	c := domain.DefaultCriteria()
	c.SearchTerm = "nothing matches this"
	cache.entries[c] = nil

	svc := newTestService(t, WithCache(cache))
	res, err := svc.Search(context.Background(), c)
	require.NoError(t, err)
	assert.NotNil(t, res.Jobs)
	assert.Equal(t, 0, res.Matched)
}

func TestServiceGet(t *testing.T) {
	svc := newTestService(t)

	j, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Sales Executive", j.Title)

	_, err = svc.Get(context.Background(), "404")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.ErrTypeNotFound))
}

func TestServiceFilterOptions(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, "All", svc.Categories()[0])
	assert.Contains(t, svc.Types(), "Internship")
}

func TestNewServiceWithDepsAllowsNilCache(t *testing.T) {
	d, err := NewDirectory(sampleJobs(), testCategories)
	require.NoError(t, err)

	svc, err := NewServiceWithDeps(d, nil, nil)
	require.NoError(t, err)

	res, err := svc.Search(context.Background(), domain.DefaultCriteria())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Matched)
}
