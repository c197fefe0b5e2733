package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/honeycarbs/jobshop/internal/domain"
	"github.com/honeycarbs/jobshop/internal/domain/job"
)

const jobKeyPrefix = "jobs:v1:"

// JobResults stores filter results in a Cache as JSON, keyed by a hash of
// the criteria and the catalog they were computed from
type JobResults struct {
	cache     Cache
	namespace string
	ttl       time.Duration
}

var _ job.ResultCache = (*JobResults)(nil)

// Namespace scopes cached results to one directory's content, so a
// reseeded or redeployed catalog never reads results of the previous one.
func Namespace(source string, dir *job.Directory) string {
	return source + "@" + dir.Fingerprint()
}

// NewJobResults wraps c. namespace must change whenever the catalog does;
// build it with Namespace.
func NewJobResults(c Cache, namespace string, ttl time.Duration) *JobResults {
	return &JobResults{cache: c, namespace: namespace, ttl: ttl}
}

func (r *JobResults) Get(ctx context.Context, criteria domain.QueryCriteria) ([]domain.JobPosting, error) {
	data, err := r.cache.Get(ctx, r.key(criteria))
	if err != nil {
		return nil, err
	}

	var jobs []domain.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("cache: decode job results: %w", err)
	}
	return jobs, nil
}

func (r *JobResults) Set(ctx context.Context, criteria domain.QueryCriteria, jobs []domain.JobPosting) error {
	data, err := json.Marshal(jobs)
	if err != nil {
		return fmt.Errorf("cache: encode job results: %w", err)
	}
	return r.cache.Set(ctx, r.key(criteria), data, r.ttl)
}

func (r *JobResults) key(criteria domain.QueryCriteria) string {
	h := sha256.New()
	h.Write([]byte(r.namespace))
	h.Write([]byte{0})
	for _, part := range []string{
		criteria.SearchTerm,
		criteria.LocationFilter,
		criteria.CategoryFilter,
		criteria.TypeFilter,
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return jobKeyPrefix + hex.EncodeToString(h.Sum(nil))
}
