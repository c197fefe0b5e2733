package job

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobshop/internal/domain"
	apperr "github.com/honeycarbs/jobshop/internal/errors"
	"github.com/honeycarbs/jobshop/pkg/logging"
)

type Service interface {
	Search(ctx context.Context, criteria domain.QueryCriteria) (domain.JobSearchResult, error)
	Get(ctx context.Context, id string) (domain.JobPosting, error)
	Categories() []string
	Types() []string
}

// Option configures Service
type Option func(*config)

type config struct {
	directory *Directory
	cache     ResultCache
	logger    *logging.Logger
}

// WithDirectory sets the posting collection
func WithDirectory(d *Directory) Option {
	return func(c *config) {
		c.directory = d
	}
}

// WithCache memoizes search results
func WithCache(cache ResultCache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithLogger sets the logger
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.directory == nil {
		return nil, fmt.Errorf("job.Service: directory is required")
	}
	if cfg.logger == nil {
		cfg.logger = logging.Nop()
	}

	return &service{
		directory: cfg.directory,
		cache:     cfg.cache,
		logger:    cfg.logger,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible).
// cache may be nil.
func NewServiceWithDeps(directory *Directory, cache ResultCache, logger *logging.Logger) (Service, error) {
	opts := []Option{WithDirectory(directory), WithLogger(logger)}
	if cache != nil {
		opts = append(opts, WithCache(cache))
	}
	return NewService(opts...)
}

type service struct {
	directory *Directory
	cache     ResultCache
	logger    *logging.Logger
}

// Search filters the directory with criteria
func (s *service) Search(ctx context.Context, criteria domain.QueryCriteria) (domain.JobSearchResult, error) {
	jobs, hit := s.cached(ctx, criteria)
	if !hit {
		jobs = s.directory.Filter(criteria)
		s.store(ctx, criteria, jobs)
	}

	return domain.JobSearchResult{
		Jobs:     jobs,
		Total:    s.directory.Len(),
		Matched:  len(jobs),
		Criteria: criteria,
	}, nil
}

func (s *service) cached(ctx context.Context, criteria domain.QueryCriteria) ([]domain.JobPosting, bool) {
	if s.cache == nil {
		return nil, false
	}

	jobs, err := s.cache.Get(ctx, criteria)
	if err != nil {
		s.logger.Debug("search cache miss", "err", err)
		return nil, false
	}
	if jobs == nil {
		jobs = []domain.JobPosting{}
	}
	return jobs, true
}

func (s *service) store(ctx context.Context, criteria domain.QueryCriteria, jobs []domain.JobPosting) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, criteria, jobs); err != nil {
		s.logger.Warn("failed to cache search result", "err", err)
	}
}

// Get loads one posting by id
func (s *service) Get(_ context.Context, id string) (domain.JobPosting, error) {
	j, ok := s.directory.FindByID(id)
	if !ok {
		return domain.JobPosting{}, apperr.NotFound(fmt.Sprintf("job %q not found", id), nil)
	}
	return j, nil
}

func (s *service) Categories() []string {
	return s.directory.Categories()
}

func (s *service) Types() []string {
	return s.directory.Types()
}
