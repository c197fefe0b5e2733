package job

import (
	"context"
	"fmt"

	"github.com/honeycarbs/jobshop/internal/domain"
)

// Source supplies the posting collection once at startup (embedded
// catalog, a catalog file, Neo4j, ...)
type Source interface {
	// e.g. "embedded" or "neo4j"
	Name() string

	// Load returns every posting in display order
	Load(ctx context.Context) ([]domain.JobPosting, error)
}

// ResultCache memoizes filter results by criteria. Implementations may
// drop entries at any time; the service treats every error as a miss.
type ResultCache interface {
	Get(ctx context.Context, criteria domain.QueryCriteria) ([]domain.JobPosting, error)
	Set(ctx context.Context, criteria domain.QueryCriteria, jobs []domain.JobPosting) error
}

// LoadDirectory reads src once and builds the read-only directory from it
func LoadDirectory(ctx context.Context, src Source, categories []string) (*Directory, error) {
	if src == nil {
		return nil, fmt.Errorf("job.LoadDirectory: source is required")
	}

	jobs, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.LoadDirectory: load from %s: %w", src.Name(), err)
	}

	return NewDirectory(jobs, categories)
}
