package job

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/honeycarbs/jobshop/internal/domain"
)

// Directory is the read-only posting collection loaded at startup
type Directory struct {
	jobs        []domain.JobPosting
	byID        map[string]int
	categories  []string
	fingerprint string
}

// NewDirectory validates jobs and freezes a private copy of them.
// Categories are the valid category names, without the All sentinel.
func NewDirectory(jobs []domain.JobPosting, categories []string) (*Directory, error) {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if c == "" || c == domain.AllSentinel {
			return nil, fmt.Errorf("job.Directory: invalid category name %q", c)
		}
		known[c] = struct{}{}
	}

	d := &Directory{
		jobs:       make([]domain.JobPosting, 0, len(jobs)),
		byID:       make(map[string]int, len(jobs)),
		categories: slices.Clone(categories),
	}

	for i, j := range jobs {
		if j.ID == "" {
			return nil, fmt.Errorf("job.Directory: posting %d has no id", i)
		}
		if _, dup := d.byID[j.ID]; dup {
			return nil, fmt.Errorf("job.Directory: duplicate posting id %q", j.ID)
		}
		if j.Title == "" || j.Company == "" {
			return nil, fmt.Errorf("job.Directory: posting %q needs a title and company", j.ID)
		}
		if !j.Type.Valid() {
			return nil, fmt.Errorf("job.Directory: posting %q has unknown type %q", j.ID, j.Type)
		}
		if len(known) > 0 {
			if _, ok := known[j.Category]; !ok {
				return nil, fmt.Errorf("job.Directory: posting %q has unknown category %q", j.ID, j.Category)
			}
		}

		j.Skills = slices.Clone(j.Skills)
		d.byID[j.ID] = len(d.jobs)
		d.jobs = append(d.jobs, j)
	}

	fp, err := fingerprint(d.jobs, d.categories)
	if err != nil {
		return nil, err
	}
	d.fingerprint = fp

	return d, nil
}

func fingerprint(jobs []domain.JobPosting, categories []string) (string, error) {
	data, err := json.Marshal(struct {
		Jobs       []domain.JobPosting `json:"jobs"`
		Categories []string            `json:"categories"`
	}{jobs, categories})
	if err != nil {
		return "", fmt.Errorf("job.Directory: fingerprint: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Fingerprint is a content hash of the postings, their order and the
// category set. Two directories share it only if they filter identically.
func (d *Directory) Fingerprint() string {
	if d == nil {
		return ""
	}
	return d.fingerprint
}

// All returns a copy of every posting in load order
func (d *Directory) All() []domain.JobPosting {
	if d == nil {
		return nil
	}
	return slices.Clone(d.jobs)
}

// Len returns the number of postings
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.jobs)
}

// FindByID looks up a posting by its identifier
func (d *Directory) FindByID(id string) (domain.JobPosting, bool) {
	if d == nil {
		return domain.JobPosting{}, false
	}
	i, ok := d.byID[id]
	if !ok {
		return domain.JobPosting{}, false
	}
	j := d.jobs[i]
	j.Skills = slices.Clone(j.Skills)
	return j, true
}

// Categories returns the category filter options, All first
func (d *Directory) Categories() []string {
	out := []string{domain.AllSentinel}
	if d == nil {
		return out
	}
	return append(out, d.categories...)
}

// Types returns the job type filter options, All first
func (d *Directory) Types() []string {
	out := make([]string, 0, len(domain.JobTypes)+1)
	out = append(out, domain.AllSentinel)
	for _, t := range domain.JobTypes {
		out = append(out, string(t))
	}
	return out
}

// Filter applies criteria to the whole directory
func (d *Directory) Filter(criteria domain.QueryCriteria) []domain.JobPosting {
	if d == nil {
		return []domain.JobPosting{}
	}
	return FilterJobs(d.jobs, criteria)
}
