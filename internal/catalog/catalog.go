// Package catalog holds the agency's static job catalog: the postings shown
// on the careers page and the fixed list of job categories.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/honeycarbs/jobshop/internal/domain"
	"github.com/honeycarbs/jobshop/internal/domain/job"
)

//go:embed jobs.yaml
var embeddedCatalog []byte

// File is the on-disk shape of a catalog
type File struct {
	Categories []string            `yaml:"categories"`
	Jobs       []domain.JobPosting `yaml:"jobs"`
}

// Parse decodes a YAML catalog, rejecting unknown fields
func Parse(data []byte) (File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("catalog: decode: %w", err)
	}

	for i := range f.Jobs {
		if f.Jobs[i].Skills == nil {
			f.Jobs[i].Skills = []string{}
		}
	}

	return f, nil
}

var embedded = mustParse(embeddedCatalog)

func mustParse(data []byte) File {
	f, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return f
}

// Categories returns the fixed category names of the embedded catalog
func Categories() []string {
	return slices.Clone(embedded.Categories)
}

// Source implements job.Source over a parsed catalog
type Source struct {
	name string
	file File
}

var _ job.Source = (*Source)(nil)

// Embedded returns the catalog compiled into the binary
func Embedded() *Source {
	return &Source{name: "embedded", file: embedded}
}

// FromFile reads a catalog from path. Categories missing from the file are
// taken from the embedded catalog.
func FromFile(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if len(f.Categories) == 0 {
		f.Categories = Categories()
	}

	return &Source{name: "file:" + path, file: f}, nil
}

func (s *Source) Name() string {
	return s.name
}

// Load returns a copy of the catalog postings
func (s *Source) Load(_ context.Context) ([]domain.JobPosting, error) {
	out := make([]domain.JobPosting, len(s.file.Jobs))
	for i, j := range s.file.Jobs {
		j.Skills = slices.Clone(j.Skills)
		out[i] = j
	}
	return out, nil
}

// Categories returns the category names declared by this catalog
func (s *Source) Categories() []string {
	return slices.Clone(s.file.Categories)
}
