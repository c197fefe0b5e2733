// Package adzuna imports live Indian job adverts from Adzuna as directory
// postings.
package adzuna

import (
	"context"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/honeycarbs/jobshop/internal/domain"
	jobdomain "github.com/honeycarbs/jobshop/internal/domain/job"
	"github.com/honeycarbs/jobshop/pkg/adzuna"
)

// IDPrefix keeps imported ids apart from catalog ids
const IDPrefix = "adzuna-"

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, query string, params adzuna.SearchParams) ([]adzuna.Job, error)
}

// Query is one keyword search whose results are filed under Category
type Query struct {
	What     string
	Where    string
	Category string
}

// ParseQueries reads "keywords=Category" pairs separated by semicolons,
// e.g. "graphic designer=Design;golang=IT & Software".
func ParseQueries(s, where string) ([]Query, error) {
	var out []Query
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		what, category, ok := strings.Cut(part, "=")
		what, category = strings.TrimSpace(what), strings.TrimSpace(category)
		if !ok || what == "" || category == "" {
			return nil, fmt.Errorf("adzuna: query %q must look like keywords=Category", part)
		}
		out = append(out, Query{What: what, Where: where, Category: category})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("adzuna: no queries given")
	}
	return out, nil
}

type Option func(*Provider)

// WithClock overrides the time used for relative posted dates
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// Provider implements job.Source by running a fixed set of Adzuna searches
type Provider struct {
	client  searchClient
	queries []Query
	policy  *bluemonday.Policy
	now     func() time.Time
}

var _ jobdomain.Source = (*Provider)(nil)

// NewProvider builds an Adzuna provider
func NewProvider(client searchClient, queries []Query, opts ...Option) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("adzuna provider: at least one query is required")
	}

	p := &Provider{
		client:  client,
		queries: queries,
		policy:  bluemonday.StrictPolicy(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "adzuna"
}

// Load runs every query in order. Adverts seen by an earlier query, or
// lacking a title or company, are skipped.
func (p *Provider) Load(ctx context.Context) ([]domain.JobPosting, error) {
	seen := make(map[string]struct{})
	var out []domain.JobPosting

	for _, q := range p.queries {
		jobs, err := p.client.SearchJobs(ctx, q.What, adzuna.SearchParams{Location: q.Where})
		if err != nil {
			return nil, fmt.Errorf("adzuna provider: search %q: %w", q.What, err)
		}

		for _, j := range jobs {
			posting := p.posting(j, q.Category)
			if posting.Title == "" || posting.Company == "" {
				continue
			}
			if _, dup := seen[posting.ID]; dup {
				continue
			}
			seen[posting.ID] = struct{}{}
			out = append(out, posting)
		}
	}

	return out, nil
}

func (p *Provider) posting(j adzuna.Job, category string) domain.JobPosting {
	return domain.JobPosting{
		ID:          IDPrefix + j.ID,
		Title:       j.Title,
		Company:     j.CompanyName,
		Location:    j.Location,
		Type:        jobType(j),
		Salary:      salary(j.SalaryMin, j.SalaryMax),
		Experience:  "Not specified",
		Description: strings.TrimSpace(html.UnescapeString(p.policy.Sanitize(j.Description))),
		PostedDate:  postedAgo(p.now(), j.PostedAt),
		Category:    category,
		Skills:      []string{},
	}
}

func jobType(j adzuna.Job) domain.JobType {
	switch {
	case j.ContractType == "contract":
		return domain.JobTypeContract
	case strings.Contains(strings.ToLower(j.Title), "intern"):
		return domain.JobTypeInternship
	case j.ContractTime == "part_time":
		return domain.JobTypePartTime
	default:
		return domain.JobTypeFullTime
	}
}

// salary renders annual rupee amounts in lakhs per annum
func salary(lo, hi float64) string {
	switch {
	case lo > 0 && hi > 0 && lakhs(lo) != lakhs(hi):
		return "₹" + lakhs(lo) + "-" + lakhs(hi) + " LPA"
	case hi > 0:
		return "₹" + lakhs(hi) + " LPA"
	case lo > 0:
		return "₹" + lakhs(lo) + " LPA"
	default:
		return "Not disclosed"
	}
}

func lakhs(v float64) string {
	return strconv.FormatFloat(math.Round(v/1e4)/10, 'f', -1, 64)
}

func postedAgo(now, t time.Time) string {
	if t.IsZero() {
		return "Recently"
	}

	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 14:
		return "1 week ago"
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	case days < 60:
		return "1 month ago"
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
