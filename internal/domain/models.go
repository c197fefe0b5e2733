package domain

// AllSentinel disables the category and type filters
const AllSentinel = "All"

// JobType is the employment arrangement of a posting
type JobType string

const (
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeContract   JobType = "Contract"
	JobTypeInternship JobType = "Internship"
)

// JobTypes lists every valid job type in display order
var JobTypes = []JobType{
	JobTypeFullTime,
	JobTypePartTime,
	JobTypeContract,
	JobTypeInternship,
}

// Valid reports whether t is one of the known job types
func (t JobType) Valid() bool {
	for _, known := range JobTypes {
		if t == known {
			return true
		}
	}
	return false
}

// JobPosting is one open position in the agency's directory
type JobPosting struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Company     string   `json:"company" yaml:"company"`
	Location    string   `json:"location" yaml:"location"`
	Type        JobType  `json:"type" yaml:"type"`
	Salary      string   `json:"salary" yaml:"salary"`
	Experience  string   `json:"experience" yaml:"experience"`
	Description string   `json:"description" yaml:"description"`
	PostedDate  string   `json:"postedDate" yaml:"postedDate"`
	Category    string   `json:"category" yaml:"category"`
	Skills      []string `json:"skills" yaml:"skills"`
}

// QueryCriteria is the user-driven filter state of the listings view
type QueryCriteria struct {
	SearchTerm     string `json:"searchTerm"`
	LocationFilter string `json:"locationFilter"`
	CategoryFilter string `json:"categoryFilter"`
	TypeFilter     string `json:"typeFilter"`
}

// DefaultCriteria is the cleared filter state: every posting matches
func DefaultCriteria() QueryCriteria {
	return QueryCriteria{
		CategoryFilter: AllSentinel,
		TypeFilter:     AllSentinel,
	}
}

// Normalize maps an empty category or type to AllSentinel. Transports
// apply it to caller input; the filter itself treats "" as matching nothing.
func (c QueryCriteria) Normalize() QueryCriteria {
	if c.CategoryFilter == "" {
		c.CategoryFilter = AllSentinel
	}
	if c.TypeFilter == "" {
		c.TypeFilter = AllSentinel
	}
	return c
}

// HasActiveFilters reports whether any dimension differs from its default
func (c QueryCriteria) HasActiveFilters() bool {
	return c != DefaultCriteria()
}

// JobSearchResult wraps a filtered view of the directory
type JobSearchResult struct {
	Jobs     []JobPosting  `json:"jobs"`
	Total    int           `json:"total"`
	Matched  int           `json:"matched"`
	Criteria QueryCriteria `json:"criteria"`
}
