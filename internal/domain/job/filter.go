package job

import (
	"strings"

	"github.com/honeycarbs/jobshop/internal/domain"
)

// FilterJobs returns the postings that satisfy every active dimension of
// criteria, in input order. It never mutates jobs or criteria.
//
// Text and location match case-insensitive substrings; category and type
// must equal the posting's value exactly unless set to domain.AllSentinel.
// An unknown category or type therefore matches nothing.
func FilterJobs(jobs []domain.JobPosting, criteria domain.QueryCriteria) []domain.JobPosting {
	term := strings.ToLower(criteria.SearchTerm)
	location := strings.ToLower(criteria.LocationFilter)

	out := make([]domain.JobPosting, 0, len(jobs))
	for _, j := range jobs {
		if !matchesText(j, term) {
			continue
		}
		if !matchesLocation(j, location) {
			continue
		}
		if !matchesExact(j.Category, criteria.CategoryFilter) {
			continue
		}
		if !matchesExact(string(j.Type), criteria.TypeFilter) {
			continue
		}
		out = append(out, j)
	}

	return out
}

// term is already lowercased
func matchesText(j domain.JobPosting, term string) bool {
	if term == "" {
		return true
	}

	if containsFold(j.Title, term) || containsFold(j.Company, term) || containsFold(j.Description, term) {
		return true
	}

	for _, skill := range j.Skills {
		if containsFold(skill, term) {
			return true
		}
	}

	return false
}

func matchesLocation(j domain.JobPosting, location string) bool {
	return location == "" || containsFold(j.Location, location)
}

// An empty field never matches a non-empty needle, so a posting missing
// the field drops out of that dimension instead of failing.
func containsFold(field, lowerNeedle string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), lowerNeedle)
}

func matchesExact(value, filter string) bool {
	if filter == domain.AllSentinel {
		return true
	}
	return value != "" && value == filter
}
