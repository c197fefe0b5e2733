// Package site describes the public website's page map and the small set
// of presentation tokens shared by its pages.
package site

import (
	"strings"
)

// Page is one routable page of the site
type Page struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	// Nav marks pages linked from the main navigation bar
	Nav bool `json:"nav"`
	// CTA marks the highlighted call-to-action link
	CTA bool `json:"cta,omitempty"`
}

// JobDetailPattern is the route of a single posting
const JobDetailPattern = "/jobs/{id}"

var pages = []Page{
	{Path: "/", Title: "Home", Nav: true},
	{Path: "/about", Title: "About Us", Nav: true},
	{Path: "/headhunting", Title: "Headhunting", Nav: true},
	{Path: "/employers", Title: "For Employers", Nav: true},
	{Path: "/clients", Title: "Our Clients", Nav: true},
	{Path: "/contact", Title: "Contact", Nav: true},
	{Path: "/upload-resume", Title: "Upload Resume", Nav: true, CTA: true},
	{Path: "/jobs", Title: "Job Openings"},
	{Path: JobDetailPattern, Title: "Job Details"},
}

// ScrollToTopThreshold is the vertical offset in pixels past which the
// scroll-to-top control is shown
const ScrollToTopThreshold = 300

// Pages returns every routable page in navigation order
func Pages() []Page {
	out := make([]Page, len(pages))
	copy(out, pages)
	return out
}

// Lookup resolves a request path to its page. For the job detail route the
// posting id is returned as well.
func Lookup(path string) (Page, string, bool) {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	for _, p := range pages {
		if p.Path == path {
			return p, "", true
		}
	}

	if id, ok := strings.CutPrefix(path, "/jobs/"); ok && id != "" && !strings.Contains(id, "/") {
		detail := pages[len(pages)-1]
		return detail, id, true
	}

	return Page{}, "", false
}

// JobPath builds the detail route of a posting
func JobPath(id string) string {
	return strings.Replace(JobDetailPattern, "{id}", id, 1)
}

// ShowScrollToTop reports whether the scroll-to-top control is visible at
// the given offset
func ShowScrollToTop(offset float64) bool {
	return offset > ScrollToTopThreshold
}
