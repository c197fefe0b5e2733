package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/honeycarbs/jobshop/internal/domain"
	"github.com/honeycarbs/jobshop/internal/export"
	"github.com/honeycarbs/jobshop/pkg/telemetry"
)

type jobListResponse struct {
	domain.JobSearchResult
	HasActiveFilters bool `json:"has_active_filters"`
}

type filtersResponse struct {
	Categories []string `json:"categories"`
	Types      []string `json:"types"`
}

// criteriaFromQuery reads the four filter dimensions. An absent or empty
// category or type means "All".
func criteriaFromQuery(c *gin.Context) domain.QueryCriteria {
	return domain.QueryCriteria{
		SearchTerm:     c.Query("search"),
		LocationFilter: c.Query("location"),
		CategoryFilter: c.Query("category"),
		TypeFilter:     c.Query("type"),
	}.Normalize()
}

// ListJobs handles GET /api/jobs
func (h *Handler) ListJobs(c *gin.Context) {
	criteria := criteriaFromQuery(c)

	result, err := h.jobs.Search(c.Request.Context(), criteria)
	if err != nil {
		h.writeError(c, err)
		return
	}

	trace.SpanFromContext(c.Request.Context()).SetAttributes(
		telemetry.Int("jobs.total", result.Total),
		telemetry.Int("jobs.matched", result.Matched),
	)

	c.JSON(http.StatusOK, jobListResponse{
		JobSearchResult:  result,
		HasActiveFilters: criteria.HasActiveFilters(),
	})
}

// GetJob handles GET /api/jobs/:id
func (h *Handler) GetJob(c *gin.Context) {
	posting, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, posting)
}

// JobFilters handles GET /api/jobs/filters
func (h *Handler) JobFilters(c *gin.Context) {
	c.JSON(http.StatusOK, filtersResponse{
		Categories: h.jobs.Categories(),
		Types:      h.jobs.Types(),
	})
}

type exportRequest struct {
	Search   string `json:"search"`
	Location string `json:"location"`
	Category string `json:"category"`
	Type     string `json:"type"`
	export.Target
}

// ExportJobs handles POST /api/jobs/export
func (h *Handler) ExportJobs(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "invalid request body", err)
		return
	}

	criteria := domain.QueryCriteria{
		SearchTerm:     req.Search,
		LocationFilter: req.Location,
		CategoryFilter: req.Category,
		TypeFilter:     req.Type,
	}.Normalize()

	result, err := h.jobs.Search(c.Request.Context(), criteria)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.exporter.Export(c.Request.Context(), result.Jobs, req.Target)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info("Jobs exported",
		"spreadsheet_id", out.SpreadsheetID,
		"tab", out.Tab,
		"rows", out.WrittenRows)

	c.JSON(http.StatusOK, out)
}
