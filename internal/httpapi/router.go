package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobshop/internal/domain/job"
	"github.com/honeycarbs/jobshop/internal/domain/submission"
	"github.com/honeycarbs/jobshop/internal/export"
	"github.com/honeycarbs/jobshop/pkg/logging"
)

// Deps are the services behind the HTTP API
type Deps struct {
	Jobs     job.Service
	Desk     submission.Desk
	Exporter export.Exporter
	// MCP is mounted at /mcp/stream when set
	MCP http.Handler
}

// Options tune the router
type Options struct {
	AllowedOrigins []string
	Release        bool
}

type Handler struct {
	jobs     job.Service
	desk     submission.Desk
	exporter export.Exporter
	logger   *logging.Logger
}

// NewRouter builds the gin engine serving the site API
func NewRouter(deps Deps, opts Options, logger *logging.Logger) *gin.Engine {
	if opts.Release {
		gin.SetMode(gin.ReleaseMode)
	}

	h := &Handler{
		jobs:     deps.Jobs,
		desk:     deps.Desk,
		exporter: deps.Exporter,
		logger:   logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(Tracing())
	router.Use(AccessLog(logger))
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	router.GET("/healthz", h.Health)

	api := router.Group("/api")
	{
		jobs := api.Group("/jobs")
		jobs.GET("", h.ListJobs)
		jobs.GET("/filters", h.JobFilters)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/export", h.ExportJobs)

		api.POST("/contact", h.SubmitContact)
		api.POST("/employers", h.SubmitEmployer)
		api.POST("/resume", h.SubmitResume)

		siteGroup := api.Group("/site")
		siteGroup.GET("/pages", h.Pages)
		siteGroup.GET("/route", h.Route)
		siteGroup.GET("/theme", h.Theme)
	}

	if deps.MCP != nil {
		router.Any("/mcp/stream", gin.WrapH(deps.MCP))
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(origins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", RequestIDHeader}
	config.ExposeHeaders = []string{RequestIDHeader}
	return config
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
