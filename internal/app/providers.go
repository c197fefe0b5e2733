package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobshop/internal/cache"
	"github.com/honeycarbs/jobshop/internal/cache/redis"
	"github.com/honeycarbs/jobshop/internal/catalog"
	"github.com/honeycarbs/jobshop/internal/config"
	"github.com/honeycarbs/jobshop/internal/domain/job"
	"github.com/honeycarbs/jobshop/internal/domain/submission"
	"github.com/honeycarbs/jobshop/internal/export"
	"github.com/honeycarbs/jobshop/internal/httpapi"
	"github.com/honeycarbs/jobshop/internal/mcp"
	storage "github.com/honeycarbs/jobshop/internal/storage/neo4j"
	"github.com/honeycarbs/jobshop/pkg/logging"
	n4j "github.com/honeycarbs/jobshop/pkg/neo4j"
	"github.com/honeycarbs/jobshop/pkg/sheets"
)

// App is the assembled site backend
type App struct {
	Router *gin.Engine
	Jobs   job.Service
	Source string
}

func newApp(router *gin.Engine, jobs job.Service, src job.Source) *App {
	return &App{Router: router, Jobs: jobs, Source: src.Name()}
}

// provideCatalog loads CATALOG_PATH, or the embedded catalog when unset
func provideCatalog(cfg config.Config) (*catalog.Source, error) {
	if cfg.CatalogPath == "" {
		return catalog.Embedded(), nil
	}
	return catalog.FromFile(cfg.CatalogPath)
}

// provideNeo4jClient connects when NEO4J_URI is set; otherwise the client
// is nil and postings come from the catalog
func provideNeo4jClient(ctx context.Context, cfg config.Config, logger *logging.Logger) (*n4j.Client, func(), error) {
	if !cfg.Neo4jEnabled() {
		return nil, func() {}, nil
	}

	client, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Neo4j client initialized", "uri", cfg.Neo4j.URI)

	return client, func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("failed to close Neo4j client", "err", err)
		}
	}, nil
}

func provideJobSource(cat *catalog.Source, client *n4j.Client) job.Source {
	if client == nil {
		return cat
	}
	return storage.NewJobRepository(client)
}

func provideDirectory(ctx context.Context, src job.Source, cat *catalog.Source, logger *logging.Logger) (*job.Directory, error) {
	dir, err := job.LoadDirectory(ctx, src, cat.Categories())
	if err != nil {
		return nil, err
	}
	logger.Info("Job directory loaded", "source", src.Name(), "jobs", dir.Len())
	return dir, nil
}

// provideResultCache uses Redis when REDIS_URL is set and reachable, the
// in-process cache otherwise.
func provideResultCache(ctx context.Context, cfg config.Config, src job.Source, dir *job.Directory, logger *logging.Logger) (job.ResultCache, func()) {
	var c cache.Cache = cache.NewMemory()
	backend := "memory"

	if cfg.Redis.URL != "" {
		rc, err := redis.New(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Warn("Redis unavailable, falling back to in-process search cache", "err", err)
		} else {
			c = rc
			backend = "redis"
		}
	}
	logger.Info("Search cache enabled", "backend", backend, "ttl", cfg.Redis.TTL)

	return cache.NewJobResults(c, cache.Namespace(src.Name(), dir), cfg.Redis.TTL), func() {
		if err := c.Close(); err != nil {
			logger.Warn("failed to close search cache", "backend", backend, "err", err)
		}
	}
}

func provideJobService(dir *job.Directory, results job.ResultCache, logger *logging.Logger) (job.Service, error) {
	return job.NewServiceWithDeps(dir, results, logger.Named("jobs"))
}

func provideValidator(cat *catalog.Source) *submission.Validator {
	return submission.NewValidator(cat.Categories())
}

func provideDesk(v *submission.Validator, logger *logging.Logger) submission.Desk {
	return submission.NewDesk(v, submission.WithLogger(logger.Named("forms")))
}

// provideExporter builds a Sheets exporter; without credentials it reports
// itself unavailable
func provideExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (export.Exporter, error) {
	if cfg.Sheets.CredentialsPath == "" {
		return export.NewSheetsExporter(nil), nil
	}

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		return nil, err
	}
	logger.Info("Google Sheets client initialized")
	return export.NewSheetsExporter(client), nil
}

func provideMCPHandler(jobs job.Service, exporter export.Exporter, logger *logging.Logger) http.Handler {
	return mcp.NewHandler(mcp.NewServer(jobs, exporter, logger.Named("mcp")))
}

func provideRouter(cfg config.Config, jobs job.Service, desk submission.Desk, exporter export.Exporter, mcpHandler http.Handler, logger *logging.Logger) *gin.Engine {
	return httpapi.NewRouter(httpapi.Deps{
		Jobs:     jobs,
		Desk:     desk,
		Exporter: exporter,
		MCP:      mcpHandler,
	}, httpapi.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Release:        cfg.Production(),
	}, logger.Named("http"))
}
