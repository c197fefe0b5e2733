package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/honeycarbs/jobshop/internal/catalog"
	"github.com/honeycarbs/jobshop/internal/config"
	"github.com/honeycarbs/jobshop/internal/domain/job"
	"github.com/honeycarbs/jobshop/internal/domain/job/providers/adzuna"
	storage "github.com/honeycarbs/jobshop/internal/storage/neo4j"
	adzunaapi "github.com/honeycarbs/jobshop/pkg/adzuna"
	"github.com/honeycarbs/jobshop/pkg/logging"
	n4j "github.com/honeycarbs/jobshop/pkg/neo4j"
)

type options struct {
	catalogPath string
	adzuna      string
	where       string
	merge       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.catalogPath, "catalog", "", "catalog YAML file; defaults to CATALOG_PATH or the embedded catalog")
	flag.StringVar(&opts.adzuna, "adzuna", "", `import from Adzuna instead, e.g. "graphic designer=Design;golang=IT & Software"`)
	flag.StringVar(&opts.where, "where", "", "location for Adzuna searches")
	flag.BoolVar(&opts.merge, "merge", false, "upsert postings without removing ones missing from the source")
	timeout := flag.Duration("timeout", time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	if !cfg.Neo4jEnabled() {
		logger.Error("NEO4J_URI is required to seed the graph")
		os.Exit(1)
	}
	if opts.catalogPath == "" {
		opts.catalogPath = cfg.CatalogPath
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, opts, logger); err != nil {
		logger.Error("seed failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, logger *logging.Logger) error {
	cat := catalog.Embedded()
	if opts.catalogPath != "" {
		var err error
		if cat, err = catalog.FromFile(opts.catalogPath); err != nil {
			return err
		}
	}

	var src job.Source = cat
	if opts.adzuna != "" {
		var err error
		if src, err = adzunaSource(cfg, opts); err != nil {
			return err
		}
	}

	// validate before touching the database
	dir, err := job.LoadDirectory(ctx, src, cat.Categories())
	if err != nil {
		return err
	}

	client, err := n4j.NewClient(ctx, n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
		Database: cfg.Neo4j.Database,
	})
	if err != nil {
		return err
	}
	defer func() { _ = client.Close(context.Background()) }()

	repo := storage.NewJobRepository(client)
	if opts.merge {
		err = repo.UpsertJobs(ctx, dir.All())
	} else {
		err = repo.ReplaceAll(ctx, dir.All())
	}
	if err != nil {
		return err
	}

	logger.Info("Graph seeded", "source", src.Name(), "jobs", dir.Len(), "merge", opts.merge)
	return nil
}

func adzunaSource(cfg config.Config, opts options) (job.Source, error) {
	queries, err := adzuna.ParseQueries(opts.adzuna, opts.where)
	if err != nil {
		return nil, err
	}

	client, err := adzunaapi.NewClient(adzunaapi.Config{
		AppID:   cfg.Adzuna.AppID,
		AppKey:  cfg.Adzuna.AppKey,
		Country: cfg.Adzuna.Country,
	})
	if err != nil {
		return nil, err
	}

	return adzuna.NewProvider(client, queries)
}
