package main

import (
	"context"
	"log"
	"os"
	"syscall"

	"github.com/honeycarbs/jobshop/internal/app"
	"github.com/honeycarbs/jobshop/internal/config"
	"github.com/honeycarbs/jobshop/internal/mcp"
	"github.com/honeycarbs/jobshop/internal/server"
	"github.com/honeycarbs/jobshop/pkg/logging"
	"github.com/honeycarbs/jobshop/pkg/shutdown"
	"github.com/honeycarbs/jobshop/pkg/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	if !cfg.Production() {
		logger = logging.NewDevelopment(cfg.LogLevel)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopTracing := telemetry.Shutdown(func(context.Context) error { return nil })
	if cfg.Telemetry.CollectorURL != "" {
		stopTracing, err = telemetry.InitTracer(ctx, cfg.Telemetry.ServiceName, mcp.ServerVersion, cfg.Telemetry.CollectorURL)
		if err != nil {
			logger.Error("failed to initialize tracing", "err", err)
			os.Exit(1)
		}
		logger.Info("Tracing enabled", "collector", cfg.Telemetry.CollectorURL)
	}

	application, cleanup, err := app.InitializeApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "err", err)
		os.Exit(1)
	}

	srv := server.New(cfg.Host, cfg.Port, application.Router, logger)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Error("HTTP server exited with error", "err", err)
		}
		cancel()
	}()

	logger.Info("Job shop server started", "addr", srv.Addr(), "source", application.Source)

	_ = shutdown.Graceful(ctx,
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		cfg.ShutdownTimeout,
		logger,
		srv,
		shutdown.Func(func(context.Context) error {
			cleanup()
			return nil
		}),
		shutdown.Func(stopTracing),
	)
}
