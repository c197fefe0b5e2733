//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/jobshop/internal/config"
	"github.com/honeycarbs/jobshop/pkg/logging"
)

// InitializeApp assembles the site backend from configuration
func InitializeApp(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, func(), error) {
	wire.Build(
		// Postings
		provideCatalog,
		provideNeo4jClient,
		provideJobSource,
		provideDirectory,
		provideResultCache,
		provideJobService,

		// Forms
		provideValidator,
		provideDesk,

		// Export
		provideExporter,

		// Transport
		provideMCPHandler,
		provideRouter,
		newApp,
	)

	return nil, nil, nil
}
