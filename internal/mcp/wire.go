//go:build wireinject
// +build wireinject

package mcp

import (
	"context"

	"github.com/google/wire"

	"github.com/honeycarbs/jobportal/internal/config"
	"github.com/honeycarbs/jobportal/internal/domain/auth"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/domain/notify"
	"github.com/honeycarbs/jobportal/internal/session"
	"github.com/honeycarbs/jobportal/pkg/logging"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
)

// InitializeResources creates Resources with all resources wired up
func InitializeResources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Session
		provideSessionStore,
		provideRefresher,

		// Portal API
		providePortalClient,
		wire.Bind(new(catalog.API), new(*portalapi.Client)),
		wire.Bind(new(auth.API), new(*portalapi.Client)),
		wire.Bind(new(notify.API), new(*portalapi.Client)),
		wire.Bind(new(session.RefreshAPI), new(*portalapi.Client)),

		// Infrastructure - Neo4j
		provideNeo4jClient,
		provideCatalogRepository,

		// Services
		catalog.NewServiceWithDeps,
		auth.NewService,
		notify.NewService,
		provideExporter,

		// Transports
		provideRESTHandler,
		newResources,
	)

	return &Resources{}, nil
}
