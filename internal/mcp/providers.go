package mcp

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/honeycarbs/jobportal/internal/config"
	"github.com/honeycarbs/jobportal/internal/domain/auth"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/export"
	"github.com/honeycarbs/jobportal/internal/httpapi"
	"github.com/honeycarbs/jobportal/internal/session"
	storage "github.com/honeycarbs/jobportal/internal/storage/neo4j"
	"github.com/honeycarbs/jobportal/internal/view"
	"github.com/honeycarbs/jobportal/pkg/logging"
	n4j "github.com/honeycarbs/jobportal/pkg/neo4j"
	"github.com/honeycarbs/jobportal/pkg/portalapi"
	sheetsclient "github.com/honeycarbs/jobportal/pkg/sheets"
)

// provideSessionStore keeps tokens in redis when REDIS_URL is set and in
// memory otherwise
func provideSessionStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (session.Store, error) {
	if cfg.Session.RedisURL == "" {
		logger.Info("session store: memory")
		return session.NewMemoryStore(), nil
	}

	rdb, err := session.NewRedisClient(ctx, cfg.Session.RedisURL)
	if err != nil {
		return nil, err
	}
	logger.Info("session store: redis")
	return session.NewRedisStore(rdb, session.DefaultRedisKey, 0), nil
}

// providePortalClient builds the API client with the configured timeout
// and rate limit. A zero rate disables the limiter.
func providePortalClient(cfg config.Config, store session.Store) (*portalapi.Client, error) {
	var limiter *rate.Limiter
	if cfg.Portal.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Portal.RatePerSec), 1)
	}

	return portalapi.NewClient(portalapi.Config{
		BaseURL:    cfg.Portal.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Portal.Timeout},
		Limiter:    limiter,
		Tokens:     session.NewTokenSource(store),
	})
}

func provideRefresher(api session.RefreshAPI, store session.Store, cfg config.Config, logger *logging.Logger) *session.Refresher {
	return session.NewRefresher(api, store, cfg.Session.RefreshSpec, logger)
}

// provideNeo4jClient returns nil when no graph database is configured
func provideNeo4jClient(ctx context.Context, cfg config.Config) (*n4j.Client, error) {
	nc := n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	}
	if !nc.Enabled() {
		return nil, nil
	}
	return n4j.NewClient(ctx, nc)
}

func provideCatalogRepository(client *n4j.Client) catalog.Repository {
	if client == nil {
		return catalog.NopRepository()
	}
	return storage.NewCatalogRepository(client)
}

// provideExporter returns an exporter that reports ErrNotConfigured when
// no sheets credentials are set
func provideExporter(ctx context.Context, cfg config.Config, logger *logging.Logger) (*export.Exporter, error) {
	sc := sheetsclient.Config{CredentialsPath: cfg.Sheets.CredentialsPath}
	if !sc.Enabled() {
		return export.NewExporter(nil, logger), nil
	}

	client, err := sheetsclient.NewClient(ctx, sc)
	if err != nil {
		return nil, err
	}
	return export.NewExporter(client, logger), nil
}

func provideRESTHandler(svc catalog.Service, authSvc *auth.Service, logger *logging.Logger) *httpapi.Handler {
	return httpapi.NewHandler(svc, authSvc, view.NewRegistry[view.Search](httpapi.DefaultSessionLimit), logger)
}
