package mcp

import (
	"github.com/honeycarbs/jobportal/internal/domain/auth"
	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/domain/notify"
	"github.com/honeycarbs/jobportal/internal/export"
	"github.com/honeycarbs/jobportal/internal/httpapi"
	"github.com/honeycarbs/jobportal/internal/mcp/tools"
	"github.com/honeycarbs/jobportal/internal/session"
	n4j "github.com/honeycarbs/jobportal/pkg/neo4j"
	"github.com/honeycarbs/jobportal/pkg/shutdown"
)

// Resources holds every service the server exposes
type Resources struct {
	Catalog   catalog.Service
	Auth      *auth.Service
	Notify    *notify.Service
	Exporter  *export.Exporter
	REST      *httpapi.Handler
	Refresher *session.Refresher
	Store     session.Store
	Neo4j     *n4j.Client
}

func newResources(
	catalogSvc catalog.Service,
	authSvc *auth.Service,
	notifySvc *notify.Service,
	exporter *export.Exporter,
	rest *httpapi.Handler,
	refresher *session.Refresher,
	store session.Store,
	neo4jClient *n4j.Client,
) *Resources {
	return &Resources{
		Catalog:   catalogSvc,
		Auth:      authSvc,
		Notify:    notifySvc,
		Exporter:  exporter,
		REST:      rest,
		Refresher: refresher,
		Store:     store,
		Neo4j:     neo4jClient,
	}
}

// ToolOptions registers every tool. defaultUser is the notifications
// user when a call names none.
func (r *Resources) ToolOptions(defaultUser string) []tools.Option {
	opts := []tools.Option{
		tools.WithSearchJobs(r.Catalog),
		tools.WithListJobs(r.Catalog),
		tools.WithCompanyJobs(r.Catalog),
		tools.WithListCompanies(r.Catalog),
		tools.WithMyJobs(r.Catalog),
		tools.WithExportResults(r.Catalog, r.Exporter),
		tools.WithCatalogStats(r.Catalog),
	}
	if r.Notify != nil {
		opts = append(opts, tools.WithNotifications(r.Notify, defaultUser))
	}
	if r.Auth != nil {
		opts = append(opts, tools.WithLogin(r.Auth), tools.WithRegister(r.Auth))
	}
	return opts
}

// Stoppables lists the resources that hold connections, in shutdown order
func (r *Resources) Stoppables() []shutdown.Stoppable {
	var out []shutdown.Stoppable
	if r.Refresher != nil {
		out = append(out, r.Refresher)
	}
	if s, ok := r.Store.(shutdown.Stoppable); ok {
		out = append(out, s)
	}
	if r.Neo4j != nil {
		out = append(out, r.Neo4j)
	}
	return out
}
