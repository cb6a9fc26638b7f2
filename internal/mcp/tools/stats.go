package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobportal/internal/domain/catalog"
)

// StatsParams bounds the catalog_stats report
type StatsParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"Number of companies, 10 when empty"`
}

type statsHandler struct {
	catalog catalog.Service
}

// WithCatalogStats registers the catalog_stats tool
func WithCatalogStats(svc catalog.Service) Option {
	return func(reg *registry) {
		h := &statsHandler{catalog: svc}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "catalog_stats",
			Description: "Summarize recorded catalog snapshots: jobs and top skills per company",
		}, h.handle)
	}
}

func (h *statsHandler) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *StatsParams) (*sdkmcp.CallToolResult, any, error) {
	limit := 10
	if params != nil && params.Limit > 0 {
		limit = params.Limit
	}

	stats, err := h.catalog.Stats(ctx, limit)
	if err != nil {
		return textResult(fmt.Sprintf("catalog_stats error: %v", err)), nil, err
	}

	var b strings.Builder
	if len(stats) == 0 {
		b.WriteString("No catalog snapshots recorded yet.\n")
	}
	for i, s := range stats {
		fmt.Fprintf(&b, "%d. %s: %d job(s)", i+1, s.Company, s.Jobs)
		if len(s.TopSkills) > 0 {
			fmt.Fprintf(&b, ", top skills %s", strings.Join(s.TopSkills, ", "))
		}
		b.WriteString("\n")
	}
	return textResult(b.String()), map[string]any{"companies": stats}, nil
}
