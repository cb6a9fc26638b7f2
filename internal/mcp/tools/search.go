package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/view"
	"github.com/honeycarbs/jobportal/pkg/logging"
)

type searchHandler struct {
	catalog catalog.Service
	logger  *logging.Logger
}

// WithSearchJobs registers the search_jobs tool
func WithSearchJobs(svc catalog.Service) Option {
	return func(reg *registry) {
		h := &searchHandler{catalog: svc, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "search_jobs",
			Description: "Filter, sort and paginate the job catalog with facet counts",
		}, h.handle)
	}
}

func (h *searchHandler) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *SearchParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil {
		params = &SearchParams{}
	}

	q, err := params.SearchQuery()
	if err != nil {
		return errorResult(fmt.Sprintf("search_jobs: %v", err)), nil, nil
	}

	state, err := view.RunSearch(ctx, h.catalog, q, h.logger)
	if err != nil {
		return nil, nil, err
	}

	page := state.Render()
	h.logger.Debug("search_jobs served", "query", q.Query, "results", page.Paging.Total, "page", page.Paging.Page)
	return textResult(view.MarkdownTable(page.Jobs, page.Paging)), page, nil
}
