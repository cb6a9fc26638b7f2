package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/export"
	"github.com/honeycarbs/jobportal/internal/view"
	"github.com/honeycarbs/jobportal/pkg/logging"
)

// ExportParams runs a search and writes its results to a sheet
type ExportParams struct {
	Search        SearchParams `json:"search,omitempty" jsonschema:"Search whose results are exported"`
	SpreadsheetID string       `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string       `json:"tab,omitempty" jsonschema:"Tab name, Sheet1 when empty"`
	Replace       bool         `json:"replace,omitempty" jsonschema:"Clear the tab and write a header first"`
	AllPages      bool         `json:"all_pages,omitempty" jsonschema:"Export every filtered result instead of the current page"`
}

type exportHandler struct {
	catalog  catalog.Service
	exporter *export.Exporter
	logger   *logging.Logger
}

// WithExportResults registers the export_results tool
func WithExportResults(svc catalog.Service, exporter *export.Exporter) Option {
	return func(reg *registry) {
		h := &exportHandler{catalog: svc, exporter: exporter, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "export_results",
			Description: "Export search results to Google Sheets",
		}, h.handle)
	}
}

func (h *exportHandler) handle(ctx context.Context, _ *sdkmcp.CallToolRequest, params *ExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || params.SpreadsheetID == "" {
		return errorResult("export_results requires spreadsheet_id"), nil, nil
	}

	q, err := params.Search.SearchQuery()
	if err != nil {
		return errorResult(fmt.Sprintf("export_results: %v", err)), nil, nil
	}

	state, err := view.RunSearch(ctx, h.catalog, q, h.logger)
	if err != nil {
		return nil, nil, err
	}

	jobs := state.Page()
	if params.AllPages {
		jobs = state.Results
	}

	result, err := h.exporter.Export(ctx, export.Request{
		SpreadsheetID: params.SpreadsheetID,
		Tab:           params.Tab,
		Replace:       params.Replace,
		Cards:         view.Cards(jobs, state.LoadedAt),
	})
	if errors.Is(err, export.ErrNotConfigured) {
		return errorResult(result.Message), result, nil
	}
	if err != nil {
		return textResult(fmt.Sprintf("export_results error: %v", err)), result, err
	}
	return textResult(result.Message), result, nil
}
