package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobportal/internal/domain/catalog"
	"github.com/honeycarbs/jobportal/internal/view"
	"github.com/honeycarbs/jobportal/pkg/logging"
)

// PageParams selects a page of a job list
type PageParams struct {
	Page int `json:"page,omitempty" jsonschema:"1-based page"`
}

// CompanyJobsParams selects a company's openings
type CompanyJobsParams struct {
	CompanyID string `json:"company_id" jsonschema:"Company identifier from list_companies"`
	Page      int    `json:"page,omitempty" jsonschema:"1-based page"`
}

// NoParams is the input of tools that take no arguments
type NoParams struct{}

// MyJobsParams selects a tab of the my jobs view
type MyJobsParams struct {
	Tab string `json:"tab,omitempty" jsonschema:"saved or applied"`
}

type listHandler struct {
	catalog catalog.Service
	logger  *logging.Logger
}

// WithListJobs registers the list_jobs tool
func WithListJobs(svc catalog.Service) Option {
	return func(reg *registry) {
		h := &listHandler{catalog: svc, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_jobs",
			Description: "Page through the jobs tab listing",
		}, h.listJobs)
	}
}

// WithCompanyJobs registers the company_jobs tool
func WithCompanyJobs(svc catalog.Service) Option {
	return func(reg *registry) {
		h := &listHandler{catalog: svc, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "company_jobs",
			Description: "Show a company header and page through its openings",
		}, h.companyJobs)
	}
}

// WithListCompanies registers the list_companies tool
func WithListCompanies(svc catalog.Service) Option {
	return func(reg *registry) {
		h := &listHandler{catalog: svc, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "list_companies",
			Description: "List the company directory",
		}, h.companies)
	}
}

// WithMyJobs registers the my_jobs tool
func WithMyJobs(svc catalog.Service) Option {
	return func(reg *registry) {
		h := &listHandler{catalog: svc, logger: reg.logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "my_jobs",
			Description: "Show the signed-in user's saved or applied jobs",
		}, h.myJobs)
	}
}

func (h *listHandler) listJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, params *PageParams) (*sdkmcp.CallToolResult, any, error) {
	page := 1
	if params != nil {
		page = params.Page
	}

	l, err := view.RunList(ctx, func(ctx context.Context) *view.Host[view.List] {
		return view.MountJobCards(ctx, h.catalog, h.logger)
	}, page)
	if err != nil {
		return nil, nil, err
	}

	out := l.Render()
	return textResult(view.MarkdownTable(out.Jobs, out.Paging)), out, nil
}

func (h *listHandler) companyJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, params *CompanyJobsParams) (*sdkmcp.CallToolResult, any, error) {
	if params == nil || strings.TrimSpace(params.CompanyID) == "" {
		return errorResult("company_jobs requires company_id"), nil, nil
	}

	l, err := view.RunList(ctx, func(ctx context.Context) *view.Host[view.List] {
		return view.MountCompanyJobs(ctx, h.catalog, params.CompanyID, h.logger)
	}, params.Page)
	if err != nil {
		return nil, nil, err
	}

	out := l.Render()
	var b strings.Builder
	if out.Company != nil && out.Company.Name != "" {
		fmt.Fprintf(&b, "## %s\n", out.Company.Name)
		if out.Company.Slogan != "" {
			fmt.Fprintf(&b, "_%s_\n", out.Company.Slogan)
		}
		b.WriteString("\n")
	}
	b.WriteString(view.MarkdownTable(out.Jobs, out.Paging))
	return textResult(b.String()), out, nil
}

func (h *listHandler) companies(ctx context.Context, _ *sdkmcp.CallToolRequest, _ *NoParams) (*sdkmcp.CallToolResult, any, error) {
	state, err := view.Settle(ctx, view.MountCompanies(ctx, h.catalog, h.logger))
	if err != nil {
		return nil, nil, err
	}

	var b strings.Builder
	if len(state.Items) == 0 {
		b.WriteString("No companies found.\n")
	}
	for _, c := range state.Items {
		fmt.Fprintf(&b, "- %s (id %s, rating %.1f, %d reviews)", c.Name, c.ID, c.Ratings, c.Reviews)
		if c.TopCompany {
			b.WriteString(" [top company]")
		}
		b.WriteString("\n")
	}
	return textResult(b.String()), state, nil
}

func (h *listHandler) myJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, params *MyJobsParams) (*sdkmcp.CallToolResult, any, error) {
	tab := view.TabSaved
	if params != nil {
		t, err := view.ParseMyJobsTab(params.Tab)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		tab = t
	}

	hst := view.MountMyJobs(ctx, h.catalog, h.logger)
	defer hst.Unmount()
	if _, err := view.Settle(ctx, hst); err != nil {
		return nil, nil, err
	}
	out := hst.Dispatch(view.TabChanged{Tab: tab}).Render()

	header := fmt.Sprintf("Saved (%d) | Applied (%d)\n\n", out.Saved, out.Applied)
	paging := view.PageInfo{Page: 1, TotalPages: 1, Total: len(out.Jobs)}
	return textResult(header + view.MarkdownTable(out.Jobs, paging)), out, nil
}
