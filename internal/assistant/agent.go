// Package assistant drives the job portal MCP tools from a Gemini chat
package assistant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/option"

	"github.com/honeycarbs/jobportal/pkg/logging"
)

const (
	// DefaultModel is used when no model is configured
	DefaultModel = "gemini-2.5-flash"

	maxIterations = 10
	toolTimeout   = 2 * time.Minute
)

const systemPrompt = `You are a job search assistant for a job portal.

Use the tools to answer. Never make up jobs, companies or counts.

- search_jobs filters the catalog by a free-text query, a location, an
  experience bracket (fresher, 1-3, 3-5, 5+) and sidebar selections, sorts by
  date or ratings, and pages through results ten at a time.
- list_jobs, list_companies and company_jobs browse without filters.
- my_jobs shows the signed-in user's saved or applied jobs; login first.
- notifications lists and updates a user's notifications.
- export_results writes a search to Google Sheets.%s
- catalog_stats summarizes companies and skills across recorded catalogs.

When a tool reports an error, explain it plainly and suggest what to change.`

// Config configures an Agent
type Config struct {
	Endpoint string
	APIKey   string
	Model    string
	// SheetsID is offered to the model as the default export target
	SheetsID string
}

// Agent relays a conversation between Gemini and the MCP server
type Agent struct {
	session *mcp.ClientSession
	gemini  *genai.Client
	model   *genai.GenerativeModel
	tools   []*mcp.Tool
	logger  *logging.Logger
}

// NewAgent connects to the MCP server and loads its tools
func NewAgent(ctx context.Context, cfg Config, logger *logging.Logger) (*Agent, error) {
	if logger == nil {
		logger = logging.Nop()
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobportal-assistant",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: cfg.Endpoint}, nil)
	if err != nil {
		return nil, fmt.Errorf("assistant: connect to %s: %w", cfg.Endpoint, err)
	}

	list, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("assistant: list tools: %w", err)
	}

	gemini, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		_ = session.Close()
		return nil, fmt.Errorf("assistant: gemini client: %w", err)
	}

	model := gemini.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(Prompt(cfg.SheetsID))},
	}
	model.Tools = Declarations(list.Tools)

	logger.Info("assistant ready", "session", session.ID(), "tools", len(list.Tools), "model", cfg.Model)
	return &Agent{
		session: session,
		gemini:  gemini,
		model:   model,
		tools:   list.Tools,
		logger:  logger.Named("assistant"),
	}, nil
}

// Prompt builds the system instruction
func Prompt(sheetsID string) string {
	extra := ""
	if sheetsID != "" {
		extra = fmt.Sprintf(" Use spreadsheet_id %q unless the user names another.", sheetsID)
	}
	return fmt.Sprintf(systemPrompt, extra)
}

// Tools returns the tools advertised by the server
func (a *Agent) Tools() []*mcp.Tool {
	return a.tools
}

func (a *Agent) Close() error {
	return errors.Join(a.gemini.Close(), a.session.Close())
}

// Run answers one user request, calling tools until the model replies
// with text. Progress lines are written to out.
func (a *Agent) Run(ctx context.Context, query string, out io.Writer) (string, error) {
	chat := a.model.StartChat()
	parts := []genai.Part{genai.Text(query)}

	for i := 0; i < maxIterations; i++ {
		resp, err := chat.SendMessage(ctx, parts...)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			return "", fmt.Errorf("assistant: gemini: %w", err)
		}

		var (
			text      strings.Builder
			responses []genai.Part
		)
		for _, cand := range resp.Candidates {
			if cand.Content == nil {
				continue
			}
			for _, part := range cand.Content.Parts {
				switch p := part.(type) {
				case genai.FunctionCall:
					fmt.Fprintf(out, "[tool] %s\n", p.Name)
					responses = append(responses, genai.FunctionResponse{
						Name:     p.Name,
						Response: a.callTool(ctx, p.Name, p.Args),
					})
				case genai.Text:
					text.WriteString(string(p))
				}
			}
		}

		if len(responses) > 0 {
			parts = responses
			continue
		}
		if text.Len() > 0 {
			return text.String(), nil
		}
		return "", fmt.Errorf("assistant: empty response from model")
	}

	return "", fmt.Errorf("assistant: no answer after %d steps", maxIterations)
}

// callTool runs an MCP tool and shapes its outcome as a function response
func (a *Agent) callTool(ctx context.Context, name string, args map[string]any) map[string]any {
	if args == nil {
		args = map[string]any{}
	}

	toolCtx, cancel := context.WithTimeout(ctx, toolTimeout)
	defer cancel()

	res, err := a.session.CallTool(toolCtx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		a.logger.Warn("tool call failed", "tool", name, "err", err)
		return map[string]any{"error": err.Error()}
	}
	return Response(res)
}

// Response flattens a tool result's text content into a function response
func Response(res *mcp.CallToolResult) map[string]any {
	var texts []string
	for _, c := range res.Content {
		if t, ok := c.(*mcp.TextContent); ok {
			texts = append(texts, t.Text)
		}
	}
	text := strings.Join(texts, "\n")

	if res.IsError {
		return map[string]any{"error": text}
	}
	if text == "" {
		text = "Tool executed successfully"
	}
	return map[string]any{"result": text}
}
