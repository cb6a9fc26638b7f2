package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	ctx := context.Background()

	endpoint := os.Getenv("MCP_URL")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}
	endpoint = strings.TrimSuffix(strings.TrimSuffix(endpoint, "/"), "/mcp/stream") + "/mcp/stream"

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "jobportal-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testSearchJobs(ctx, session)
	testListCompanies(ctx, session)
	testCatalogStats(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s - %s\n", tool.Name, tool.Description)
	}
}

func testSearchJobs(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: search_jobs")

	// Query and sidebar together
	call(ctx, session, "search_jobs", map[string]any{
		"query":      "developer",
		"experience": "1-3",
		"work_types": []string{"Full-time"},
		"sort":       "ratings",
	})

	// Salary range with the sentinel upper bound
	call(ctx, session, "search_jobs", map[string]any{
		"min_salary": 5,
		"max_salary": 100,
		"page":       2,
	})

	// Rejected input
	call(ctx, session, "search_jobs", map[string]any{"sort": "salary"})
}

func testListCompanies(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list_companies")
	call(ctx, session, "list_companies", map[string]any{})
}

func testCatalogStats(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: catalog_stats")
	call(ctx, session, "catalog_stats", map[string]any{"limit": 5})
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}

	if result.IsError {
		fmt.Printf("%s returned an error result:\n", name)
	}
	printResult(result)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
