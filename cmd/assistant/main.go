package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/honeycarbs/jobportal/internal/assistant"
	"github.com/honeycarbs/jobportal/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	endpoint := os.Getenv("MCP_URL")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}
	endpoint = strings.TrimSuffix(strings.TrimSuffix(endpoint, "/"), "/mcp/stream") + "/mcp/stream"

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		log.Fatal("GOOGLE_API_KEY or GEMINI_API_KEY environment variable must be set")
	}

	logger := logging.New(os.Getenv("LOG_LEVEL"))
	defer func() { _ = logger.Sync() }()

	agent, err := assistant.NewAgent(ctx, assistant.Config{
		Endpoint: endpoint,
		APIKey:   apiKey,
		Model:    os.Getenv("GOOGLE_MODEL"),
		SheetsID: os.Getenv("GOOGLE_SHEETS_ID"),
	}, logger)
	if err != nil {
		log.Fatalf("Failed to create assistant: %v", err)
	}
	defer func() { _ = agent.Close() }()

	fmt.Printf("Connected to %s, %d tools available\n", endpoint, len(agent.Tools()))

	if len(os.Args) > 1 {
		answer(ctx, agent, strings.Join(os.Args[1:], " "))
		return
	}

	fmt.Println("Ask about jobs, companies or your applications. Type 'quit' to exit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			return
		}
		input := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(input) {
		case "":
			continue
		case "quit", "exit", "q":
			return
		}
		if !answer(ctx, agent, input) {
			return
		}
	}
}

// answer prints the reply to one request. It returns false once the
// context is done.
func answer(ctx context.Context, agent *assistant.Agent, query string) bool {
	reply, err := agent.Run(ctx, query, os.Stdout)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return true
	}
	fmt.Printf("\n%s\n", reply)
	return true
}
