package portalapi

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestFetchCatalogIntegration(t *testing.T) {
	baseURL := os.Getenv("PORTAL_API_URL")
	if baseURL == "" {
		t.Skip("PORTAL_API_URL must be set to run this test")
	}

	client, err := NewClient(Config{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	records, err := client.FetchCatalog(ctx)
	if err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}

	if len(records) == 0 {
		t.Log("portal catalog returned zero jobs; check the backend seed data")
		return
	}

	for i, rec := range records {
		if i >= 5 {
			break
		}
		t.Logf("Result %d: %s", i+1, string(rec["title"]))
	}
	t.Logf("portal catalog returned %d jobs", len(records))
}
