package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultBaseURL = "http://127.0.0.1:8000/api"
	maxErrorBody   = 4096
)

// NewClient instantiates a portal API client
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("portalapi: parse base url: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    cfg.Limiter,
		tokens:     cfg.Tokens,
	}, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchCatalog loads the full job catalog used by the search view
func (c *Client) FetchCatalog(ctx context.Context) ([]Record, error) {
	return c.list(ctx, "/Jcompanies/opportunityoverview/")
}

// FetchJobCards loads the job cards shown in the jobs tab
func (c *Client) FetchJobCards(ctx context.Context) ([]Record, error) {
	return c.list(ctx, "/Jcompanies/opportunitiescard/")
}

// Companies loads the company directory
func (c *Client) Companies(ctx context.Context) ([]Record, error) {
	return c.list(ctx, "/Jcompanies/companies/")
}

// SavedJobs loads the signed-in user's saved jobs. Only array payloads
// are accepted.
func (c *Client) SavedJobs(ctx context.Context) ([]Record, error) {
	body, err := c.do(ctx, http.MethodGet, "/Jcompanies/savedjobscard/", nil)
	if err != nil {
		return nil, err
	}
	return Records(CoerceArray(body)), nil
}

// AppliedJobs loads the signed-in user's applied jobs. Only array payloads
// are accepted.
func (c *Client) AppliedJobs(ctx context.Context) ([]Record, error) {
	body, err := c.do(ctx, http.MethodGet, "/Jcompanies/appliedjobscard/", nil)
	if err != nil {
		return nil, err
	}
	return Records(CoerceArray(body)), nil
}

// CompanyJobs loads a company and its openings. The endpoint answers with
// {"company": {...}, "jobs": [...]}; a bare list is accepted as jobs only.
func (c *Client) CompanyJobs(ctx context.Context, companyID string) (CompanyJobs, error) {
	if strings.TrimSpace(companyID) == "" {
		return CompanyJobs{}, fmt.Errorf("portalapi: company id is required")
	}

	body, err := c.do(ctx, http.MethodGet, "/Jcompanies/jobsbycompany/"+url.PathEscape(companyID)+"/", nil)
	if err != nil {
		return CompanyJobs{}, err
	}

	var envelope struct {
		Company json.RawMessage `json:"company"`
		Jobs    json.RawMessage `json:"jobs"`
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Jobs != nil {
			out := CompanyJobs{Jobs: Records(CoerceList(envelope.Jobs))}
			var company Record
			if err := json.Unmarshal(envelope.Company, &company); err == nil {
				out.Company = company
			}
			return out, nil
		}
	}

	return CompanyJobs{Jobs: Records(CoerceList(body))}, nil
}

// Notifications loads the notifications of a user
func (c *Client) Notifications(ctx context.Context, userID string) ([]Notification, error) {
	body, err := c.do(ctx, http.MethodGet, "/notifications/"+url.PathEscape(userID)+"/", nil)
	if err != nil {
		return nil, err
	}

	items := CoerceArray(body)
	out := make([]Notification, 0, len(items))
	for _, item := range items {
		var n Notification
		if err := json.Unmarshal(item, &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPost, "/notifications/"+url.PathEscape(id)+"/mark-read/", nil)
	return err
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/notifications/"+url.PathEscape(id)+"/delete/", nil)
	return err
}

// ClearNotifications removes every notification of a user
func (c *Client) ClearNotifications(ctx context.Context, userID string) error {
	_, err := c.do(ctx, http.MethodDelete, "/notifications/"+url.PathEscape(userID)+"/", nil)
	return err
}

func (c *Client) list(ctx context.Context, path string) ([]Record, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return Records(CoerceList(body)), nil
}

// do sends a request and returns the raw body of a successful response
func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("portalapi: client is nil")
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("portalapi: rate limit: %w", err)
		}
	}

	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("portalapi: encode request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("portalapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.AccessToken(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portalapi: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
			Fields:     parseFields(body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("portalapi: read response: %w", err)
	}
	return body, nil
}
