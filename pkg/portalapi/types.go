package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/time/rate"
)

// Config configures the portal API client
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Limiter throttles outgoing requests when set
	Limiter *rate.Limiter
	// Tokens supplies the bearer token attached to requests when set
	Tokens TokenSource
}

// TokenSource provides the current access token, empty when signed out
type TokenSource interface {
	AccessToken(ctx context.Context) string
}

// Client talks to the job portal HTTP API
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     TokenSource
}

// Record is one raw object from a list endpoint, keyed by field name
type Record map[string]json.RawMessage

// ID is an identifier the API sends either as a string or as a number
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("portalapi: id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// CompanyJobs is the payload of the jobs-by-company endpoint
type CompanyJobs struct {
	Company Record
	Jobs    []Record
}

// Notification is a single user notification
type Notification struct {
	ID    ID     `json:"id"`
	Text  string `json:"text"`
	Time  string `json:"time"`
	IsNew bool   `json:"is_new"`
}

// Tokens is the credential pair returned by the login endpoints
type Tokens struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username,omitempty"`
}

// LoginRequest signs in a job seeker
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmployerLoginRequest signs in an employer
type EmployerLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// JobSeekerSignup registers a job seeker account
type JobSeekerSignup struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

// EmployerSignup registers an employer account
type EmployerSignup struct {
	CompanyName string `json:"companyname"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
}

// StatusError is returned for responses with a 4xx or 5xx status
type StatusError struct {
	StatusCode int
	Body       string
	// Fields holds the decoded field -> messages map, when the body had one
	Fields map[string][]string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("portalapi: API error (%d): %s", e.StatusCode, e.Body)
}

// FirstMessage returns the first message of the first field in key order,
// preferring the general keys the API uses for non-field errors
func (e *StatusError) FirstMessage() string {
	for _, key := range []string{"error", "detail", "message", "general", "non_field_errors"} {
		if msgs := e.Fields[key]; len(msgs) > 0 {
			return msgs[0]
		}
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if msgs := e.Fields[k]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

// parseFields decodes an error body shaped as {"field": ["msg", ...]} or
// {"field": "msg"}; other shapes yield nil
func parseFields(body []byte) map[string][]string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil
	}

	fields := make(map[string][]string, len(raw))
	for key, val := range raw {
		var one string
		if err := json.Unmarshal(val, &one); err == nil {
			if strings.TrimSpace(one) != "" {
				fields[key] = []string{one}
			}
			continue
		}

		var many []string
		if err := json.Unmarshal(val, &many); err == nil && len(many) > 0 {
			fields[key] = many
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
