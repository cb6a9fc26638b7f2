package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the server
type Config struct {
	LogLevel string
	Host     string // default 0.0.0.0
	Port     string // default 8080

	Portal struct {
		BaseURL    string
		Timeout    time.Duration
		RatePerSec float64
		UserID     string
	}

	Session struct {
		RedisURL    string
		RefreshSpec string
	}

	Neo4j struct {
		URI      string
		Username string
		Password string
	}

	Sheets struct {
		CredentialsPath string
	}

	CORSOrigins []string
}

// Load reads an optional .env file from the working directory, then
// populates config from environment variables
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv populates config through getenv
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		LogLevel: "info",
		Host:     "0.0.0.0",
		Port:     "8080",
	}
	cfg.Portal.Timeout = 15 * time.Second
	cfg.Portal.RatePerSec = 5
	cfg.Session.RefreshSpec = "@every 4m"

	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("HOST"); v != "" {
		cfg.Host = v
	}
	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}

	var problems []string

	cfg.Portal.BaseURL = strings.TrimRight(getenv("PORTAL_API_URL"), "/")
	cfg.Portal.UserID = getenv("PORTAL_USER_ID")
	if v := getenv("PORTAL_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			problems = append(problems, fmt.Sprintf("PORTAL_TIMEOUT: invalid duration %q", v))
		} else {
			cfg.Portal.Timeout = d
		}
	}
	if v := getenv("PORTAL_RATE_PER_SEC"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r < 0 {
			problems = append(problems, fmt.Sprintf("PORTAL_RATE_PER_SEC: invalid rate %q", v))
		} else {
			cfg.Portal.RatePerSec = r
		}
	}

	cfg.Session.RedisURL = getenv("REDIS_URL")
	if v := getenv("TOKEN_REFRESH_SPEC"); v != "" {
		cfg.Session.RefreshSpec = v
	}

	cfg.Neo4j.URI = getenv("NEO4J_URI")
	cfg.Neo4j.Username = getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = getenv("NEO4J_PASSWORD")

	cfg.Sheets.CredentialsPath = getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	for _, origin := range strings.Split(getenv("CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	var missingVars []string
	if cfg.Portal.BaseURL == "" {
		missingVars = append(missingVars, "PORTAL_API_URL")
	}
	if cfg.Neo4j.URI != "" && cfg.Neo4j.Username == "" {
		missingVars = append(missingVars, "NEO4J_USERNAME")
	}
	if cfg.Neo4j.URI != "" && cfg.Neo4j.Password == "" {
		missingVars = append(missingVars, "NEO4J_PASSWORD")
	}

	if len(missingVars) > 0 {
		problems = append(problems, fmt.Sprintf("missing required environment variables: %s", strings.Join(missingVars, ", ")))
	}
	if len(problems) > 0 {
		return cfg, fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}
