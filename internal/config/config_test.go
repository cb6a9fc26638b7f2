package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/jobportal/internal/config"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{"PORTAL_API_URL": "http://api.local/api/"}))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://api.local/api", cfg.Portal.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Portal.Timeout)
	assert.Equal(t, 5.0, cfg.Portal.RatePerSec)
	assert.Equal(t, "@every 4m", cfg.Session.RefreshSpec)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := config.FromEnv(env(map[string]string{
		"PORTAL_API_URL":      "http://api.local",
		"PORT":                "9000",
		"PORTAL_TIMEOUT":      "3s",
		"PORTAL_RATE_PER_SEC": "0",
		"TOKEN_REFRESH_SPEC":  "@every 1m",
		"CORS_ORIGINS":        "http://a.test, http://b.test,",
		"NEO4J_URI":           "neo4j://localhost:7687",
		"NEO4J_USERNAME":      "neo4j",
		"NEO4J_PASSWORD":      "pw",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.Portal.Timeout)
	assert.Equal(t, 0.0, cfg.Portal.RatePerSec)
	assert.Equal(t, "@every 1m", cfg.Session.RefreshSpec)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.Equal(t, "neo4j", cfg.Neo4j.Username)
}

func TestFromEnv_Missing(t *testing.T) {
	_, err := config.FromEnv(env(map[string]string{"NEO4J_URI": "neo4j://x"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTAL_API_URL, NEO4J_USERNAME, NEO4J_PASSWORD")
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := config.FromEnv(env(map[string]string{
		"PORTAL_API_URL": "http://api.local",
		"PORTAL_TIMEOUT": "soon",
	}))
	assert.ErrorContains(t, err, "PORTAL_TIMEOUT")
}
