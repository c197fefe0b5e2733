package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"LOG_LEVEL", "APP_ENV", "HTTP_HOST", "PORT", "CATALOG_PATH",
		"CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
		"NEO4J_URI", "NEO4J_USERNAME", "NEO4J_PASSWORD", "NEO4J_DATABASE",
		"REDIS_URL", "CACHE_TTL", "GOOGLE_SHEETS_CREDENTIALS_PATH",
		"ADZUNA_APP_ID", "ADZUNA_APP_KEY", "ADZUNA_COUNTRY",
		"OTEL_COLLECTOR_URL", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "jobshop", cfg.Telemetry.ServiceName)
	assert.Equal(t, "in", cfg.Adzuna.Country)
	assert.False(t, cfg.Neo4jEnabled())
	assert.False(t, cfg.Production())
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://thejobshop.in, https://www.thejobshop.in,")
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")
	t.Setenv("NEO4J_USERNAME", "neo4j")
	t.Setenv("NEO4J_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Production())
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, []string{"https://thejobshop.in", "https://www.thejobshop.in"}, cfg.AllowedOrigins)
	assert.True(t, cfg.Neo4jEnabled())
}

func TestLoadRejectsPartialNeo4j(t *testing.T) {
	clearEnv(t)
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NEO4J_USERNAME")
	assert.Contains(t, err.Error(), "NEO4J_PASSWORD")
}
