package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the site server
type Config struct {
	LogLevel        string
	Env             string // development or production
	Host            string // default 0.0.0.0
	Port            string // default PORT env or 8080
	CatalogPath     string // empty means the embedded catalog
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	Neo4j struct {
		URI      string
		Username string
		Password string
		Database string
	}

	Redis struct {
		URL string
		TTL time.Duration
	}

	Sheets struct {
		CredentialsPath string
	}

	// Adzuna credentials are only read by the seed command
	Adzuna struct {
		AppID   string
		AppKey  string
		Country string
	}

	Telemetry struct {
		CollectorURL string
		ServiceName  string
	}
}

// Neo4jEnabled reports whether a graph database is configured
func (c Config) Neo4jEnabled() bool {
	return c.Neo4j.URI != ""
}

// Production reports whether the server runs in production mode
func (c Config) Production() bool {
	return c.Env == "production"
}

// Load populates config from environment variables, reading .env first if present
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		Env:             getEnvString("APP_ENV", "development"),
		Host:            getEnvString("HTTP_HOST", "0.0.0.0"),
		Port:            getEnvString("PORT", "8080"),
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		AllowedOrigins:  splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")
	cfg.Neo4j.Database = os.Getenv("NEO4J_DATABASE")

	cfg.Redis.URL = os.Getenv("REDIS_URL")
	cfg.Redis.TTL = getEnvDuration("CACHE_TTL", 10*time.Minute)

	cfg.Sheets.CredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	cfg.Adzuna.AppID = os.Getenv("ADZUNA_APP_ID")
	cfg.Adzuna.AppKey = os.Getenv("ADZUNA_APP_KEY")
	cfg.Adzuna.Country = getEnvString("ADZUNA_COUNTRY", "in")

	cfg.Telemetry.CollectorURL = os.Getenv("OTEL_COLLECTOR_URL")
	cfg.Telemetry.ServiceName = getEnvString("OTEL_SERVICE_NAME", "jobshop")

	if err := cfg.validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	// Neo4j is optional, but a half-configured connection is a mistake
	neo4jVars := map[string]string{
		"NEO4J_URI":      c.Neo4j.URI,
		"NEO4J_USERNAME": c.Neo4j.Username,
		"NEO4J_PASSWORD": c.Neo4j.Password,
	}

	var set, missingVars []string
	for _, name := range []string{"NEO4J_URI", "NEO4J_USERNAME", "NEO4J_PASSWORD"} {
		if neo4jVars[name] == "" {
			missingVars = append(missingVars, name)
		} else {
			set = append(set, name)
		}
	}

	if len(set) > 0 && len(missingVars) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}

	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
