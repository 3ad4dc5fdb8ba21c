package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	DatabaseURL     string
	Env             string

	LLMProvider string
	LLMModel    string
	EmbedModel  string
	OpenAIKey   string

	MarketplaceBaseURL string
	MarketplaceAPIKey  string
	EventsBaseURL      string
	EventsAPIKey       string
	DiningBaseURL      string
	DiningAPIKey       string

	ProviderTimeout  time.Duration
	URLCheckTimeout  time.Duration
	LearnerInterval  time.Duration
	TargetCandidates int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		DatabaseURL:     dbURL,
		Env:             env,

		LLMProvider: getEnv("LLM_PROVIDER", "openai"),
		LLMModel:    getEnv("LLM_MODEL", "gpt-4o-mini"),
		EmbedModel:  getEnv("EMBED_MODEL", "text-embedding-3-small"),
		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),

		MarketplaceBaseURL: getEnv("MARKETPLACE_BASE_URL", ""),
		MarketplaceAPIKey:  getEnv("MARKETPLACE_API_KEY", ""),
		EventsBaseURL:      getEnv("EVENTS_BASE_URL", ""),
		EventsAPIKey:       getEnv("EVENTS_API_KEY", ""),
		DiningBaseURL:      getEnv("DINING_BASE_URL", ""),
		DiningAPIKey:       getEnv("DINING_API_KEY", ""),

		ProviderTimeout:  getEnvDuration("PROVIDER_TIMEOUT", 8*time.Second),
		URLCheckTimeout:  getEnvDuration("URL_CHECK_TIMEOUT", 5*time.Second),
		LearnerInterval:  getEnvDuration("LEARNER_INTERVAL", time.Hour),
		TargetCandidates: getEnvInt("TARGET_CANDIDATES", 20),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int: %v", key, err)
		return def
	}
	return val
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("config %s invalid duration: %v", key, err)
		return def
	}
	return val
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}
