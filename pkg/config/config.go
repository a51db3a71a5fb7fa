// Package config loads runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration. Database settings live in
// pkg/database and are loaded separately.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// AppEnv is "development" or "production"; development enables
	// text-format logs.
	AppEnv string

	// CORSOrigins is the browser origin allowlist. Empty means
	// same-origin only.
	CORSOrigins []string

	// ForceAuth makes every config require an authenticated principal,
	// regardless of its own requireAuth flag.
	ForceAuth bool

	// LLM provider credentials.
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string

	// IdempotencyTTL is how long replay reservations are kept.
	IdempotencyTTL time.Duration

	// CleanupInterval is how often the retention loop runs.
	CleanupInterval time.Duration
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:            getEnv("PORT", "8080"),
		AppEnv:          getEnv("APP_ENV", "development"),
		CORSOrigins:     splitOrigins(os.Getenv("CORS_ORIGINS")),
		ForceAuth:       getBool("FORCE_AUTH", false),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   os.Getenv("OPENAI_BASE_URL"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		IdempotencyTTL:  getDuration("IDEMPOTENCY_TTL_SECONDS", 86400*time.Second),
		CleanupInterval: getDuration("CLEANUP_INTERVAL_SECONDS", time.Hour),
	}
}

// IsProduction reports whether the process runs in production mode.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

// getDuration reads a whole-seconds env value.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	secs, err := strconv.Atoi(v)
	if err != nil || secs <= 0 {
		return defaultValue
	}
	return time.Duration(secs) * time.Second
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
