package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderGateway = "gateway"
	ProviderGemini  = "gemini"
)

type Config struct {
	// Server
	Port string
	Env  string

	// AI backend
	AIProvider   string
	AIGatewayURL string
	AIGatewayKey string
	AIModel      string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// Redis (activity feed, optional)
	RedisURL      string
	EventsChannel string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		Env:           getEnvOrDefault("ENV", "development"),
		AIProvider:    strings.ToLower(getEnvOrDefault("AI_PROVIDER", ProviderGateway)),
		AIGatewayURL:  getEnvOrDefault("AI_GATEWAY_URL", "https://ai.gateway.lovable.dev/v1/chat/completions"),
		AIGatewayKey:  os.Getenv("LOVABLE_API_KEY"),
		AIModel:       getEnvOrDefault("AI_MODEL", "google/gemini-2.5-flash"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		RedisURL:      os.Getenv("REDIS_URL"),
		EventsChannel: getEnvOrDefault("EVENTS_CHANNEL", "humanize_events"),
	}

	return cfg
}

// FeedEnabled reports whether the Redis-backed activity feed should run.
func (c *Config) FeedEnabled() bool {
	return c.RedisURL != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
