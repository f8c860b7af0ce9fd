package config

import (
	"errors"
	"os"
	"strings"
)

// app config; provider selection, session verification and CORS
type Config struct {
	Provider       string
	SessionSecret  string
	AllowedOrigins []string
}

// loads configuration from environment variables
func LoadConfig() (*Config, error) {
	config := &Config{
		Provider:       getEnvOrDefault("AI_PROVIDER", "gemini"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	// Gemini validation is handled by gemini.NewConfig()
	if config.SessionSecret == "" {
		return errors.New("SESSION_SECRET is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
