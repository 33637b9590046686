package search

import (
	"os"
	"strings"
)

// ConfigFromEnv builds a search config using environment variables.
func ConfigFromEnv() *Config {
	cfg := (&Config{}).WithDefaults()

	cfg.Tavily.APIKey = envOr(cfg.Tavily.APIKey, os.Getenv("TAVILY_API_KEY"))
	cfg.Tavily.BaseURL = envOr(cfg.Tavily.BaseURL, os.Getenv("TAVILY_BASE_URL"))
	if depth := strings.TrimSpace(os.Getenv("TAVILY_SEARCH_DEPTH")); depth != "" {
		cfg.Tavily.Depth = depth
	}

	return cfg
}

func envOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}
