package fetch

import (
	"os"
	"strings"
)

// ConfigFromEnv builds an extraction config using environment variables.
func ConfigFromEnv() *Config {
	cfg := (&Config{}).WithDefaults()

	if provider := strings.TrimSpace(os.Getenv("FETCH_PROVIDER")); provider != "" {
		cfg.Provider = provider
	}
	cfg.Firecrawl.APIKey = envOr(cfg.Firecrawl.APIKey, os.Getenv("FIRECRAWL_API_KEY"))
	cfg.Firecrawl.BaseURL = envOr(cfg.Firecrawl.BaseURL, os.Getenv("FIRECRAWL_BASE_URL"))

	return cfg
}

func envOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}
