package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/verityai/grounder/pkg/fetch"
	"github.com/verityai/grounder/pkg/scholar"
	"github.com/verityai/grounder/pkg/search"
)

// config assembles the per-package collaborator configs plus the model
// settings for the shell itself.
type config struct {
	Model         string         `yaml:"model"`
	OpenAIBaseURL string         `yaml:"openai_base_url"`
	OpenAIAPIKey  string         `yaml:"openai_api_key"`
	Search        *search.Config `yaml:"search"`
	Fetch         *fetch.Config  `yaml:"fetch"`
	Scholar       scholar.Config `yaml:"scholar"`
}

// loadConfig reads the optional YAML config file, then overlays environment
// variables. Env wins for credentials so keys can stay out of the file.
func loadConfig(path string) (*config, error) {
	cfg := &config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.Search = cfg.Search.WithDefaults()
	cfg.Fetch = cfg.Fetch.WithDefaults()

	envSearch := search.ConfigFromEnv()
	if envSearch.Tavily.APIKey != "" {
		cfg.Search.Tavily.APIKey = envSearch.Tavily.APIKey
	}
	if os.Getenv("TAVILY_BASE_URL") != "" {
		cfg.Search.Tavily.BaseURL = envSearch.Tavily.BaseURL
	}

	envFetch := fetch.ConfigFromEnv()
	if envFetch.Firecrawl.APIKey != "" {
		cfg.Fetch.Firecrawl.APIKey = envFetch.Firecrawl.APIKey
	}
	if os.Getenv("FIRECRAWL_BASE_URL") != "" {
		cfg.Fetch.Firecrawl.BaseURL = envFetch.Firecrawl.BaseURL
	}
	if os.Getenv("FETCH_PROVIDER") != "" {
		cfg.Fetch.Provider = envFetch.Provider
	}

	cfg.OpenAIAPIKey = envOr(cfg.OpenAIAPIKey, os.Getenv("OPENAI_API_KEY"))
	cfg.OpenAIBaseURL = envOr(cfg.OpenAIBaseURL, os.Getenv("OPENAI_BASE_URL"))
	cfg.Model = envOr(cfg.Model, os.Getenv("GROUNDER_MODEL"))

	return cfg, nil
}

func envOr(existing, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return existing
	}
	return value
}
