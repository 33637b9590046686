package fetch

import "strings"

const (
	ProviderFirecrawl = "firecrawl"
	ProviderDirect    = "direct"

	FormatMarkdown = "markdown"

	DefaultTimeoutSecs = 30
)

// Config controls extraction provider selection and credentials.
type Config struct {
	Provider  string          `yaml:"provider"`
	Firecrawl FirecrawlConfig `yaml:"firecrawl"`
	Direct    DirectConfig    `yaml:"direct"`
}

type FirecrawlConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

type DirectConfig struct {
	TimeoutSecs int    `yaml:"timeout_seconds"`
	UserAgent   string `yaml:"user_agent"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if strings.TrimSpace(c.Provider) == "" {
		c.Provider = ProviderFirecrawl
	}
	c.Firecrawl = c.Firecrawl.withDefaults()
	c.Direct = c.Direct.withDefaults()
	return c
}

func (c FirecrawlConfig) withDefaults() FirecrawlConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.firecrawl.dev"
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

func (c DirectConfig) withDefaults() DirectConfig {
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_7_2) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"
	}
	return c
}

// NewFromConfig picks the extraction backend: Firecrawl when a key is
// configured, plain HTTP otherwise.
func NewFromConfig(cfg *Config) Provider {
	cfg = cfg.WithDefaults()
	switch cfg.Provider {
	case ProviderDirect:
		return NewDirect(cfg.Direct)
	default:
		if strings.TrimSpace(cfg.Firecrawl.APIKey) != "" {
			return NewFirecrawl(cfg.Firecrawl)
		}
		return NewDirect(cfg.Direct)
	}
}
