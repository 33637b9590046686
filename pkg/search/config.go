package search

const (
	ProviderTavily = "tavily"

	DepthBasic    = "basic"
	DepthAdvanced = "advanced"

	DefaultSearchCount = 5
	DefaultTimeoutSecs = 30
)

// Config controls search provider selection and credentials.
type Config struct {
	Provider string       `yaml:"provider"`
	Tavily   TavilyConfig `yaml:"tavily"`
}

type TavilyConfig struct {
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key"`
	Depth       string `yaml:"depth"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

func (c *Config) WithDefaults() *Config {
	if c == nil {
		c = &Config{}
	}
	if c.Provider == "" {
		c.Provider = ProviderTavily
	}
	c.Tavily = c.Tavily.withDefaults()
	return c
}

func (c TavilyConfig) withDefaults() TavilyConfig {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.tavily.com"
	}
	if c.Depth == "" {
		c.Depth = DepthBasic
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}
