package fetch

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/verityai/grounder/pkg/shared/httputil"
)

type firecrawlProvider struct {
	cfg FirecrawlConfig
}

// NewFirecrawl constructs a Firecrawl-backed extraction provider.
func NewFirecrawl(cfg FirecrawlConfig) Provider {
	return &firecrawlProvider{cfg: cfg.withDefaults()}
}

func (p *firecrawlProvider) Name() string {
	return ProviderFirecrawl
}

func (p *firecrawlProvider) Scrape(ctx context.Context, req Request) (*Document, error) {
	format := req.Format
	if format == "" {
		format = FormatMarkdown
	}
	payload := map[string]any{
		"url":     req.URL,
		"formats": []string{format},
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/v1/scrape"
	data, _, err := httputil.PostJSON(ctx, endpoint, map[string]string{
		"Authorization": "Bearer " + p.cfg.APIKey,
		"Accept":        "application/json",
	}, payload, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	// The API has shipped both flat and data-enveloped response shapes;
	// Document keeps both so the caller can probe either location.
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
