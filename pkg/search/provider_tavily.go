package search

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/verityai/grounder/pkg/shared/httputil"
)

type tavilyProvider struct {
	cfg TavilyConfig
}

// NewTavily constructs a Tavily-backed search provider.
func NewTavily(cfg TavilyConfig) Provider {
	return &tavilyProvider{cfg: cfg.withDefaults()}
}

func (p *tavilyProvider) Name() string {
	return ProviderTavily
}

func (p *tavilyProvider) Search(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(p.cfg.APIKey) == "" {
		return nil, errors.New("tavily api_key is empty")
	}

	depth := req.Depth
	if depth == "" {
		depth = p.cfg.Depth
	}
	payload := map[string]any{
		"query":        req.Query,
		"search_depth": depth,
	}
	if req.Count > 0 {
		payload["max_results"] = req.Count
	}

	endpoint := strings.TrimRight(p.cfg.BaseURL, "/") + "/search"
	start := time.Now()
	data, _, err := httputil.PostJSON(ctx, endpoint, map[string]string{
		"Authorization": "Bearer " + p.cfg.APIKey,
		"Accept":        "application/json",
	}, payload, p.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Results []struct {
			Title   string  `json:"title"`
			URL     string  `json:"url"`
			Content string  `json:"content"`
			Score   float64 `json:"score"`
		} `json:"results"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(resp.Results))
	for _, entry := range resp.Results {
		results = append(results, Result{
			Title:   strings.TrimSpace(entry.Title),
			URL:     entry.URL,
			Content: strings.TrimSpace(entry.Content),
			Score:   entry.Score,
		})
	}

	return &Response{
		Query:     req.Query,
		Provider:  ProviderTavily,
		TookMs:    time.Since(start).Milliseconds(),
		Results:   results,
		NoResults: len(results) == 0,
	}, nil
}
