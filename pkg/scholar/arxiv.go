// Package scholar queries academic paper indexes. The only backend today is
// the arXiv export API, which speaks Atom.
package scholar

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/verityai/grounder/pkg/shared/httputil"
)

const (
	DefaultBaseURL     = "https://export.arxiv.org/api"
	DefaultTimeoutSecs = 30
)

// Paper is a normalized academic search result.
type Paper struct {
	Title     string
	Summary   string
	Published time.Time
	PDFURL    string
}

// Config controls the arXiv client.
type Config struct {
	BaseURL     string `yaml:"base_url"`
	TimeoutSecs int    `yaml:"timeout_seconds"`
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	return c
}

// Client searches arXiv.
type Client struct {
	cfg Config
}

// NewClient constructs an arXiv client.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg.withDefaults()}
}

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	Title     string     `xml:"title"`
	Summary   string     `xml:"summary"`
	Published string     `xml:"published"`
	Links     []atomLink `xml:"link"`
}

type atomLink struct {
	Href  string `xml:"href,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

// Search returns up to maxResults papers sorted by relevance.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Paper, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("missing query")
	}
	if maxResults <= 0 {
		maxResults = 3
	}

	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("max_results", fmt.Sprintf("%d", maxResults))
	params.Set("sortBy", "relevance")
	params.Set("sortOrder", "descending")
	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/query?" + params.Encode()

	data, _, err := httputil.Get(ctx, endpoint, map[string]string{
		"Accept": "application/atom+xml",
	}, c.cfg.TimeoutSecs)
	if err != nil {
		return nil, err
	}

	var feed atomFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("decoding arxiv feed: %w", err)
	}

	papers := make([]Paper, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		paper := Paper{
			Title:   collapseSpace(entry.Title),
			Summary: collapseSpace(entry.Summary),
			PDFURL:  pdfLink(entry.Links),
		}
		if published, err := time.Parse(time.RFC3339, entry.Published); err == nil {
			paper.Published = published
		}
		papers = append(papers, paper)
	}
	return papers, nil
}

// pdfLink finds the PDF alternate link among an entry's links.
func pdfLink(links []atomLink) string {
	for _, link := range links {
		if link.Title == "pdf" || link.Type == "application/pdf" {
			return link.Href
		}
	}
	return ""
}

// collapseSpace flattens the newline-wrapped text arXiv returns inside Atom
// elements into single-spaced prose.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
