package fetch

import "context"

// Provider extracts readable page content for a given backend.
type Provider interface {
	Name() string
	Scrape(ctx context.Context, req Request) (*Document, error)
}
