package retrieve

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/verityai/grounder/pkg/fetch"
	"github.com/verityai/grounder/pkg/search"
)

const (
	// Direct extractions shorter than this are treated as a blocked or
	// interstitial page rather than genuine content.
	minDirectChars = 100
	// Direct content is capped to bound downstream token cost.
	maxDirectChars = 4000
)

const (
	refusalMessage = "The page content could not be read (scraping blocked and no verified search cache). " +
		"Refusing to answer from unverified sources rather than risk fabricating content."
	collectionFailedMessage = "Content collection failed entirely: neither direct extraction nor search fallback was reachable."
	fallbackNote            = "Direct access was blocked; this is the search engine's cached summary, not necessarily the full text."
)

// Scraper is the direct-extraction collaborator.
type Scraper interface {
	Scrape(ctx context.Context, req fetch.Request) (*fetch.Document, error)
}

// Searcher is the generic web-search collaborator used for the verified
// fallback.
type Searcher interface {
	Search(ctx context.Context, req search.Request) (*search.Response, error)
}

// Engine runs the two-stage scrape-then-verify retrieval. It never returns an
// error: every failure path is folded into an error Outcome so the
// conversation layer always receives something it can safely relay.
type Engine struct {
	scraper  Scraper
	searcher Searcher
	log      zerolog.Logger
}

// NewEngine constructs a retrieval engine over the given collaborators.
func NewEngine(scraper Scraper, searcher Searcher, log zerolog.Logger) *Engine {
	return &Engine{
		scraper:  scraper,
		searcher: searcher,
		log:      log.With().Str("component", "retrieve").Logger(),
	}
}

// Retrieve attempts direct extraction of url, falling back to URL-verified
// search cache content. Single attempt per stage, no retries.
func (e *Engine) Retrieve(ctx context.Context, url string) Outcome {
	content, err := e.scrapeDirect(ctx, url)
	if err == nil {
		e.log.Debug().Str("url", url).Int("chars", len(content)).Msg("Direct extraction succeeded")
		return Outcome{
			Status:  StatusSuccess,
			Method:  MethodDirectScrape,
			Content: content,
		}
	}

	e.log.Debug().Err(err).Str("url", url).Msg("Direct extraction failed, trying verified search fallback")
	return e.fallback(ctx, url)
}

func (e *Engine) scrapeDirect(ctx context.Context, url string) (string, error) {
	doc, err := e.scraper.Scrape(ctx, fetch.Request{URL: url, Format: fetch.FormatMarkdown})
	if err != nil {
		return "", err
	}
	content := doc.Body()
	if len([]rune(content)) < minDirectChars {
		return "", fmt.Errorf("extraction blocked: got %d chars", len([]rune(content)))
	}
	return truncateRunes(content, maxDirectChars), nil
}

func (e *Engine) fallback(ctx context.Context, url string) Outcome {
	resp, err := e.searcher.Search(ctx, search.Request{Query: url, Depth: search.DepthAdvanced})
	if err != nil {
		e.log.Warn().Err(err).Str("url", url).Msg("Search fallback unreachable")
		return Outcome{Status: StatusError, Message: collectionFailedMessage}
	}

	var matched []string
	for _, result := range resp.Results {
		if !SameResource(result.URL, url) {
			continue
		}
		matched = append(matched, fmt.Sprintf("- Title: %s\n- Content: %s", result.Title, result.Content))
	}

	if len(matched) == 0 {
		e.log.Info().Str("url", url).Int("results", len(resp.Results)).
			Msg("No search result verified against target URL, refusing")
		return Outcome{Status: StatusError, Message: refusalMessage}
	}

	return Outcome{
		Status:  StatusFallbackSuccess,
		Method:  MethodVerifiedSearchCache,
		Content: strings.Join(matched, "\n\n"),
		Note:    fallbackNote,
	}
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
