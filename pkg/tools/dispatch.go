package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/verityai/grounder/pkg/retrieve"
	"github.com/verityai/grounder/pkg/scholar"
	"github.com/verityai/grounder/pkg/search"
)

const (
	searchResultLimit  = 3
	paperResultLimit   = 3
	paperSummaryLength = 200
	timeLayout         = "2006-01-02 15:04:05"
	dateLayout         = "2006-01-02"
)

// PaperSearcher is the academic-search collaborator.
type PaperSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]scholar.Paper, error)
}

// Retriever is the verified URL-content collaborator.
type Retriever interface {
	Retrieve(ctx context.Context, url string) retrieve.Outcome
}

// Dispatcher executes tool calls against the configured collaborators.
type Dispatcher struct {
	searcher search.Provider
	papers   PaperSearcher
	pages    Retriever
	now      func() time.Time
	log      zerolog.Logger
}

// NewDispatcher constructs a dispatcher over the given collaborators.
func NewDispatcher(searcher search.Provider, papers PaperSearcher, pages Retriever, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		searcher: searcher,
		papers:   papers,
		pages:    pages,
		now:      time.Now,
		log:      log.With().Str("component", "tools").Logger(),
	}
}

// Dispatch runs the named tool with JSON-encoded arguments and returns the
// serialized result text. Collaborator failures come back as error documents,
// never as panics or Go errors. Dispatching a name outside the fixed tool
// table panics: the advertised definitions and this switch enumerate the same
// set, so an unknown name means the caller is misconfigured.
func (d *Dispatcher) Dispatch(ctx context.Context, name Name, argumentsJSON string) string {
	args := decodeArguments(argumentsJSON)
	d.log.Debug().Str("tool", string(name)).Msg("Dispatching tool call")

	switch name {
	case NameCurrentTime:
		return d.now().Format(timeLayout)
	case NameWebSearch:
		return d.webSearch(ctx, args)
	case NamePaperSearch:
		return d.paperSearch(ctx, args)
	case NameReadURL:
		return d.readURL(ctx, args)
	}
	panic(fmt.Sprintf("tools: dispatch of unknown tool %q", name))
}

func decodeArguments(argumentsJSON string) map[string]any {
	args := map[string]any{}
	if argumentsJSON == "" {
		return args
	}
	// A malformed arguments blob leaves args empty; the per-tool required
	// parameter checks produce the error document.
	_ = json.Unmarshal([]byte(argumentsJSON), &args)
	return args
}

type searchResultDoc struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

func (d *Dispatcher) webSearch(ctx context.Context, args map[string]any) string {
	query, err := readString(args, "query", true)
	if err != nil {
		return errorDocument(err.Error())
	}

	resp, err := d.searcher.Search(ctx, search.Request{Query: query, Depth: search.DepthAdvanced})
	if err != nil {
		d.log.Warn().Err(err).Str("query", query).Msg("Web search failed")
		return errorDocument(fmt.Sprintf("search failed: %v", err))
	}

	results := resp.Results
	if len(results) > searchResultLimit {
		results = results[:searchResultLimit]
	}
	docs := make([]searchResultDoc, 0, len(results))
	for _, result := range results {
		docs = append(docs, searchResultDoc{Title: result.Title, URL: result.URL, Content: result.Content})
	}
	return jsonDocument(docs)
}

type paperDoc struct {
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Published string `json:"published"`
	PDFURL    string `json:"pdf_url"`
}

func (d *Dispatcher) paperSearch(ctx context.Context, args map[string]any) string {
	query, err := readString(args, "query", true)
	if err != nil {
		return errorDocument(err.Error())
	}

	papers, err := d.papers.Search(ctx, query, paperResultLimit)
	if err != nil {
		d.log.Warn().Err(err).Str("query", query).Msg("Paper search failed")
		return errorDocument(fmt.Sprintf("paper search failed: %v", err))
	}

	docs := make([]paperDoc, 0, len(papers))
	for _, paper := range papers {
		docs = append(docs, paperDoc{
			Title:     paper.Title,
			Summary:   truncateSummary(paper.Summary, paperSummaryLength),
			Published: paper.Published.Format(dateLayout),
			PDFURL:    paper.PDFURL,
		})
	}
	return jsonDocument(docs)
}

func (d *Dispatcher) readURL(ctx context.Context, args map[string]any) string {
	url, err := readString(args, "url", true)
	if err != nil {
		return errorDocument(err.Error())
	}
	outcome := d.pages.Retrieve(ctx, url)
	return jsonDocument(outcome)
}

func truncateSummary(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
