package retrieve

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/verityai/grounder/pkg/fetch"
	"github.com/verityai/grounder/pkg/search"
)

type fakeScraper struct {
	doc *fetch.Document
	err error
}

func (f *fakeScraper) Scrape(_ context.Context, _ fetch.Request) (*fetch.Document, error) {
	return f.doc, f.err
}

type fakeSearcher struct {
	resp     *search.Response
	err      error
	gotQuery string
	gotDepth string
}

func (f *fakeSearcher) Search(_ context.Context, req search.Request) (*search.Response, error) {
	f.gotQuery = req.Query
	f.gotDepth = req.Depth
	return f.resp, f.err
}

func markdownDoc(body string) *fetch.Document {
	return &fetch.Document{Markdown: body}
}

func newTestEngine(scraper Scraper, searcher Searcher) *Engine {
	return NewEngine(scraper, searcher, zerolog.Nop())
}

func TestRetrieveDirectSuccessKeepsContentVerbatim(t *testing.T) {
	body := strings.Repeat("markdown content. ", 14) // 252 chars, over the floor
	engine := newTestEngine(&fakeScraper{doc: markdownDoc(body)}, &fakeSearcher{})

	outcome := engine.Retrieve(context.Background(), "https://news.example.com/story/42")

	if outcome.Status != StatusSuccess {
		t.Fatalf("expected success, got %q (%q)", outcome.Status, outcome.Message)
	}
	if outcome.Method != MethodDirectScrape {
		t.Fatalf("expected direct_scrape method, got %q", outcome.Method)
	}
	if outcome.Content != body {
		t.Fatalf("expected verbatim content under the cap, got %d chars", len(outcome.Content))
	}
	if outcome.Message != "" {
		t.Fatalf("success outcome must not carry a message, got %q", outcome.Message)
	}
}

func TestRetrieveDirectSuccessTruncatesLongContent(t *testing.T) {
	body := strings.Repeat("x", 9000)
	engine := newTestEngine(&fakeScraper{doc: markdownDoc(body)}, &fakeSearcher{})

	outcome := engine.Retrieve(context.Background(), "https://example.com/a")

	if outcome.Status != StatusSuccess {
		t.Fatalf("expected success, got %q", outcome.Status)
	}
	if len([]rune(outcome.Content)) != 4000 {
		t.Fatalf("expected 4000 chars, got %d", len([]rune(outcome.Content)))
	}
}

func TestRetrieveDirectReadsNestedDocumentBody(t *testing.T) {
	var doc fetch.Document
	doc.Data.Markdown = strings.Repeat("nested body text ", 10)
	engine := newTestEngine(&fakeScraper{doc: &doc}, &fakeSearcher{})

	outcome := engine.Retrieve(context.Background(), "https://example.com/a")

	if outcome.Status != StatusSuccess {
		t.Fatalf("expected success from nested markdown, got %q", outcome.Status)
	}
}

func TestRetrieveShortContentFallsBack(t *testing.T) {
	searcher := &fakeSearcher{resp: &search.Response{
		Results: []search.Result{
			{URL: "https://news.example.com/story/42?ref=home", Title: "Story 42", Content: "cached summary"},
		},
	}}
	engine := newTestEngine(&fakeScraper{doc: markdownDoc("Access denied.")}, searcher)

	outcome := engine.Retrieve(context.Background(), "https://news.example.com/story/42")

	if outcome.Status != StatusFallbackSuccess {
		t.Fatalf("expected fallback_success, got %q (%q)", outcome.Status, outcome.Message)
	}
	if outcome.Method != MethodVerifiedSearchCache {
		t.Fatalf("expected verified_search_cache, got %q", outcome.Method)
	}
	if searcher.gotQuery != "https://news.example.com/story/42" {
		t.Fatalf("fallback must search the full URL, got %q", searcher.gotQuery)
	}
	if searcher.gotDepth != search.DepthAdvanced {
		t.Fatalf("fallback must use advanced depth, got %q", searcher.gotDepth)
	}
}

func TestRetrieveScrapeErrorFallsBackWithOnlyVerifiedResults(t *testing.T) {
	searcher := &fakeSearcher{resp: &search.Response{
		Results: []search.Result{
			{URL: "https://news.example.com/story/42?ref=home", Title: "Story 42", Content: "cached summary"},
			{URL: "https://unrelated.org/article", Title: "Unrelated", Content: "other text"},
		},
	}}
	engine := newTestEngine(&fakeScraper{err: errors.New("blocked")}, searcher)

	outcome := engine.Retrieve(context.Background(), "https://news.example.com/story/42")

	if outcome.Status != StatusFallbackSuccess {
		t.Fatalf("expected fallback_success, got %q (%q)", outcome.Status, outcome.Message)
	}
	if !strings.Contains(outcome.Content, "- Title: Story 42") {
		t.Fatalf("expected bulleted matched entry, got %q", outcome.Content)
	}
	if !strings.Contains(outcome.Content, "cached summary") {
		t.Fatalf("expected matched content, got %q", outcome.Content)
	}
	if strings.Contains(outcome.Content, "Unrelated") || strings.Contains(outcome.Content, "other text") {
		t.Fatalf("unverified result leaked into outcome: %q", outcome.Content)
	}
	if outcome.Note == "" {
		t.Fatalf("fallback outcome should carry a caveat note")
	}
}

func TestRetrieveRefusesWhenNoResultVerifies(t *testing.T) {
	searcher := &fakeSearcher{resp: &search.Response{
		Results: []search.Result{
			{URL: "https://a.example.org/1", Title: "A", Content: "aaa"},
			{URL: "https://b.example.org/2", Title: "B", Content: "bbb"},
			{URL: "https://c.example.org/3", Title: "C", Content: "ccc"},
		},
	}}
	engine := newTestEngine(&fakeScraper{doc: markdownDoc("tiny")}, searcher)

	outcome := engine.Retrieve(context.Background(), "https://news.example.com/story/42")

	if outcome.Status != StatusError {
		t.Fatalf("expected error despite non-empty result set, got %q", outcome.Status)
	}
	if outcome.Content != "" {
		t.Fatalf("error outcome must not carry content, got %q", outcome.Content)
	}
	for _, leaked := range []string{"aaa", "bbb", "ccc"} {
		if strings.Contains(outcome.Message, leaked) {
			t.Fatalf("unrelated content leaked into refusal message: %q", outcome.Message)
		}
	}
	if outcome.Message == "" {
		t.Fatalf("expected explicit refusal message")
	}
}

func TestRetrieveSearchErrorYieldsCollectionFailure(t *testing.T) {
	engine := newTestEngine(&fakeScraper{err: errors.New("blocked")}, &fakeSearcher{err: errors.New("search down")})

	outcome := engine.Retrieve(context.Background(), "https://example.com/a")

	if outcome.Status != StatusError {
		t.Fatalf("expected error, got %q", outcome.Status)
	}
	if outcome.Message == "" || outcome.Content != "" {
		t.Fatalf("error outcome must carry message only: %+v", outcome)
	}
}

func TestRetrieveOutcomeInvariantAcrossPaths(t *testing.T) {
	engines := []*Engine{
		newTestEngine(&fakeScraper{doc: markdownDoc(strings.Repeat("a", 200))}, &fakeSearcher{}),
		newTestEngine(&fakeScraper{err: errors.New("boom")}, &fakeSearcher{resp: &search.Response{}}),
		newTestEngine(&fakeScraper{err: errors.New("boom")}, &fakeSearcher{err: errors.New("down")}),
		newTestEngine(&fakeScraper{doc: &fetch.Document{}}, &fakeSearcher{resp: &search.Response{
			Results: []search.Result{{URL: "https://example.com/a", Title: "T", Content: "C"}},
		}}),
	}
	for i, engine := range engines {
		outcome := engine.Retrieve(context.Background(), "https://example.com/a")
		hasContent := outcome.Content != ""
		hasMessage := outcome.Message != ""
		if hasContent == hasMessage {
			t.Fatalf("case %d: exactly one of content/message must be set: %+v", i, outcome)
		}
		switch outcome.Status {
		case StatusSuccess, StatusFallbackSuccess:
			if !hasContent || outcome.Method == "" {
				t.Fatalf("case %d: content outcome missing fields: %+v", i, outcome)
			}
		case StatusError:
			if !hasMessage || outcome.Method != "" {
				t.Fatalf("case %d: error outcome malformed: %+v", i, outcome)
			}
		default:
			t.Fatalf("case %d: unknown status %q", i, outcome.Status)
		}
	}
}
