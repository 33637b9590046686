package scholar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>ArXiv Query</title>
  <entry>
    <title>Reducing Hallucination in
  Large Language Models</title>
    <summary>  We study grounding strategies
  for generative answers.  </summary>
    <published>2024-03-15T17:59:02Z</published>
    <link href="http://arxiv.org/abs/2403.00001v1" rel="alternate" type="text/html"/>
    <link title="pdf" href="http://arxiv.org/pdf/2403.00001v1" rel="related" type="application/pdf"/>
  </entry>
  <entry>
    <title>Second Paper</title>
    <summary>Another abstract.</summary>
    <published>2023-11-02T09:00:00Z</published>
    <link href="http://arxiv.org/abs/2311.00002v2" rel="alternate" type="text/html"/>
  </entry>
</feed>`

func TestClientSearchParsesAtomFeed(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("search_query") != "all:hallucination" {
			t.Fatalf("unexpected search_query: %q", query.Get("search_query"))
		}
		if query.Get("sortBy") != "relevance" {
			t.Fatalf("unexpected sortBy: %q", query.Get("sortBy"))
		}
		if query.Get("max_results") != "3" {
			t.Fatalf("unexpected max_results: %q", query.Get("max_results"))
		}
		w.Header().Set("Content-Type", "application/atom+xml")
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	papers, err := client.Search(context.Background(), "hallucination", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(papers) != 2 {
		t.Fatalf("expected 2 papers, got %d", len(papers))
	}

	first := papers[0]
	if first.Title != "Reducing Hallucination in Large Language Models" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if first.Summary != "We study grounding strategies for generative answers." {
		t.Fatalf("unexpected summary: %q", first.Summary)
	}
	if first.Published.Format("2006-01-02") != "2024-03-15" {
		t.Fatalf("unexpected published date: %v", first.Published)
	}
	if first.PDFURL != "http://arxiv.org/pdf/2403.00001v1" {
		t.Fatalf("unexpected pdf url: %q", first.PDFURL)
	}

	if papers[1].PDFURL != "" {
		t.Fatalf("expected empty pdf url for entry without pdf link, got %q", papers[1].PDFURL)
	}
}

func TestClientSearchRejectsEmptyQuery(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.Search(context.Background(), "  ", 3); err == nil {
		t.Fatalf("expected error for empty query")
	}
}
