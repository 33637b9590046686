package search

// Request represents a normalized web search request.
type Request struct {
	Query string
	Depth string
	Count int
}

// Result is a normalized search result.
type Result struct {
	Title   string
	URL     string
	Content string
	Score   float64
}

// Response is a normalized search response.
type Response struct {
	Query     string
	Provider  string
	TookMs    int64
	Results   []Result
	NoResults bool
}
