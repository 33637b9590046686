// Package retrieve turns a URL into verified textual content or an explicit
// failure. It never substitutes unrelated search hits for a page it could not
// read: fallback content is only accepted when the search result's URL
// matches the requested one.
package retrieve

// Status tags the overall result of a retrieval.
type Status string

const (
	// StatusSuccess means the page was read directly.
	StatusSuccess Status = "success"
	// StatusFallbackSuccess means direct reading failed but a search cache
	// entry for the same URL was found.
	StatusFallbackSuccess Status = "fallback_success"
	// StatusError means no verified content could be collected.
	StatusError Status = "error"
)

// Method records which path produced the content.
type Method string

const (
	MethodDirectScrape        Method = "direct_scrape"
	MethodVerifiedSearchCache Method = "verified_search_cache"
)

// Outcome is the structured result of one retrieval attempt. Exactly one of
// Content and Message is populated, keyed by Status: content on success and
// fallback_success, a human-readable failure explanation on error.
type Outcome struct {
	Status  Status `json:"status"`
	Method  Method `json:"method,omitempty"`
	Content string `json:"content,omitempty"`
	Message string `json:"message,omitempty"`
	Note    string `json:"note,omitempty"`
}
