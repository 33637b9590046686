package retrieve

import "strings"

// SameResource reports whether a search result URL may be trusted as content
// of the target URL. Both are normalized, then matched by bidirectional
// substring containment rather than exact equality: search indexes return
// URLs with or without trailing path segments, query parameters, or AMP-style
// prefixes, and strict equality would reject legitimate matches. A candidate
// that normalizes to nothing (a result without a URL) never matches.
func SameResource(candidate, target string) bool {
	candidateNorm := NormalizeURL(candidate)
	targetNorm := NormalizeURL(target)
	if candidateNorm == "" || targetNorm == "" {
		return false
	}
	return strings.Contains(candidateNorm, targetNorm) || strings.Contains(targetNorm, candidateNorm)
}
