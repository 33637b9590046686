package retrieve

import (
	"net/url"
	"strings"
)

// NormalizeURL reduces a URL to host+path for equality-style comparison.
// The literal tokens "www." and "m." are removed wherever they occur in the
// host, not only as a leading label; the verifier's containment check depends
// on this looseness, so do not tighten it to a prefix strip. Query strings
// and fragments are left alone. Unparseable input is returned unchanged.
func NormalizeURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	host := strings.ReplaceAll(parsed.Host, "www.", "")
	host = strings.ReplaceAll(host, "m.", "")
	return host + parsed.Path
}
