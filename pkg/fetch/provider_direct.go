package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type directProvider struct {
	cfg DirectConfig
}

// NewDirect constructs an extraction provider that fetches the page itself
// and strips it down to readable text.
func NewDirect(cfg DirectConfig) Provider {
	return &directProvider{cfg: cfg.withDefaults()}
}

func (p *directProvider) Name() string {
	return ProviderDirect
}

func (p *directProvider) Scrape(ctx context.Context, req Request) (*Document, error) {
	if !isAllowedURL(req.URL) {
		return nil, fmt.Errorf("url not allowed")
	}

	client := &http.Client{Timeout: time.Duration(p.cfg.TimeoutSecs) * time.Second}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", p.cfg.UserAgent)
	request.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode, resp.Status)
	}

	text, err := extractReadableText(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Document{Markdown: text}, nil
}

func extractReadableText(r io.Reader) (string, error) {
	page, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", err
	}
	page.Find("script, style, noscript").Remove()

	text := collapseWhitespace(page.Find("body").Text())
	if text == "" {
		text = collapseWhitespace(page.Text())
	}
	return text, nil
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var blockedCIDRs = []*net.IPNet{
	mustParseCIDR("127.0.0.0/8"),
	mustParseCIDR("10.0.0.0/8"),
	mustParseCIDR("172.16.0.0/12"),
	mustParseCIDR("192.168.0.0/16"),
	mustParseCIDR("169.254.0.0/16"),
	mustParseCIDR("::1/128"),
}

func mustParseCIDR(value string) *net.IPNet {
	_, parsed, err := net.ParseCIDR(value)
	if err != nil {
		panic(fmt.Sprintf("invalid CIDR %q: %v", value, err))
	}
	return parsed
}

func isAllowedURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	if host == "localhost" {
		return false
	}
	ip := net.ParseIP(host)
	if ip != nil {
		if ip4 := ip.To4(); ip4 != nil {
			ip = ip4
		}
		for _, cidr := range blockedCIDRs {
			if cidr.Contains(ip) {
				return false
			}
		}
	}
	return true
}
