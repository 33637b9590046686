package retrieve

import "testing"

func TestNormalizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"strips www", "https://www.example.com/a/b", "example.com/a/b"},
		{"strips mobile prefix", "https://m.example.com/a/b", "example.com/a/b"},
		{"strips both anywhere in host", "https://www.m.example.com/x", "example.com/x"},
		{"query split off by parsing", "https://example.com/a?ref=home", "example.com/a"},
		{"plain host and path", "https://news.example.com/story/42", "news.example.com/story/42"},
		{"no scheme parses everything as path", "example.com/a", "example.com/a"},
		{"root path", "https://example.com/", "example.com/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeURL(tc.in); got != tc.want {
				t.Fatalf("NormalizeURL(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeURLFailsOpenOnUnparseableInput(t *testing.T) {
	in := "https://exa mple.com/a"
	if got := NormalizeURL(in); got != in {
		t.Fatalf("expected unparseable input returned unchanged, got %q", got)
	}
}
