package fetch

// Request represents a page extraction request.
type Request struct {
	URL    string
	Format string
}

// Document is the raw extraction payload returned by a provider. Scrape
// backends disagree about where the body lives: some put the markdown at the
// top level, others nest it under a data envelope. Callers must probe both.
type Document struct {
	Markdown string `json:"markdown"`
	Data     struct {
		Markdown string `json:"markdown"`
	} `json:"data"`
}

// Body returns the markdown text wherever the provider put it, or "" when the
// document carries no content.
func (d *Document) Body() string {
	if d == nil {
		return ""
	}
	if d.Markdown != "" {
		return d.Markdown
	}
	return d.Data.Markdown
}
