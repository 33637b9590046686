// Package tools maps tool-call requests from the model onto the retrieval,
// search, and time primitives, and serializes their results back into the
// conversation.
package tools

// Name identifies one of the supported tools. The set is closed and fully
// enumerated at startup; dispatch on a name outside it is a programming
// error, not a runtime condition.
type Name string

const (
	NameCurrentTime Name = "current_time"
	NameWebSearch   Name = "web_search"
	NamePaperSearch Name = "paper_search"
	NameReadURL     Name = "read_url"
)

// Definition describes a tool to the model: identifier, prose description,
// and JSON schema for its arguments.
type Definition struct {
	Name        Name
	Description string
	Parameters  map[string]any
}

// Definitions returns the fixed tool table advertised to the model. The
// dispatch switch and this table enumerate the same set.
func Definitions() []Definition {
	return []Definition{
		{
			Name:        NameCurrentTime,
			Description: "Returns the current date and time.",
		},
		{
			Name:        NameWebSearch,
			Description: "Searches the web for recent news, trends, and general information.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Keywords or question to search for",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        NamePaperSearch,
			Description: "Searches academic papers and research material.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "Paper topic or keywords",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        NameReadURL,
			Description: "Reads and analyzes the content of a specific web page URL.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"url": map[string]any{
						"type":        "string",
						"description": "Web page URL to read",
					},
				},
				"required": []string{"url"},
			},
		},
	}
}

var displayNames = map[Name]string{
	NameCurrentTime: "Current Time",
	NameWebSearch:   "Web Search",
	NamePaperSearch: "Paper Search",
	NameReadURL:     "Page Reader",
}

// DisplayName returns a user-facing label for a tool, falling back to the
// raw identifier.
func DisplayName(name Name) string {
	if label, ok := displayNames[name]; ok {
		return label
	}
	return string(name)
}
