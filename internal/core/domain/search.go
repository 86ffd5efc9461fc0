package domain

import "time"

// SearchOptions configures a search query against the inverted index.
type SearchOptions struct {
	// MaxResults is the maximum number of results. Defaults to 10.
	MaxResults int

	// SourceTypes filters results to the given types. Empty means all.
	SourceTypes []SourceType

	// MinScore drops results below this normalized score.
	// The filter applies to the pre-boost score.
	MinScore float64

	// WithSnippets extracts a text snippet per result.
	WithSnippets bool
}

// AllowsType reports whether the options admit items of type t.
func (o SearchOptions) AllowsType(t SourceType) bool {
	if len(o.SourceTypes) == 0 {
		return true
	}
	for _, st := range o.SourceTypes {
		if st == t {
			return true
		}
	}
	return false
}

// SearchResult is a single ranked query hit. Query-scoped and ephemeral.
type SearchResult struct {
	// Item is the matched knowledge item.
	Item KnowledgeItem

	// Score is the normalized relevance score. Sits in [0,1] before
	// the recency boost; the boost may push it slightly above 1.
	Score float64

	// MatchedTerms lists the query terms that matched this item.
	MatchedTerms []string

	// Snippet is a short excerpt around the earliest term match.
	// Empty unless SearchOptions.WithSnippets was set.
	Snippet string
}

// QueryOptions configures an engine-level query.
type QueryOptions struct {
	// Query is the free-text query (Arabic or Latin script).
	Query string

	// Search carries the ranking options passed to the searcher.
	Search SearchOptions

	// IncludeContext assembles the prompt-context text block.
	IncludeContext bool

	// MaxContextItems bounds the number of context sections.
	// Defaults to 5.
	MaxContextItems int

	// MaxContextLength bounds the context text length in characters.
	// Defaults to 4000.
	MaxContextLength int
}

// QueryResponse is the engine-level answer to a query.
type QueryResponse struct {
	// Results are the ranked hits.
	Results []SearchResult

	// ContextText is the prompt-context block, empty unless requested
	// or when no items matched.
	ContextText string

	// Elapsed is how long the query took.
	Elapsed time.Duration

	// TotalIndexed is the number of items in the store at query time.
	TotalIndexed int
}
