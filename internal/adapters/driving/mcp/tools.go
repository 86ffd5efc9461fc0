package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kanzlabs/kanz/internal/core/domain"
)

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Query    string   `json:"query" jsonschema:"the search query, Arabic or English"`
	Limit    int      `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
	Types    []string `json:"types,omitempty" jsonschema:"restrict results to these source types"`
	MinScore float64  `json:"min_score,omitempty" jsonschema:"drop results scoring below this threshold"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	ItemID       string   `json:"item_id"`
	SourceType   string   `json:"source_type"`
	Title        string   `json:"title"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
	Snippet      string   `json:"snippet,omitempty"`
}

// ContextInput is the input schema for the context tool.
type ContextInput struct {
	Query     string `json:"query" jsonschema:"the question to gather background knowledge for"`
	MaxItems  int    `json:"max_items,omitempty" jsonschema:"maximum number of context sections (default 5)"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"maximum context length in characters (default 4000)"`
}

// ContextOutput is the output schema for the context tool.
type ContextOutput struct {
	Context string `json:"context"`
	Found   bool   `json:"found"`
}

// SuggestInput is the input schema for the suggest tool.
type SuggestInput struct {
	Prefix string `json:"prefix" jsonschema:"the partial term to complete, at least two characters"`
	Limit  int    `json:"limit,omitempty" jsonschema:"maximum number of suggestions (default 10)"`
}

// SuggestOutput is the output schema for the suggest tool.
type SuggestOutput struct {
	Terms []string `json:"terms"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the local knowledge index",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "context",
		Description: "Assemble a bounded prompt-context block for a question",
	}, s.handleContext)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest",
		Description: "Complete a partial search term from the indexed vocabulary",
	}, s.handleSuggest)
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		MaxResults:   input.Limit,
		MinScore:     input.MinScore,
		WithSnippets: true,
	}
	for _, t := range input.Types {
		opts.SourceTypes = append(opts.SourceTypes, domain.SourceType(t))
	}

	results := s.ports.Engine.Search(ctx, input.Query, opts)

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = SearchResultOutput{
			ItemID:       results[i].Item.ID,
			SourceType:   string(results[i].Item.SourceType),
			Title:        results[i].Item.Title,
			Score:        results[i].Score,
			MatchedTerms: results[i].MatchedTerms,
			Snippet:      results[i].Snippet,
		}
	}

	return nil, output, nil
}

// handleContext handles the context tool invocation.
func (s *Server) handleContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ContextInput,
) (*mcp.CallToolResult, ContextOutput, error) {
	text := s.ports.Engine.ContextForPrompt(ctx, input.Query, input.MaxItems, input.MaxLength)
	return nil, ContextOutput{Context: text, Found: text != ""}, nil
}

// handleSuggest handles the suggest tool invocation.
func (s *Server) handleSuggest(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	terms := s.ports.Engine.Suggest(input.Prefix, limit)
	if terms == nil {
		terms = []string{}
	}
	return nil, SuggestOutput{Terms: terms}, nil
}
