package mcp

import (
	"context"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/core/ports/driving"
)

// mockEngine is a canned-answer driving.KnowledgeEngine for tests.
type mockEngine struct {
	results     []domain.SearchResult
	contextText string
	suggestions []string
	items       []domain.KnowledgeItem
	stats       domain.IndexStats

	lastQuery string
	lastOpts  domain.SearchOptions
}

var _ driving.KnowledgeEngine = (*mockEngine)(nil)

func (m *mockEngine) Initialize(context.Context, bool) error { return nil }

func (m *mockEngine) IsReady() bool { return true }

func (m *mockEngine) Query(_ context.Context, opts domain.QueryOptions) domain.QueryResponse {
	m.lastQuery = opts.Query
	return domain.QueryResponse{Results: m.results, ContextText: m.contextText}
}

func (m *mockEngine) ContextForPrompt(_ context.Context, query string, _, _ int) string {
	m.lastQuery = query
	return m.contextText
}

func (m *mockEngine) Search(_ context.Context, query string, opts domain.SearchOptions) []domain.SearchResult {
	m.lastQuery = query
	m.lastOpts = opts
	return m.results
}

func (m *mockEngine) Suggest(string, int) []string { return m.suggestions }

func (m *mockEngine) Related(string, int) []domain.SearchResult { return m.results }

func (m *mockEngine) Reindex(context.Context) (domain.IndexStats, error) {
	return m.stats, nil
}

func (m *mockEngine) ReindexSource(context.Context, string) (domain.IndexStats, error) {
	return m.stats, nil
}

func (m *mockEngine) Stats() domain.IndexStats { return m.stats }

func (m *mockEngine) AllItems() []domain.KnowledgeItem { return m.items }
