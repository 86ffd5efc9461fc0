package driving

import (
	"context"

	"github.com/kanzlabs/kanz/internal/core/domain"
)

// KnowledgeEngine is the single entry point for querying and managing
// the knowledge index. Every read operation called before a successful
// Initialize returns empty/zero values rather than an error; callers
// poll IsReady when they need to distinguish the two.
type KnowledgeEngine interface {
	// Initialize wires the indexer and searcher. When autoIndex is
	// true it also runs a full index. Idempotent: a second call while
	// already initialized is a no-op returning nil.
	Initialize(ctx context.Context, autoIndex bool) error

	// IsReady reports whether Initialize has completed successfully.
	IsReady() bool

	// Query runs a free-text query, optionally assembling prompt
	// context, and reports timing and store size.
	Query(ctx context.Context, opts domain.QueryOptions) domain.QueryResponse

	// ContextForPrompt returns only the prompt-context text for a
	// query, bounded by maxItems sections and maxLength characters.
	// Empty string when nothing relevant was found.
	ContextForPrompt(ctx context.Context, query string, maxItems, maxLength int) string

	// Search runs a ranked query without context assembly.
	Search(ctx context.Context, query string, opts domain.SearchOptions) []domain.SearchResult

	// Suggest returns indexed vocabulary terms extending partial.
	Suggest(partial string, limit int) []string

	// Related returns items similar to the given item, never
	// including the item itself.
	Related(itemID string, limit int) []domain.SearchResult

	// Reindex runs a full index and refreshes the searcher.
	Reindex(ctx context.Context) (domain.IndexStats, error)

	// ReindexSource re-indexes a single source by ID.
	ReindexSource(ctx context.Context, sourceID string) (domain.IndexStats, error)

	// Stats returns the current index statistics.
	Stats() domain.IndexStats

	// AllItems returns every item in the store.
	AllItems() []domain.KnowledgeItem
}
