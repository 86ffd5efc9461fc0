package services

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/core/ports/driving"
	"github.com/kanzlabs/kanz/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.KnowledgeEngine = (*Engine)(nil)

// contextHeader opens every prompt-context block. The assistant's
// system prompt references this exact Arabic heading.
const contextHeader = "# معلومات ذات صلة:\n\n"

// Context assembly defaults.
const (
	defaultContextItems  = 5
	defaultContextLength = 4000

	// contextBodyLimit caps a section body when a result carries no
	// snippet: the leading characters of the item content.
	contextBodyLimit = 500
)

// Engine is the single entry point combining the indexer and searcher,
// plus prompt-context assembly for the external AI chat service.
//
// The engine is an explicit, constructible service: the composition
// root owns one instance and tests construct their own. Every read
// operation called before Initialize succeeds returns empty or
// zero-valued results rather than an error; the surrounding UI polls
// IsReady.
type Engine struct {
	mu          sync.Mutex
	initialized bool

	indexer  *Indexer
	searcher *Searcher
}

// NewEngine creates an engine around an indexer that already carries
// its sources. The searcher is built during Initialize.
func NewEngine(indexer *Indexer) *Engine {
	return &Engine{indexer: indexer}
}

// Initialize wires the searcher to the indexer's item store. When
// autoIndex is true it runs a full index first (typically on a worker
// thread of the surrounding application, since source extraction
// blocks). Idempotent: concurrent first callers observe exactly one
// initialization and later calls are no-ops.
func (e *Engine) Initialize(ctx context.Context, autoIndex bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		logger.Debug("Engine already initialized")
		return nil
	}

	logger.Section("Engine Initialization")

	if autoIndex {
		e.indexer.IndexAll(ctx)
	}

	searcher := NewSearcher()
	searcher.SetItems(e.indexer.AllItems())
	e.searcher = searcher
	e.initialized = true

	logger.Info("Engine ready: %d items indexed", searcher.Count())
	return nil
}

// IsReady reports whether Initialize has completed successfully.
func (e *Engine) IsReady() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// ready returns the searcher when the engine is initialized, nil otherwise.
func (e *Engine) ready() *Searcher {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return nil
	}
	return e.searcher
}

// Query runs a free-text query and optionally assembles the
// prompt-context block. Uninitialized engines answer with an empty
// response so the chat UI can treat "not ready" and "nothing found"
// identically.
func (e *Engine) Query(_ context.Context, opts domain.QueryOptions) domain.QueryResponse {
	start := time.Now()

	searcher := e.ready()
	if searcher == nil {
		logger.Debug("Query before initialization, returning empty response")
		return domain.QueryResponse{Results: []domain.SearchResult{}}
	}

	searchOpts := opts.Search
	searchOpts.WithSnippets = true

	results := searcher.Search(opts.Query, searchOpts)

	resp := domain.QueryResponse{
		Results:      results,
		TotalIndexed: searcher.Count(),
	}

	if opts.IncludeContext {
		maxItems := opts.MaxContextItems
		if maxItems <= 0 {
			maxItems = defaultContextItems
		}
		maxLength := opts.MaxContextLength
		if maxLength <= 0 {
			maxLength = defaultContextLength
		}
		resp.ContextText = buildContext(results, maxItems, maxLength)
	}

	resp.Elapsed = time.Since(start)
	logger.Debug("Query %q: %d results in %s", opts.Query, len(results), resp.Elapsed)
	return resp
}

// ContextForPrompt returns only the context text for a query, bounded
// by maxItems sections and maxLength characters. Returns the empty
// string when nothing relevant is indexed, so the assistant falls back
// to answering without retrieved context.
func (e *Engine) ContextForPrompt(ctx context.Context, query string, maxItems, maxLength int) string {
	resp := e.Query(ctx, domain.QueryOptions{
		Query:            query,
		Search:           domain.SearchOptions{MaxResults: maxItems},
		IncludeContext:   true,
		MaxContextItems:  maxItems,
		MaxContextLength: maxLength,
	})
	return resp.ContextText
}

// buildContext concatenates "## <title>\n<body>" sections under the
// fixed Arabic header. Sections stop once the count bound is reached
// or appending one more would exceed the character budget; the header
// itself is outside the budget. Lengths count characters, not bytes,
// since most content is Arabic.
func buildContext(results []domain.SearchResult, maxItems, maxLength int) string {
	if len(results) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(contextHeader)

	used := 0
	appended := 0
	for _, r := range results {
		if appended >= maxItems {
			break
		}

		body := r.Snippet
		if body == "" {
			body = leadingRunes(r.Item.Content, contextBodyLimit)
		}

		section := "## " + r.Item.Title + "\n" + body + "\n\n"
		sectionLen := utf8.RuneCountInString(section)
		if used+sectionLen > maxLength {
			break
		}

		b.WriteString(section)
		used += sectionLen
		appended++
	}

	if appended == 0 {
		return ""
	}
	return b.String()
}

// leadingRunes returns the first n characters of s.
func leadingRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// Search runs a ranked query without context assembly.
func (e *Engine) Search(_ context.Context, query string, opts domain.SearchOptions) []domain.SearchResult {
	searcher := e.ready()
	if searcher == nil {
		return []domain.SearchResult{}
	}
	return searcher.Search(query, opts)
}

// Suggest returns indexed vocabulary terms extending partial.
func (e *Engine) Suggest(partial string, limit int) []string {
	searcher := e.ready()
	if searcher == nil {
		return []string{}
	}
	return searcher.Suggest(partial, limit)
}

// Related returns items similar to the given item.
func (e *Engine) Related(itemID string, limit int) []domain.SearchResult {
	searcher := e.ready()
	if searcher == nil {
		return []domain.SearchResult{}
	}
	return searcher.Related(itemID, limit)
}

// Reindex runs a full index and refreshes the searcher's items.
func (e *Engine) Reindex(ctx context.Context) (domain.IndexStats, error) {
	searcher := e.ready()
	if searcher == nil {
		return domain.IndexStats{}, domain.ErrNotInitialized
	}

	stats := e.indexer.IndexAll(ctx)
	searcher.SetItems(e.indexer.AllItems())
	return stats, nil
}

// ReindexSource re-indexes a single source and refreshes the searcher.
func (e *Engine) ReindexSource(ctx context.Context, sourceID string) (domain.IndexStats, error) {
	searcher := e.ready()
	if searcher == nil {
		return domain.IndexStats{}, domain.ErrNotInitialized
	}

	stats, err := e.indexer.IndexSource(ctx, sourceID)
	if err != nil {
		return stats, err
	}
	searcher.SetItems(e.indexer.AllItems())
	return stats, nil
}

// Stats returns the current index statistics. Zero-valued before
// initialization.
func (e *Engine) Stats() domain.IndexStats {
	if e.ready() == nil {
		return domain.IndexStats{}
	}
	return e.indexer.Stats()
}

// AllItems returns every item in the store. Empty before initialization.
func (e *Engine) AllItems() []domain.KnowledgeItem {
	if e.ready() == nil {
		return []domain.KnowledgeItem{}
	}
	return e.indexer.AllItems()
}

// Indexer exposes the underlying indexer for source management from
// the composition root (sources add/remove commands).
func (e *Engine) Indexer() *Indexer {
	return e.indexer
}
