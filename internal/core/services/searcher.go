package services

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/logger"
)

// Field importance weights. The normalization divisor uses the title
// weight so a single-term query matching only titles scores exactly 1.
const (
	titleWeight   = 3.0
	keywordWeight = 2.5
	contentWeight = 1.0
)

// recencyWindow is how long an item counts as freshly indexed for the
// recency boost.
const recencyWindow = 7 * 24 * time.Hour

// recencyBoost multiplies the score of freshly indexed items.
// Applied after the MinScore filter and deliberately not re-clamped,
// so a retained score can exceed 1.0. Filtering stays on the un-boosted
// value; see the regression test before changing either order.
const recencyBoost = 1.1

// snippetRadius is the window, in characters, around a term match.
const snippetRadius = 100

// snippetFallback is how many leading characters the snippet falls
// back to when no query term occurs in the content.
const snippetFallback = 200

// defaultMaxResults caps result lists when the caller sets no limit.
const defaultMaxResults = 10

// posting is one inverted-index entry: an item containing the term,
// weighted by the field the term occurred in.
type posting struct {
	itemID string
	weight float64
}

// Searcher turns the flat item store into a queryable ranked index.
// The inverted index and item map are guarded by one mutex; SetItems
// swaps both atomically, so a search running concurrently with a
// re-index observes either the old or the new index, never a mix.
type Searcher struct {
	mu    sync.RWMutex
	items map[string]domain.KnowledgeItem
	index map[string][]posting

	// now is the clock for the recency boost, swappable in tests.
	now func() time.Time
}

// NewSearcher creates an empty searcher.
func NewSearcher() *Searcher {
	return &Searcher{
		items: make(map[string]domain.KnowledgeItem),
		index: make(map[string][]posting),
		now:   time.Now,
	}
}

// SetItems rebuilds the inverted index from the given items,
// replacing the previous index atomically.
func (s *Searcher) SetItems(items []domain.KnowledgeItem) {
	newItems := make(map[string]domain.KnowledgeItem, len(items))
	newIndex := make(map[string][]posting)

	for i := range items {
		newItems[items[i].ID] = items[i]
		indexItem(newIndex, items[i])
	}

	s.mu.Lock()
	s.items = newItems
	s.index = newIndex
	s.mu.Unlock()

	logger.Debug("Search index rebuilt: %d items, %d terms", len(newItems), len(newIndex))
}

// AddItem extends the index with one item without a full rebuild.
func (s *Searcher) AddItem(item domain.KnowledgeItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	indexItem(s.index, item)
}

// indexItem appends postings for every tokenized field of item.
func indexItem(index map[string][]posting, item domain.KnowledgeItem) {
	for _, term := range Tokenize(item.Title) {
		index[term] = append(index[term], posting{itemID: item.ID, weight: titleWeight})
	}
	for _, kw := range item.Keywords {
		for _, term := range Tokenize(kw) {
			index[term] = append(index[term], posting{itemID: item.ID, weight: keywordWeight})
		}
	}
	for _, term := range Tokenize(item.Content) {
		index[term] = append(index[term], posting{itemID: item.ID, weight: contentWeight})
	}
}

// Count returns the number of indexed items.
func (s *Searcher) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Search answers a ranked free-text query.
//
// Exact postings accumulate at full weight; indexed terms the query
// term is a strict prefix of accumulate at half weight, which gives
// short query fragments substring-style discovery. Scores are
// normalized by (query term count × title weight) and clamped to 1
// before filtering; the recency boost lands after the filters.
func (s *Searcher) Search(query string, opts domain.SearchOptions) []domain.SearchResult {
	terms := Tokenize(query)
	if len(terms) == 0 {
		return []domain.SearchResult{}
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	logger.Debug("Search: terms=%v, indexed=%d", terms, len(s.items))

	scores := make(map[string]float64)
	matched := make(map[string]map[string]bool)

	mark := func(itemID, term string) {
		if matched[itemID] == nil {
			matched[itemID] = make(map[string]bool)
		}
		matched[itemID][term] = true
	}

	for _, term := range terms {
		for _, p := range s.index[term] {
			scores[p.itemID] += p.weight
			mark(p.itemID, term)
		}
		// Prefix fallback: every distinct indexed term the query term
		// strictly prefixes counts at half weight.
		for vocab, postings := range s.index {
			if vocab == term || !strings.HasPrefix(vocab, term) {
				continue
			}
			for _, p := range postings {
				scores[p.itemID] += p.weight / 2
				mark(p.itemID, term)
			}
		}
	}

	divisor := float64(len(terms)) * titleWeight
	now := s.now()

	results := make([]domain.SearchResult, 0, len(scores))
	for itemID, raw := range scores {
		item, ok := s.items[itemID]
		if !ok {
			continue
		}

		score := raw / divisor
		if score > 1.0 {
			score = 1.0
		}

		if !opts.AllowsType(item.SourceType) {
			continue
		}
		if score < opts.MinScore {
			continue
		}

		if now.Sub(item.IndexedAt) <= recencyWindow {
			score *= recencyBoost
		}

		result := domain.SearchResult{
			Item:         item,
			Score:        score,
			MatchedTerms: orderedMatches(terms, matched[itemID]),
		}
		if opts.WithSnippets {
			result.Snippet = extractSnippet(item.Content, terms)
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}

	logger.Debug("Search: %d results", len(results))
	return results
}

// orderedMatches returns the matched terms in query order.
func orderedMatches(queryTerms []string, hit map[string]bool) []string {
	var out []string
	seen := make(map[string]bool)
	for _, term := range queryTerms {
		if hit[term] && !seen[term] {
			out = append(out, term)
			seen[term] = true
		}
	}
	return out
}

// Suggest returns indexed vocabulary terms that extend partial.
// Partial queries shorter than two characters return nothing; the
// exact prefix itself is excluded. Results are sorted for stable
// display in the UI's completion list.
func (s *Searcher) Suggest(partial string, limit int) []string {
	p := strings.ToLower(strings.TrimSpace(partial))
	if utf8.RuneCountInString(p) < 2 {
		return []string{}
	}
	if limit <= 0 {
		limit = defaultMaxResults
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var suggestions []string
	for vocab := range s.index {
		if vocab != p && strings.HasPrefix(vocab, p) {
			suggestions = append(suggestions, vocab)
		}
	}
	sort.Strings(suggestions)

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Related finds items similar to the given item by running a synthetic
// query built from its title and keywords. The item itself never
// appears in the result.
func (s *Searcher) Related(itemID string, limit int) []domain.SearchResult {
	if limit <= 0 {
		limit = defaultMaxResults
	}

	s.mu.RLock()
	item, ok := s.items[itemID]
	s.mu.RUnlock()
	if !ok {
		return []domain.SearchResult{}
	}

	query := item.Title
	if len(item.Keywords) > 0 {
		query += " " + strings.Join(item.Keywords, " ")
	}

	// One extra result absorbs the item matching itself.
	results := s.Search(query, domain.SearchOptions{MaxResults: limit + 1})

	filtered := make([]domain.SearchResult, 0, len(results))
	for _, r := range results {
		if r.Item.ID == itemID {
			continue
		}
		filtered = append(filtered, r)
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

// extractSnippet returns a window around the earliest case-insensitive
// occurrence of any query term, with ellipses at truncated boundaries.
// Without a hit it falls back to the leading characters of the content.
func extractSnippet(content string, terms []string) string {
	if content == "" {
		return ""
	}

	lower := strings.ToLower(content)
	runes := []rune(content)

	best := -1
	bestLen := 0
	for _, term := range terms {
		idx := strings.Index(lower, term)
		if idx < 0 {
			continue
		}
		runeIdx := utf8.RuneCountInString(lower[:idx])
		if best < 0 || runeIdx < best {
			best = runeIdx
			bestLen = utf8.RuneCountInString(term)
		}
	}

	if best < 0 {
		if len(runes) <= snippetFallback {
			return content
		}
		return string(runes[:snippetFallback])
	}

	start := best - snippetRadius
	if start < 0 {
		start = 0
	}
	end := best + bestLen + snippetRadius
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet += "..."
	}
	return snippet
}
