package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/core/ports/driven"
	"github.com/kanzlabs/kanz/internal/logger"
)

// Indexer owns the authoritative item store and its on-disk snapshot.
//
// One mutex guards both the registered-source map and the item map.
// Index runs hold it for their whole duration; they are bounded by
// source I/O, so readers are not starved indefinitely.
type Indexer struct {
	mu        sync.RWMutex
	sources   map[string]driven.Source
	items     map[string]domain.KnowledgeItem
	stats     domain.IndexStats
	snapshots driven.SnapshotStore

	loadStatus driven.LoadStatus
}

// NewIndexer creates an indexer backed by the given snapshot store and
// attempts to reload the previous snapshot. Any load failure degrades
// to an empty store: a broken cache file must never prevent the
// surrounding application from starting. The outcome is observable via
// LoadStatus. A nil snapshot store yields a memory-only indexer.
func NewIndexer(snapshots driven.SnapshotStore) *Indexer {
	idx := &Indexer{
		sources:    make(map[string]driven.Source),
		items:      make(map[string]domain.KnowledgeItem),
		snapshots:  snapshots,
		loadStatus: driven.LoadStatusMissing,
	}

	if snapshots == nil {
		return idx
	}

	snap, status, err := snapshots.Load()
	idx.loadStatus = status
	if err != nil {
		logger.Warn("Snapshot load failed, starting empty: %v", err)
		return idx
	}
	if status != driven.LoadStatusLoaded {
		logger.Info("No usable snapshot (%s), starting empty", status)
		return idx
	}

	for i := range snap.Items {
		idx.items[snap.Items[i].ID] = snap.Items[i]
	}
	idx.stats = snap.Stats
	logger.Info("Snapshot loaded: %d items", len(idx.items))
	return idx
}

// LoadStatus reports how the construction-time snapshot load concluded.
func (x *Indexer) LoadStatus() driven.LoadStatus {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.loadStatus
}

// AddSource registers a source. Registering an already-known ID
// replaces the previous source but keeps its items until the next
// index run.
func (x *Indexer) AddSource(src driven.Source) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.sources[src.ID()] = src
	logger.Debug("Source registered: %s (%s)", src.ID(), src.Type())
}

// RemoveSource unregisters a source and deletes every item whose
// provenance points to it.
func (x *Indexer) RemoveSource(id string) error {
	x.mu.Lock()
	defer x.mu.Unlock()

	if _, ok := x.sources[id]; !ok {
		return fmt.Errorf("remove source %q: %w", id, domain.ErrSourceNotFound)
	}
	delete(x.sources, id)
	removed := x.removeItemsBySourceLocked(id)
	x.recountLocked()
	logger.Info("Source removed: %s (%d items dropped)", id, removed)
	return nil
}

// Sources returns the registered sources sorted by ID.
func (x *Indexer) Sources() []driven.Source {
	x.mu.RLock()
	defer x.mu.RUnlock()

	out := make([]driven.Source, 0, len(x.sources))
	for _, src := range x.sources {
		out = append(out, src)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// IndexAll rebuilds the whole store from every enabled source.
// A failing source is logged and skipped; one broken source never
// blanks the index. Stats are recomputed and the snapshot persisted
// before returning.
func (x *Indexer) IndexAll(ctx context.Context) domain.IndexStats {
	x.mu.Lock()
	defer x.mu.Unlock()

	logger.Section("Index Run")
	start := time.Now()

	x.items = make(map[string]domain.KnowledgeItem)
	for _, src := range x.sources {
		x.extractIntoStoreLocked(ctx, src)
	}

	x.finishRunLocked(start)
	return x.statsCopyLocked()
}

// IndexSource re-indexes a single source, leaving items from other
// sources untouched. Items previously attributed to the source are
// removed before its fresh extraction is inserted, so no stale
// leftovers survive.
func (x *Indexer) IndexSource(ctx context.Context, id string) (domain.IndexStats, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	src, ok := x.sources[id]
	if !ok {
		return x.statsCopyLocked(), fmt.Errorf("index source %q: %w", id, domain.ErrSourceNotFound)
	}

	logger.Section("Index Run (source: " + id + ")")
	start := time.Now()

	x.removeItemsBySourceLocked(id)
	x.extractIntoStoreLocked(ctx, src)

	x.finishRunLocked(start)
	return x.statsCopyLocked(), nil
}

// extractIntoStoreLocked runs one source's extraction and inserts the
// results, tagging provenance. Caller must hold the lock.
func (x *Indexer) extractIntoStoreLocked(ctx context.Context, src driven.Source) {
	if !src.Enabled() {
		logger.Debug("Source %s disabled, skipping", src.ID())
		return
	}

	items, err := src.Extract(ctx)
	if err != nil {
		logger.Warn("Source %s failed, skipping: %v", src.ID(), err)
		return
	}

	for i := range items {
		item := items[i]
		item.Metadata.SourceID = src.ID()
		if _, dup := x.items[item.ID]; dup {
			logger.Warn("Duplicate item ID %q from source %s, overwriting", item.ID, src.ID())
		}
		x.items[item.ID] = item
	}
	logger.Info("Source %s: %d items", src.ID(), len(items))
}

// finishRunLocked recomputes stats, stamps the run and persists the
// snapshot. A save failure is logged; the in-memory store stays valid.
func (x *Indexer) finishRunLocked(start time.Time) {
	x.recountLocked()
	x.stats.LastIndexedAt = time.Now()
	x.stats.IndexDuration = time.Since(start)

	if x.snapshots == nil {
		return
	}
	snap := driven.Snapshot{Stats: x.stats, Items: x.allItemsLocked()}
	if err := x.snapshots.Save(snap); err != nil {
		logger.Warn("Snapshot save failed (index stays usable): %v", err)
	}
}

// removeItemsBySourceLocked drops items whose provenance matches id.
func (x *Indexer) removeItemsBySourceLocked(id string) int {
	removed := 0
	for itemID, item := range x.items {
		if item.Metadata.SourceID == id {
			delete(x.items, itemID)
			removed++
		}
	}
	return removed
}

// recountLocked refreshes the count-derived stats fields.
func (x *Indexer) recountLocked() {
	byType := make(map[domain.SourceType]int)
	for _, item := range x.items {
		byType[item.SourceType]++
	}
	x.stats.TotalItems = len(x.items)
	x.stats.ItemsBySourceType = byType
}

// AllItems returns a copy of the current item store.
func (x *Indexer) AllItems() []domain.KnowledgeItem {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.allItemsLocked()
}

func (x *Indexer) allItemsLocked() []domain.KnowledgeItem {
	out := make([]domain.KnowledgeItem, 0, len(x.items))
	for _, item := range x.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ItemsByType returns the items carrying the given source type tag.
func (x *Indexer) ItemsByType(t domain.SourceType) []domain.KnowledgeItem {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var out []domain.KnowledgeItem
	for _, item := range x.items {
		if item.SourceType == t {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Item retrieves a single item by ID.
func (x *Indexer) Item(id string) (*domain.KnowledgeItem, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	item, ok := x.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

// Stats returns a copy of the current index statistics.
func (x *Indexer) Stats() domain.IndexStats {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.statsCopyLocked()
}

func (x *Indexer) statsCopyLocked() domain.IndexStats {
	stats := x.stats
	stats.ItemsBySourceType = make(map[domain.SourceType]int, len(x.stats.ItemsBySourceType))
	for t, n := range x.stats.ItemsBySourceType {
		stats.ItemsBySourceType[t] = n
	}
	return stats
}

// Clear empties the store and deletes the persisted snapshot.
func (x *Indexer) Clear() {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.items = make(map[string]domain.KnowledgeItem)
	x.stats = domain.IndexStats{}

	if x.snapshots != nil {
		if err := x.snapshots.Delete(); err != nil {
			logger.Warn("Snapshot delete failed: %v", err)
		}
	}
	logger.Info("Item store cleared")
}
