package domain

import "time"

// IndexStats summarises the state of the item store.
// Recomputed on every full or per-source index run and persisted
// alongside the item snapshot.
type IndexStats struct {
	// TotalItems is the number of items currently in the store.
	TotalItems int

	// ItemsBySourceType counts items per source type tag.
	ItemsBySourceType map[SourceType]int

	// LastIndexedAt is when the last index run completed.
	// Zero value means the store has never been indexed.
	LastIndexedAt time.Time

	// IndexDuration is how long the last index run took.
	IndexDuration time.Duration
}
