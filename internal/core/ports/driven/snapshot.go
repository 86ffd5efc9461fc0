package driven

import (
	"github.com/kanzlabs/kanz/internal/core/domain"
)

// LoadStatus reports how a snapshot load concluded.
// Degrading to an empty store is intentional resilience; the status
// makes the fallback observable instead of only a log line.
type LoadStatus string

const (
	// LoadStatusLoaded means the snapshot was read and applied.
	LoadStatusLoaded LoadStatus = "loaded"

	// LoadStatusMissing means no snapshot file existed.
	LoadStatusMissing LoadStatus = "missing"

	// LoadStatusMalformed means the file existed but could not be parsed.
	LoadStatusMalformed LoadStatus = "malformed"

	// LoadStatusVersionMismatch means the file carried an unknown version.
	LoadStatusVersionMismatch LoadStatus = "version_mismatch"
)

// Snapshot is the persisted form of the item store.
type Snapshot struct {
	// Stats summarises the store at save time.
	Stats domain.IndexStats

	// Items is the full item store.
	Items []domain.KnowledgeItem
}

// SnapshotStore persists the item store as a single flat snapshot.
// Implementations never fail construction of their owner: Load degrades
// to an empty snapshot with a non-loaded status.
type SnapshotStore interface {
	// Save writes the snapshot, replacing any previous one.
	Save(snap Snapshot) error

	// Load reads the snapshot. A missing, malformed or wrong-version
	// file returns an empty snapshot and the matching status, not an
	// error; the error return covers unexpected I/O failures only.
	Load() (Snapshot, LoadStatus, error)

	// Delete removes the persisted snapshot, if any.
	Delete() error
}
