// Package file persists the knowledge item store as a single versioned
// JSON snapshot on disk. The store never fails its owner's startup:
// a missing, malformed or wrong-version file degrades to an empty
// snapshot with an observable status.
package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/core/ports/driven"
	"github.com/kanzlabs/kanz/internal/logger"
)

// Ensure SnapshotStore implements the interface.
var _ driven.SnapshotStore = (*SnapshotStore)(nil)

// snapshotVersion is the only format this store reads. Any other value
// on disk is treated as "no usable snapshot", not an error.
const snapshotVersion = 1

// SnapshotStore reads and writes the snapshot file.
type SnapshotStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSnapshotStore creates a store writing to the given file, creating
// parent directories as needed on save. If path is empty, defaults to
// ~/.kanz/index.json.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".kanz", "index.json")
	}
	return &SnapshotStore{filePath: path}, nil
}

// Path returns the snapshot file path.
func (s *SnapshotStore) Path() string {
	return s.filePath
}

// snapshotFile is the on-disk document shape.
type snapshotFile struct {
	Version int                    `json:"version"`
	Stats   statsFile              `json:"stats"`
	Items   []domain.KnowledgeItem `json:"items"`
}

// statsFile mirrors domain.IndexStats in the persisted shape:
// duration as float milliseconds, last-indexed as nullable timestamp.
type statsFile struct {
	TotalItems      int            `json:"total_items"`
	ItemsByType     map[string]int `json:"items_by_type"`
	LastIndexed     *time.Time     `json:"last_indexed"`
	IndexDurationMS float64        `json:"index_duration_ms"`
}

func toStatsFile(stats domain.IndexStats) statsFile {
	out := statsFile{
		TotalItems:      stats.TotalItems,
		ItemsByType:     make(map[string]int, len(stats.ItemsBySourceType)),
		IndexDurationMS: float64(stats.IndexDuration) / float64(time.Millisecond),
	}
	for t, n := range stats.ItemsBySourceType {
		out.ItemsByType[string(t)] = n
	}
	if !stats.LastIndexedAt.IsZero() {
		ts := stats.LastIndexedAt
		out.LastIndexed = &ts
	}
	return out
}

func fromStatsFile(in statsFile) domain.IndexStats {
	stats := domain.IndexStats{
		TotalItems:        in.TotalItems,
		ItemsBySourceType: make(map[domain.SourceType]int, len(in.ItemsByType)),
		IndexDuration:     time.Duration(in.IndexDurationMS * float64(time.Millisecond)),
	}
	for t, n := range in.ItemsByType {
		stats.ItemsBySourceType[domain.SourceType(t)] = n
	}
	if in.LastIndexed != nil {
		stats.LastIndexedAt = *in.LastIndexed
	}
	return stats
}

// Save writes the snapshot, replacing any previous one.
func (s *SnapshotStore) Save(snap driven.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return err
	}

	doc := snapshotFile{
		Version: snapshotVersion,
		Stats:   toStatsFile(snap.Stats),
		Items:   snap.Items,
	}
	if doc.Items == nil {
		doc.Items = []domain.KnowledgeItem{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads the snapshot. Degraded outcomes (missing file, malformed
// JSON, unknown version) return an empty snapshot with the matching
// status and a nil error; the error return covers unexpected I/O
// failures only.
func (s *SnapshotStore) Load() (driven.Snapshot, driven.LoadStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return driven.Snapshot{}, driven.LoadStatusMissing, nil
		}
		return driven.Snapshot{}, driven.LoadStatusMissing, err
	}

	var doc snapshotFile
	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Warn("Snapshot file %s is malformed: %v", s.filePath, err)
		return driven.Snapshot{}, driven.LoadStatusMalformed, nil
	}

	if doc.Version != snapshotVersion {
		logger.Warn("Snapshot file %s has unsupported version %d", s.filePath, doc.Version)
		return driven.Snapshot{}, driven.LoadStatusVersionMismatch, nil
	}

	return driven.Snapshot{
		Stats: fromStatsFile(doc.Stats),
		Items: doc.Items,
	}, driven.LoadStatusLoaded, nil
}

// Delete removes the persisted snapshot, if any.
func (s *SnapshotStore) Delete() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
