package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/core/ports/driven"
)

func tempStore(t *testing.T) *SnapshotStore {
	t.Helper()
	store, err := NewSnapshotStore(filepath.Join(t.TempDir(), "index.json"))
	require.NoError(t, err)
	return store
}

func sampleSnapshot() driven.Snapshot {
	return driven.Snapshot{
		Stats: domain.IndexStats{
			TotalItems:        1,
			ItemsBySourceType: map[domain.SourceType]int{domain.SourceTypeDocument: 1},
			LastIndexedAt:     time.Now(),
			IndexDuration:     1500 * time.Millisecond,
		},
		Items: []domain.KnowledgeItem{{
			ID:         "doc:leave.md",
			SourceType: domain.SourceTypeDocument,
			Title:      "سياسة الإجازات",
			Content:    "تفاصيل سياسة الإجازات",
			Keywords:   []string{"إجازة"},
			Metadata:   domain.ItemMetadata{SourceID: "docs", FilePath: "/kb/leave.md"},
			IndexedAt:  time.Now(),
		}},
	}
}

func TestSnapshotStore_RoundTrip(t *testing.T) {
	store := tempStore(t)
	original := sampleSnapshot()

	require.NoError(t, store.Save(original))

	loaded, status, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, driven.LoadStatusLoaded, status)

	require.Len(t, loaded.Items, 1)
	got := loaded.Items[0]
	want := original.Items[0]
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Content, got.Content)
	assert.Equal(t, want.Keywords, got.Keywords)
	assert.Equal(t, "docs", got.Metadata.SourceID)
	assert.Equal(t, "/kb/leave.md", got.Metadata.FilePath)
	// Timestamps compared at second granularity.
	assert.WithinDuration(t, want.IndexedAt, got.IndexedAt, time.Second)

	assert.Equal(t, 1, loaded.Stats.TotalItems)
	assert.Equal(t, 1, loaded.Stats.ItemsBySourceType[domain.SourceTypeDocument])
	assert.InDelta(t, 1500, float64(loaded.Stats.IndexDuration)/float64(time.Millisecond), 1)
	assert.WithinDuration(t, original.Stats.LastIndexedAt, loaded.Stats.LastIndexedAt, time.Second)
}

func TestSnapshotStore_WireFormat(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(sampleSnapshot()))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.EqualValues(t, 1, doc["version"])

	stats, ok := doc["stats"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 1, stats["total_items"])
	assert.Contains(t, stats, "items_by_type")
	assert.Contains(t, stats, "last_indexed")
	assert.Contains(t, stats, "index_duration_ms")

	items, ok := doc["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	for _, key := range []string{"id", "source_type", "title", "content", "keywords", "metadata", "indexed_at"} {
		assert.Contains(t, item, key)
	}
	meta := item["metadata"].(map[string]any)
	assert.Equal(t, "docs", meta["source_id"])
}

func TestSnapshotStore_Load_Degraded(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		store := tempStore(t)

		snap, status, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, driven.LoadStatusMissing, status)
		assert.Empty(t, snap.Items)
	})

	t.Run("malformed json", func(t *testing.T) {
		store := tempStore(t)
		require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

		snap, status, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, driven.LoadStatusMalformed, status)
		assert.Empty(t, snap.Items)
	})

	t.Run("unknown version", func(t *testing.T) {
		store := tempStore(t)
		require.NoError(t, os.WriteFile(store.Path(), []byte(`{"version":2,"items":[]}`), 0600))

		snap, status, err := store.Load()
		require.NoError(t, err)
		assert.Equal(t, driven.LoadStatusVersionMismatch, status)
		assert.Empty(t, snap.Items)
	})
}

func TestSnapshotStore_Delete(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(sampleSnapshot()))

	require.NoError(t, store.Delete())

	_, status, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, driven.LoadStatusMissing, status)

	// Deleting again is not an error.
	assert.NoError(t, store.Delete())
}

func TestSnapshotStore_SaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "index.json")
	store, err := NewSnapshotStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(driven.Snapshot{}))

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}
