package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("docs.path", "/kb"))

	val, ok := store.Get("docs.path")
	assert.True(t, ok)
	assert.Equal(t, "/kb", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("docs.path", "/kb"))
	require.NoError(t, store.Set("search.max_results", 25))
	require.NoError(t, store.Set("search.min_score", 0.3))
	require.NoError(t, store.Set("docs.enabled", true))
	require.NoError(t, store.Set("sources", []string{"docs", "help"}))

	assert.Equal(t, "/kb", store.GetString("docs.path"))
	assert.Equal(t, 25, store.GetInt("search.max_results"))
	assert.InDelta(t, 0.3, store.GetFloat("search.min_score"), 1e-9)
	assert.True(t, store.GetBool("docs.enabled"))
	assert.Equal(t, []string{"docs", "help"}, store.GetStringSlice("sources"))

	t.Run("zero values for missing keys", func(t *testing.T) {
		assert.Empty(t, store.GetString("nope"))
		assert.Zero(t, store.GetInt("nope"))
		assert.Zero(t, store.GetFloat("nope"))
		assert.False(t, store.GetBool("nope"))
		assert.Nil(t, store.GetStringSlice("nope"))
	})

	t.Run("zero values for mismatched types", func(t *testing.T) {
		assert.Empty(t, store.GetString("search.max_results"))
		assert.Zero(t, store.GetInt("docs.path"))
		assert.False(t, store.GetBool("docs.path"))
	})

	t.Run("integers widen to float", func(t *testing.T) {
		require.NoError(t, store.Set("search.min_score", 1))
		assert.InDelta(t, 1.0, store.GetFloat("search.min_score"), 1e-9)
	})
}

func TestConfigStore_UnsetAndKeys(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("source.abc.type", "docs"))
	require.NoError(t, store.Set("source.abc.path", "/kb"))
	require.NoError(t, store.Set("data_dir", "/var/kanz"))

	assert.Equal(t, []string{"data_dir", "source.abc.path", "source.abc.type"}, store.Keys())

	require.NoError(t, store.Unset("source.abc.path"))
	_, ok := store.Get("source.abc.path")
	assert.False(t, ok)

	// Unsetting an absent key is a no-op.
	assert.NoError(t, store.Unset("source.abc.path"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set("context.max_items", 7))

	second, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, second.GetInt("context.max_items"))
}

func TestConfigStore_LoadFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := "data_dir = \"/var/kanz\"\n\n[search]\nmax_results = 15\nmin_score = 0.2\n\n[context]\nmax_length = 4000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/var/kanz", store.GetString("data_dir"))
	assert.Equal(t, 15, store.GetInt("search.max_results"))
	assert.InDelta(t, 0.2, store.GetFloat("search.min_score"), 1e-9)
	assert.Equal(t, 4000, store.GetInt("context.max_length"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store := newTestStore(t)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_Path(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}
