package cli

import (
	"context"
	"sort"
	"sync"

	"github.com/kanzlabs/kanz/internal/core/services"
	"github.com/kanzlabs/kanz/internal/sources/help"
	"github.com/kanzlabs/kanz/internal/sources/modules"
)

// mockConfigStore is an in-memory driven.ConfigStore for command tests.
type mockConfigStore struct {
	mu   sync.Mutex
	data map[string]any
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	v, _ := m.Get(key)
	s, _ := v.(string)
	return s
}

func (m *mockConfigStore) GetInt(key string) int {
	v, _ := m.Get(key)
	n, _ := v.(int)
	return n
}

func (m *mockConfigStore) GetBool(key string) bool {
	v, _ := m.Get(key)
	b, _ := v.(bool)
	return b
}

func (m *mockConfigStore) GetFloat(key string) float64 {
	v, _ := m.Get(key)
	f, _ := v.(float64)
	return f
}

func (m *mockConfigStore) GetStringSlice(key string) []string {
	v, _ := m.Get(key)
	s, _ := v.([]string)
	return s
}

func (m *mockConfigStore) Set(key string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Unset(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *mockConfigStore) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *mockConfigStore) Save() error { return nil }

func (m *mockConfigStore) Load() error { return nil }

func (m *mockConfigStore) Path() string { return "/tmp/kanz-test/config.toml" }

// setupTestServices wires a real in-memory engine over the built-in
// sources and returns a cleanup restoring the previous services.
func setupTestServices() func() {
	oldEngine := engine
	oldIndexer := indexer
	oldConfig := configStore
	oldDocs := docsSource

	idx := services.NewIndexer(nil)
	idx.AddSource(modules.New("modules", nil))
	idx.AddSource(help.New("help", nil))

	eng := services.NewEngine(idx)
	eng.Initialize(context.Background(), true) //nolint:errcheck

	engine = eng
	indexer = idx
	configStore = newMockConfigStore()
	docsSource = nil

	return func() {
		engine = oldEngine
		indexer = oldIndexer
		configStore = oldConfig
		docsSource = oldDocs
	}
}
