package modules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanzlabs/kanz/internal/core/domain"
)

func TestSource_Extract(t *testing.T) {
	t.Run("one item per enabled module", func(t *testing.T) {
		registry := []Module{
			{ID: "vacations", Name: "الإجازات", Description: "طلبات الإجازة", Keywords: []string{"إجازة"}, Enabled: true},
			{ID: "legacy", Name: "قديم", Enabled: false},
		}

		src := New("modules", registry)
		items, err := src.Extract(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)

		item := items[0]
		assert.Equal(t, "module:vacations", item.ID)
		assert.Equal(t, domain.SourceTypeModule, item.SourceType)
		assert.Equal(t, "الإجازات", item.Title)
		assert.Equal(t, "طلبات الإجازة", item.Content)
		assert.Equal(t, []string{"إجازة"}, item.Keywords)
		assert.True(t, item.Metadata.Enabled)
		assert.False(t, item.IndexedAt.IsZero())
	})

	t.Run("nil registry uses defaults", func(t *testing.T) {
		src := New("modules", nil)
		items, err := src.Extract(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, len(DefaultModules()))
	})
}

func TestDefaultModules(t *testing.T) {
	ids := make(map[string]bool)
	for _, m := range DefaultModules() {
		assert.NotEmpty(t, m.ID)
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Description)
		assert.NotEmpty(t, m.Keywords)
		assert.False(t, ids[m.ID], "duplicate module id %s", m.ID)
		ids[m.ID] = true
	}
}

func TestSource_Metadata(t *testing.T) {
	src := New("modules", nil)
	assert.Equal(t, "modules", src.ID())
	assert.Equal(t, domain.SourceTypeModule, src.Type())
	assert.True(t, src.Enabled())

	src.SetEnabled(false)
	assert.False(t, src.Enabled())
}
