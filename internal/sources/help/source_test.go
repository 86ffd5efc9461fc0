package help

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanzlabs/kanz/internal/core/domain"
)

func TestSource_Extract(t *testing.T) {
	t.Run("one item per topic", func(t *testing.T) {
		topics := []Topic{
			{ID: "request-vacation", Title: "كيفية تقديم طلب إجازة", Body: "من شاشة الإجازات", Keywords: []string{"إجازة"}},
		}

		src := New("help", topics)
		items, err := src.Extract(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)

		item := items[0]
		assert.Equal(t, "help:request-vacation", item.ID)
		assert.Equal(t, domain.SourceTypeHelp, item.SourceType)
		assert.Equal(t, "كيفية تقديم طلب إجازة", item.Title)
		assert.Equal(t, "من شاشة الإجازات", item.Content)
		assert.Equal(t, []string{"إجازة"}, item.Keywords)
		assert.False(t, item.IndexedAt.IsZero())
	})

	t.Run("nil topics use the builtins", func(t *testing.T) {
		src := New("help", nil)
		items, err := src.Extract(context.Background())
		require.NoError(t, err)
		assert.Len(t, items, len(BuiltinTopics()))
	})
}

func TestBuiltinTopics(t *testing.T) {
	ids := make(map[string]bool)
	for _, topic := range BuiltinTopics() {
		assert.NotEmpty(t, topic.ID)
		assert.NotEmpty(t, topic.Title)
		assert.NotEmpty(t, topic.Body)
		assert.NotEmpty(t, topic.Keywords)
		assert.False(t, ids[topic.ID], "duplicate topic id %s", topic.ID)
		ids[topic.ID] = true
	}
}

func TestSource_Metadata(t *testing.T) {
	src := New("help", nil)
	assert.Equal(t, "help", src.ID())
	assert.Equal(t, domain.SourceTypeHelp, src.Type())
	assert.True(t, src.Enabled())

	src.SetEnabled(false)
	assert.False(t, src.Enabled())
}
