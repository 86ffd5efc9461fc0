package schema

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanzlabs/kanz/internal/core/domain"
)

// stubQuerier answers the table listing and per-table column queries
// from canned data.
type stubQuerier struct {
	tables  []string
	columns map[string][][]any
	failFor map[string]bool
	failAll bool
	calls   int
}

func (q *stubQuerier) query(ctx context.Context, query string, args ...any) ([]string, [][]any, error) {
	q.calls++
	if q.failAll {
		return nil, nil, errors.New("connection refused")
	}

	if strings.Contains(query, "information_schema.tables") {
		rows := make([][]any, 0, len(q.tables))
		for _, t := range q.tables {
			rows = append(rows, []any{t})
		}
		return []string{"table_name"}, rows, nil
	}

	table, _ := args[len(args)-1].(string)
	if q.failFor[table] {
		return nil, nil, errors.New("permission denied")
	}
	return []string{"column_name", "data_type", "is_nullable"}, q.columns[table], nil
}

func TestSource_Extract(t *testing.T) {
	t.Run("one item per table", func(t *testing.T) {
		q := &stubQuerier{
			tables: []string{"employees", "vacations"},
			columns: map[string][][]any{
				"employees": {
					{"id", "integer", "NO"},
					{"full_name", "varchar", "NO"},
					{"hired_at", "date", "YES"},
				},
				"vacations": {
					{"id", "integer", "NO"},
					{"employee_id", "integer", "NO"},
				},
			},
		}

		src := New("hr-db", "public", q.query)
		items, err := src.Extract(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 2)

		emp := items[0]
		assert.Equal(t, "schema:employees", emp.ID)
		assert.Equal(t, domain.SourceTypeSchema, emp.SourceType)
		assert.Equal(t, "جدول employees", emp.Title)
		assert.Contains(t, emp.Content, "full_name (varchar)")
		assert.Contains(t, emp.Content, "hired_at (date, nullable)")
		assert.Contains(t, emp.Keywords, "employees")
		assert.Contains(t, emp.Keywords, "full_name")
		table, ok := emp.Metadata.Get("table")
		require.True(t, ok)
		assert.Equal(t, "employees", table)
	})

	t.Run("byte-slice cells are tolerated", func(t *testing.T) {
		q := &stubQuerier{
			tables: []string{"salaries"},
			columns: map[string][][]any{
				"salaries": {{[]byte("amount"), []byte("numeric"), []byte("NO")}},
			},
		}

		src := New("hr-db", "public", q.query)
		items, err := src.Extract(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Contains(t, items[0].Content, "amount (numeric)")
	})

	t.Run("failing table is skipped", func(t *testing.T) {
		q := &stubQuerier{
			tables: []string{"employees", "restricted"},
			columns: map[string][][]any{
				"employees": {{"id", "integer", "NO"}},
			},
			failFor: map[string]bool{"restricted": true},
		}

		src := New("hr-db", "public", q.query)
		items, err := src.Extract(context.Background())
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "schema:employees", items[0].ID)
	})

	t.Run("table listing failure is an error", func(t *testing.T) {
		q := &stubQuerier{failAll: true}

		src := New("hr-db", "public", q.query)
		items, err := src.Extract(context.Background())
		assert.Error(t, err)
		assert.Empty(t, items)
	})

	t.Run("nil querier is an error", func(t *testing.T) {
		src := New("hr-db", "public", nil)
		_, err := src.Extract(context.Background())
		assert.Error(t, err)
	})
}

func TestSource_Metadata(t *testing.T) {
	src := New("hr-db", "public", nil)
	assert.Equal(t, "hr-db", src.ID())
	assert.Equal(t, domain.SourceTypeSchema, src.Type())
	assert.True(t, src.Enabled())

	src.SetEnabled(false)
	assert.False(t, src.Enabled())
}
