// Package schema extracts knowledge items describing the relational
// schema of the surrounding application's database. It reads
// information_schema through an externally supplied row-query
// callback; the connection pool stays outside the core.
package schema

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/core/ports/driven"
	"github.com/kanzlabs/kanz/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// now is the extraction clock, swappable in tests.
var now = time.Now

const (
	tablesQuery = `SELECT table_name FROM information_schema.tables
		WHERE table_schema = ? ORDER BY table_name`

	columnsQuery = `SELECT column_name, data_type, is_nullable
		FROM information_schema.columns
		WHERE table_schema = ? AND table_name = ?
		ORDER BY ordinal_position`
)

// Source introspects a database schema via a RowQuerier.
type Source struct {
	id      string
	schema  string
	querier driven.RowQuerier
	enabled bool
}

// New creates a schema source for the named database schema.
// The querier may be nil; extraction then fails cleanly and the
// indexer skips the source for the run.
func New(id, schemaName string, querier driven.RowQuerier) *Source {
	return &Source{id: id, schema: schemaName, querier: querier, enabled: true}
}

// ID returns the source identifier.
func (s *Source) ID() string { return s.id }

// Type returns the database-schema source type tag.
func (s *Source) Type() domain.SourceType { return domain.SourceTypeSchema }

// Enabled reports whether the source should be indexed.
func (s *Source) Enabled() bool { return s.enabled }

// SetEnabled toggles the source without unregistering it.
func (s *Source) SetEnabled(enabled bool) { s.enabled = enabled }

// Extract produces one item per table, describing its columns.
// A table whose column query fails is logged and skipped; the other
// tables still contribute.
func (s *Source) Extract(ctx context.Context) ([]domain.KnowledgeItem, error) {
	if s.querier == nil {
		return nil, fmt.Errorf("schema source %s: no row querier configured", s.id)
	}

	_, rows, err := s.querier(ctx, tablesQuery, s.schema)
	if err != nil {
		return nil, fmt.Errorf("schema source %s: list tables: %w", s.id, err)
	}

	var items []domain.KnowledgeItem
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		table := asString(row[0])
		if table == "" {
			continue
		}

		item, ok := s.extractTable(ctx, table)
		if ok {
			items = append(items, item)
		}
	}

	logger.Debug("Schema source %s: %d tables extracted", s.id, len(items))
	return items, nil
}

// extractTable describes one table. Returns false when the column
// query failed.
func (s *Source) extractTable(ctx context.Context, table string) (domain.KnowledgeItem, bool) {
	_, rows, err := s.querier(ctx, columnsQuery, s.schema, table)
	if err != nil {
		logger.Warn("Schema source %s: columns of %s failed, skipping: %v", s.id, table, err)
		return domain.KnowledgeItem{}, false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "جدول %s يحتوي على الأعمدة التالية:\n", table)

	keywords := []string{strings.ToLower(table)}
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		column := asString(row[0])
		dataType := asString(row[1])
		nullable := asString(row[2])

		fmt.Fprintf(&b, "- %s (%s", column, dataType)
		if strings.EqualFold(nullable, "YES") {
			b.WriteString(", nullable")
		}
		b.WriteString(")\n")

		keywords = append(keywords, strings.ToLower(column))
	}

	item := domain.KnowledgeItem{
		ID:         "schema:" + table,
		SourceType: domain.SourceTypeSchema,
		Title:      "جدول " + table,
		Content:    domain.TruncateContent(b.String()),
		Keywords:   keywords,
		IndexedAt:  now(),
	}
	item.Metadata.Set("table", table)
	return item, true
}

// asString renders one scanned cell, tolerating the driver-dependent
// representations database/sql hands back.
func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
