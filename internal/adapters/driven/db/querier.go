// Package db adapts a database/sql connection pool to the row-query
// callback the core consumes. It registers modernc.org/sqlite, a pure
// Go driver needing no CGO, so a local database file works out of the
// box; any other registered driver can be used the same way.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/kanzlabs/kanz/internal/core/ports/driven"
)

// Open opens a connection pool for the given driver and DSN and
// verifies it with a ping. The caller owns the pool and closes it.
func Open(ctx context.Context, driverName, dsn string) (*sql.DB, error) {
	pool, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", driverName, err)
	}
	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging %s database: %w", driverName, err)
	}
	return pool, nil
}

// OpenSQLite opens a SQLite database file.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	return Open(ctx, "sqlite", path)
}

// Querier wraps the pool as a driven.RowQuerier. Every row cell comes
// back as any, scanned through the driver's default representation.
func Querier(pool *sql.DB) driven.RowQuerier {
	return func(ctx context.Context, query string, args ...any) ([]string, [][]any, error) {
		rows, err := pool.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, nil, fmt.Errorf("querying rows: %w", err)
		}
		defer rows.Close()

		cols, err := rows.Columns()
		if err != nil {
			return nil, nil, fmt.Errorf("reading columns: %w", err)
		}

		var out [][]any
		for rows.Next() {
			cells := make([]any, len(cols))
			ptrs := make([]any, len(cols))
			for i := range cells {
				ptrs[i] = &cells[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				return nil, nil, fmt.Errorf("scanning row: %w", err)
			}
			out = append(out, cells)
		}
		if err := rows.Err(); err != nil {
			return nil, nil, fmt.Errorf("iterating rows: %w", err)
		}

		return cols, out, nil
	}
}
