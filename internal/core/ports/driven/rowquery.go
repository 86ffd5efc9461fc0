package driven

import "context"

// RowQuerier runs a SQL query and returns column names plus rows.
// The schema source consumes this callback to read
// information_schema.tables and information_schema.columns; the
// connection pool behind it belongs to the surrounding application.
type RowQuerier func(ctx context.Context, query string, args ...any) (cols []string, rows [][]any, err error)
