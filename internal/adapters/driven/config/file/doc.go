// Package file is the TOML-backed implementation of driven.ConfigStore.
//
// Configuration lives at ~/.kanz/config.toml by default. Nested TOML
// tables are flattened into dot-notation keys on load, so [search]
// max_results = 10 is read as "search.max_results".
//
// Recognised keys:
//
//	data_dir            directory for the index snapshot
//	docs.path           documentation tree root
//	schema.db_path      SQLite database file for schema introspection
//	schema.name         database schema to introspect
//	search.max_results  default result cap
//	search.min_score    default minimum score filter
//	context.max_items   prompt context item cap
//	context.max_length  prompt context character budget
package file
