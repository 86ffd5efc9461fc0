// Package services implements the core knowledge engine:
//
//   - Indexer: owns the item store, invokes sources, persists snapshots
//   - Searcher: inverted index with weighted ranking over the store
//   - Engine: orchestrates both and assembles LLM prompt context
//
// Services depend on ports and domain only. Adapters (CLI, MCP,
// snapshot file store, sources) live outside and are wired in by the
// composition root.
package services
