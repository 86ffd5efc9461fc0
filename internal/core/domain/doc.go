// Package domain defines the core business entities for Kanz.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - KnowledgeItem: The unit of indexed content
//   - IndexStats: Summary data recomputed on every index run
//   - SearchResult: A single ranked query hit
//   - QueryResponse: The engine-level answer to a query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
