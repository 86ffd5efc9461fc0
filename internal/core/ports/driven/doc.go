// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Source: Produces knowledge items from one origin (documents,
//     schema, modules, help text)
//   - SnapshotStore: Persistence for the item store and its stats
//
// # Optional Interfaces
//
//   - ConfigStore: Application configuration. The core services take
//     plain values; only the composition root reads configuration.
//   - RowQuerier: Relational row access for the schema source. Without
//     it the schema source contributes zero items.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or source package
package driven
