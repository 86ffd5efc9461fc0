package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
//
// The core degrades to empty results rather than surfacing most
// failures; the sentinels below cover the few operations where a
// caller (CLI, MCP) needs to distinguish why a request did nothing.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSourceNotFound indicates an unknown source ID.
	ErrSourceNotFound = errors.New("source not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotInitialized indicates the engine has not been initialized.
	// Engine read operations return empty results instead; this is
	// only surfaced by explicit mutations like Reindex.
	ErrNotInitialized = errors.New("engine not initialized")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
