// Package mcp provides a Model Context Protocol server adapter for
// Kanz. It lets AI assistants search the local knowledge index and
// pull ready-made prompt context over stdio or HTTP.
package mcp

import "errors"

// ErrMissingEngine is returned when the knowledge engine is not provided.
var ErrMissingEngine = errors.New("mcp: knowledge engine is required")
