package driven

import (
	"context"

	"github.com/kanzlabs/kanz/internal/core/domain"
)

// Source produces knowledge items from one origin on demand.
// Each source (document tree, schema introspector, module registry,
// static help) owns its extraction logic entirely; the core only calls
// this contract.
//
// Extract must tolerate partial failure: an I/O or parse error for one
// unit of source data (one file, one table) is skipped, not propagated,
// so one bad record never aborts extraction of the rest. A source-level
// error return is still possible (e.g. the whole root path is gone) and
// the indexer logs and skips that source for the run.
type Source interface {
	// ID returns the stable identifier used for provenance tracking.
	ID() string

	// Type returns the source type tag applied to produced items.
	Type() domain.SourceType

	// Enabled reports whether the source should be indexed.
	// Disabled sources stay registered but contribute nothing.
	Enabled() bool

	// Extract produces the source's current items. Items arrive with
	// content already truncated to domain.MaxContentLength.
	Extract(ctx context.Context) ([]domain.KnowledgeItem, error)
}
