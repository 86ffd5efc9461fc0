package domain

import (
	"encoding/json"
	"time"
)

// SourceType tags a KnowledgeItem with the kind of source that produced it.
type SourceType string

// Known source types. Config and UserAction are reserved for future
// extractors and currently have no built-in source.
const (
	SourceTypeDocument   SourceType = "document"
	SourceTypeSchema     SourceType = "database_schema"
	SourceTypeModule     SourceType = "module"
	SourceTypeHelp       SourceType = "help"
	SourceTypeConfig     SourceType = "config"
	SourceTypeUserAction SourceType = "user_action"
)

// Metadata keys with well-known meaning across sources.
const (
	// MetaSourceID records provenance: which registered source produced
	// the item. The indexer injects it on every insert.
	MetaSourceID = "source_id"

	// MetaFilePath is the originating file for document items.
	MetaFilePath = "file_path"

	// MetaEnabled marks module items whose application module is enabled.
	MetaEnabled = "enabled"
)

// ItemMetadata carries auxiliary attributes of a KnowledgeItem.
// The well-known fields are typed; anything else a source wants to
// record goes into Extra. On the wire (snapshot JSON) the struct
// flattens into a single string-keyed object, so snapshots keep the
// open-map shape.
type ItemMetadata struct {
	// SourceID is the provenance entry, set by the indexer.
	SourceID string

	// FilePath is the originating file path, if any.
	FilePath string

	// Enabled marks items from sources with an on/off notion (modules).
	Enabled bool

	// Extra holds source-specific attributes outside the typed fields.
	Extra map[string]string
}

// Get returns the value for key, checking typed fields first.
func (m ItemMetadata) Get(key string) (string, bool) {
	switch key {
	case MetaSourceID:
		if m.SourceID != "" {
			return m.SourceID, true
		}
	case MetaFilePath:
		if m.FilePath != "" {
			return m.FilePath, true
		}
	case MetaEnabled:
		if m.Enabled {
			return "true", true
		}
	}
	v, ok := m.Extra[key]
	return v, ok
}

// Set stores a value, routing well-known keys to their typed fields.
func (m *ItemMetadata) Set(key, value string) {
	switch key {
	case MetaSourceID:
		m.SourceID = value
	case MetaFilePath:
		m.FilePath = value
	case MetaEnabled:
		m.Enabled = value == "true"
	default:
		if m.Extra == nil {
			m.Extra = make(map[string]string)
		}
		m.Extra[key] = value
	}
}

// MarshalJSON flattens typed fields and extras into one object.
func (m ItemMetadata) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(m.Extra)+3)
	for k, v := range m.Extra {
		flat[k] = v
	}
	if m.SourceID != "" {
		flat[MetaSourceID] = m.SourceID
	}
	if m.FilePath != "" {
		flat[MetaFilePath] = m.FilePath
	}
	if m.Enabled {
		flat[MetaEnabled] = "true"
	}
	return json.Marshal(flat)
}

// UnmarshalJSON routes well-known keys back to the typed fields.
func (m *ItemMetadata) UnmarshalJSON(data []byte) error {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	*m = ItemMetadata{}
	for k, v := range flat {
		m.Set(k, v)
	}
	return nil
}

// KnowledgeItem is the unit of indexed content.
// Sources produce items; the indexer owns the aggregate store.
type KnowledgeItem struct {
	// ID is the unique identifier, stable across index runs.
	ID string `json:"id"`

	// SourceType tags the kind of source that produced the item.
	SourceType SourceType `json:"source_type"`

	// Title is a short human-readable label.
	Title string `json:"title"`

	// Content is the body text, truncated by the producing source
	// to at most MaxContentLength characters.
	Content string `json:"content"`

	// Keywords are lowercase terms supplied by the source. May be empty.
	Keywords []string `json:"keywords"`

	// Metadata holds auxiliary attributes including provenance.
	Metadata ItemMetadata `json:"metadata"`

	// Embeddings is reserved for future semantic search.
	// It is never populated by the current sources.
	Embeddings []float32 `json:"embeddings,omitempty"`

	// IndexedAt is set at extraction time.
	IndexedAt time.Time `json:"indexed_at"`
}

// MaxContentLength is the cap sources apply to item content.
// Keeps a large document tree from growing the in-memory store unbounded.
const MaxContentLength = 5000

// TruncateContent caps s at MaxContentLength characters without
// splitting a rune. Arabic content counts characters, not bytes.
func TruncateContent(s string) string {
	if len(s) <= MaxContentLength {
		return s
	}
	runes := []rune(s)
	if len(runes) <= MaxContentLength {
		return s
	}
	return string(runes[:MaxContentLength])
}
