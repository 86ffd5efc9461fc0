// Package docs extracts knowledge items from a documentation tree on
// the local filesystem. Each markdown or plain-text file becomes one
// item; the first heading becomes the title. A change watcher built on
// fsnotify lets callers re-index on edits.
package docs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kanzlabs/kanz/internal/core/domain"
	"github.com/kanzlabs/kanz/internal/core/ports/driven"
	"github.com/kanzlabs/kanz/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.Source = (*Source)(nil)

// now is the extraction clock, swappable in tests.
var now = time.Now

// indexedExtensions are the file types treated as documentation.
var indexedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// Source reads a documentation directory tree.
type Source struct {
	id       string
	rootPath string
	enabled  bool
}

// New creates a document source over the given root directory.
func New(id, rootPath string) *Source {
	return &Source{id: id, rootPath: rootPath, enabled: true}
}

// ID returns the source identifier.
func (s *Source) ID() string { return s.id }

// Type returns the document source type tag.
func (s *Source) Type() domain.SourceType { return domain.SourceTypeDocument }

// Enabled reports whether the source should be indexed.
func (s *Source) Enabled() bool { return s.enabled }

// SetEnabled toggles the source without unregistering it.
func (s *Source) SetEnabled(enabled bool) { s.enabled = enabled }

// RootPath returns the configured documentation root.
func (s *Source) RootPath() string { return s.rootPath }

// Extract walks the tree and produces one item per readable document
// file. A file that cannot be read is logged and skipped; the walk
// continues, so one bad file never aborts the rest.
func (s *Source) Extract(ctx context.Context) ([]domain.KnowledgeItem, error) {
	var items []domain.KnowledgeItem

	err := filepath.WalkDir(s.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Docs walk error at %s, skipping: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := d.Name()
		if d.IsDir() {
			// Skip hidden directories, but not the root itself.
			if path != s.rootPath && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !indexedExtensions[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		item, ok := s.extractFile(path)
		if ok {
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Docs source %s: %d files extracted", s.id, len(items))
	return items, nil
}

// extractFile turns one file into an item. Returns false when the
// file could not be read.
func (s *Source) extractFile(path string) (domain.KnowledgeItem, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Docs source %s: cannot read %s, skipping: %v", s.id, path, err)
		return domain.KnowledgeItem{}, false
	}

	content := string(data)
	title := firstHeading(content)
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	rel, err := filepath.Rel(s.rootPath, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	rel = filepath.ToSlash(rel)

	item := domain.KnowledgeItem{
		ID:         "doc:" + rel,
		SourceType: domain.SourceTypeDocument,
		Title:      title,
		Content:    domain.TruncateContent(content),
		Keywords:   pathKeywords(rel),
		IndexedAt:  now(),
	}
	item.Metadata.FilePath = path
	return item, true
}

// firstHeading returns the text of the first markdown heading, if any.
func firstHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") {
			return strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		}
	}
	return ""
}

// pathKeywords derives lowercase keywords from the relative path's
// directory segments, so "policies/leave.md" is findable via "policies".
func pathKeywords(rel string) []string {
	dir := filepath.ToSlash(filepath.Dir(rel))
	if dir == "." {
		return nil
	}
	var keywords []string
	for _, seg := range strings.Split(dir, "/") {
		if seg != "" {
			keywords = append(keywords, strings.ToLower(seg))
		}
	}
	return keywords
}

// Watch reports changes under the documentation root. Events are
// collapsed into bare signals; the caller decides when to re-index.
// The watcher closes when ctx is cancelled.
//
// New subdirectories created after the watch starts are added to the
// watcher as they appear.
func (s *Source) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the root and all existing subdirectories.
	walkErr := filepath.WalkDir(s.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && !strings.HasPrefix(d.Name(), ".") {
			if addErr := watcher.Add(path); addErr != nil {
				logger.Warn("Docs watch: cannot watch %s: %v", path, addErr)
			}
		}
		return nil
	})
	if walkErr != nil {
		watcher.Close()
		return nil, walkErr
	}

	changes := make(chan struct{}, 1)

	go func() {
		defer watcher.Close()
		defer close(changes)

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Create) {
					if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
						_ = watcher.Add(event.Name)
					}
				}
				// Non-blocking: a pending signal already covers this change.
				select {
				case changes <- struct{}{}:
				default:
				}

			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Docs watch error: %v", watchErr)
			}
		}
	}()

	return changes, nil
}
