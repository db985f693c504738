package view

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store keeps parsed view documents keyed by name. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	documents map[string]Document
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{documents: make(map[string]Document)}
}

// Add registers a document, replacing any previous entry with the same name.
func (s *Store) Add(doc Document) error {
	name := strings.TrimSpace(doc.Name)
	if name == "" {
		return fmt.Errorf("view: document name is required")
	}
	doc.Name = name
	s.documents[name] = doc
	return nil
}

// Document returns a deep copy of the named document so callers can mutate
// the result without touching the store.
func (s *Store) Document(name string) (Document, bool) {
	if s == nil {
		return Document{}, false
	}
	doc, ok := s.documents[strings.TrimSpace(name)]
	if !ok {
		return Document{}, false
	}
	return doc.Clone(), true
}

// Names returns the sorted document names.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.documents))
	for name := range s.documents {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Empty reports whether the store holds any documents.
func (s *Store) Empty() bool {
	return s == nil || len(s.documents) == 0
}

// Merge copies the other store's documents into this one; entries from other
// win on name collisions.
func (s *Store) Merge(other *Store) {
	if s == nil || other == nil {
		return
	}
	for name, doc := range other.documents {
		s.documents[name] = doc
	}
}

// LoadFS walks the provided filesystem and parses JSON/YAML view documents.
// When fsys is nil or holds no document files, the returned store is empty.
// Documents without an explicit name take their file's base name. Two files
// declaring the same document name abort the walk.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := NewStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isDocumentFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("view: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		if existing, exists := store.documents[doc.Name]; exists {
			return fmt.Errorf("view: duplicate document %q (files %s and %s)", doc.Name, existing.Source, path)
		}
		store.documents[doc.Name] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Parse decodes a standalone document, accepting JSON first and YAML as the
// fallback.
func Parse(data []byte) (Document, error) {
	return parseDocument(data, "")
}

// ParseFrom decodes a document like Parse and records the given source
// location, which also names the document when it declares no name.
func ParseFrom(data []byte, source string) (Document, error) {
	return parseDocument(data, source)
}

func parseDocument(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("view: document %s is empty", sourceLabel(source))
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("view: parse %s: invalid JSON or YAML", sourceLabel(source))
		}
	}

	doc.Source = source
	doc.Name = strings.TrimSpace(doc.Name)
	if doc.Name == "" {
		doc.Name = nameFromPath(source)
	}
	return doc, nil
}

func nameFromPath(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func sourceLabel(source string) string {
	if source == "" {
		return "(inline)"
	}
	return source
}

func isDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
