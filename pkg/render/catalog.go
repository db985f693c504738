package render

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrMissingTranslation is wrapped by Catalog.Translate when no locale in
// the lookup chain carries the requested key.
var ErrMissingTranslation = errors.New("render: missing translation")

// Catalog is a Translator backed by per-locale message maps, typically
// loaded from files named after their locale (en.yaml, es-MX.yml). Nested
// maps flatten into dotted keys, so `buttons: {save: Save}` resolves as
// "buttons.save".
type Catalog struct {
	mu       sync.RWMutex
	fallback string
	messages map[string]map[string]string
}

// NewCatalog creates an empty catalog. fallbackLocale is consulted when the
// requested locale (and its base language) misses; pass "" to disable.
func NewCatalog(fallbackLocale string) *Catalog {
	return &Catalog{
		fallback: normalizeLocale(fallbackLocale),
		messages: make(map[string]map[string]string),
	}
}

// Add registers a single message under the given locale.
func (c *Catalog) Add(locale, key, message string) {
	locale = normalizeLocale(locale)
	key = strings.TrimSpace(key)
	if locale == "" || key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.messages[locale] == nil {
		c.messages[locale] = make(map[string]string)
	}
	c.messages[locale][key] = message
}

// Locales returns the locales with at least one message, unsorted.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	locales := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		locales = append(locales, locale)
	}
	return locales
}

// Translate implements Translator. Lookup order is the exact locale, its
// base language ("en-US" falls back to "en"), then the catalog's fallback
// locale. Params of the form map[string]any replace `{name}` placeholders.
func (c *Catalog) Translate(locale, key string, params ...any) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("render: translation key is required")
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, candidate := range c.localeChain(locale) {
		messages, ok := c.messages[candidate]
		if !ok {
			continue
		}
		if message, ok := messages[key]; ok {
			return interpolate(message, params), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrMissingTranslation, key)
}

func (c *Catalog) localeChain(locale string) []string {
	chain := make([]string, 0, 3)
	locale = normalizeLocale(locale)
	if locale != "" {
		chain = append(chain, locale)
		if base := baseLocale(locale); base != locale {
			chain = append(chain, base)
		}
	}
	if c.fallback != "" {
		chain = append(chain, c.fallback)
	}
	return chain
}

// LoadCatalogFS walks the filesystem for .json/.yaml/.yml message files and
// builds a catalog from them, one locale per file. YAML parsing covers the
// JSON files too.
func LoadCatalogFS(fsys fs.FS, fallbackLocale string) (*Catalog, error) {
	catalog := NewCatalog(fallbackLocale)
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("render: read catalog %s: %w", path, err)
		}

		var raw map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("render: parse catalog %s: %w", path, err)
		}

		locale := localeFromPath(path)
		flat := make(map[string]string)
		flattenMessages("", raw, flat)
		for key, message := range flat {
			catalog.Add(locale, key, message)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return catalog, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func localeFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

func baseLocale(locale string) string {
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		return locale[:i]
	}
	return locale
}

func flattenMessages(prefix string, value any, dest map[string]string) {
	switch typed := value.(type) {
	case map[string]any:
		for key, child := range typed {
			next := key
			if prefix != "" {
				next = prefix + "." + key
			}
			flattenMessages(next, child, dest)
		}
	default:
		if prefix != "" {
			dest[prefix] = anyToString(typed)
		}
	}
}

func interpolate(message string, params []any) string {
	if len(params) == 0 || !strings.Contains(message, "{") {
		return message
	}

	pairs := make([]string, 0, 8)
	for _, param := range params {
		values, ok := param.(map[string]any)
		if !ok {
			continue
		}
		for name, value := range values {
			pairs = append(pairs, "{"+name+"}", anyToString(value))
		}
	}
	if len(pairs) == 0 {
		return message
	}
	return strings.NewReplacer(pairs...).Replace(message)
}
