package icons

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-uikit/pkg/kit"
)

//go:embed data/*.svg
var dataFS embed.FS

// Icon pairs a name with its sanitized inline-SVG markup.
type Icon struct {
	Name   string
	Markup string
}

var (
	defaultOnce  sync.Once
	defaultIcons []Icon
	defaultErr   error
)

// DefaultIcons returns the embedded icon set, loaded and sanitized once.
// Callers receive a copy and may reorder or filter it freely.
func DefaultIcons() ([]Icon, error) {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(dataFS, "data")
		if err != nil {
			defaultErr = err
			return
		}
		icons, err := LoadIcons(sub)
		if err != nil {
			defaultErr = err
			return
		}
		defaultIcons = icons
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Icon{}, defaultIcons...), nil
}

// LoadIcons reads every *.svg file at the root of fsys, naming each icon after
// its file without the extension. Markup is sanitized through the kit's SVG
// policy; files that sanitize to nothing are dropped. The result is sorted by
// name.
func LoadIcons(fsys fs.FS) ([]Icon, error) {
	if fsys == nil {
		return nil, fmt.Errorf("icons: missing filesystem")
	}

	entries, err := fs.Glob(fsys, "*.svg")
	if err != nil {
		return nil, fmt.Errorf("icons: list svg files: %w", err)
	}

	icons := make([]Icon, 0, len(entries))
	seen := map[string]struct{}{}

	for _, entry := range entries {
		name := strings.TrimSuffix(path.Base(entry), ".svg")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}

		raw, err := fs.ReadFile(fsys, entry)
		if err != nil {
			return nil, fmt.Errorf("icons: read %s: %w", entry, err)
		}
		markup := kit.SanitizeIconMarkup(string(raw))
		if markup == "" {
			continue
		}

		seen[name] = struct{}{}
		icons = append(icons, Icon{Name: name, Markup: markup})
	}

	sort.Slice(icons, func(i, j int) bool { return icons[i].Name < icons[j].Name })
	return icons, nil
}
