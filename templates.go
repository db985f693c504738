package uikit

import (
	"io/fs"

	html "github.com/goliatone/go-uikit/pkg/renderers/html"
)

// EmbeddedTemplates exposes the built-in HTML page shell templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	fsys := html.TemplatesFS()
	return fsys
}
