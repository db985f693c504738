package uikit

import (
	"io/fs"

	html "github.com/goliatone/go-uikit/pkg/renderers/html"
)

// StylesheetName is the file name of the bundled stylesheet inside AssetsFS.
const StylesheetName = html.StylesheetName

// AssetsFS exposes the bundled static assets (committed under
// pkg/renderers/html/assets) so Go applications can serve them without
// copying files out of the module.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(uikit.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return html.AssetsFS()
}
