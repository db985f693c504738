package uikit

import (
	internalLoader "github.com/goliatone/go-uikit/internal/viewsource"
	"github.com/goliatone/go-uikit/pkg/view"
)

// NewSourceLoader constructs a document loader using the internal
// implementation while keeping the concrete type hidden from consumers.
func NewSourceLoader(options ...view.LoaderOption) view.Loader {
	cfg := view.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
