package render

import (
	"context"

	"github.com/goliatone/go-uikit/pkg/view"
)

// Renderer converts a view document into a byte representation (HTML, JSON,
// terminal output, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc view.Document, options RenderOptions) ([]byte, error)
}
