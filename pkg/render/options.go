package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/view"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without mutating the view pipeline.
type RenderOptions struct {
	// Title overrides the document title in outer chrome such as the HTML
	// page shell. The document's own title wins when this is empty.
	Title string
	// AssetPrefix is prepended to relative stylesheet and script URLs
	// collected from the kit, e.g. "/static".
	AssetPrefix string
	// Extras carries caller context that element visibility rules can read
	// through the `extras.` prefix (roles, feature flags, counts).
	Extras map[string]any
	// Locale selects the translation locale for *Key props.
	Locale string
	// Translator resolves *Key props before rendering. A nil translator
	// leaves fallback values in place.
	Translator Translator
	// OnMissing customises the string produced when a translation cannot be
	// resolved. Defaults to the fallback value, then the key itself.
	OnMissing MissingTranslationHandler
	// Issues lets callers surface document validation findings in renderers
	// that support an error block.
	Issues []view.Issue
	// Theme carries resolved theme configuration (partials, tokens, CSS
	// vars, asset resolver) for renderers that understand it.
	Theme *theme.RendererConfig
	// ChromeClasses overrides the structural class names emitted by HTML
	// renderers. Empty fields keep the renderer defaults.
	ChromeClasses *ChromeClasses
}

// ChromeClasses names the CSS classes applied to the structural wrappers.
// Renderers fall back to their own defaults for empty fields.
type ChromeClasses struct {
	Page     string
	View     string
	Element  string
	Children string
	Errors   string
}
