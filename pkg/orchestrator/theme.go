package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/view"
)

// themeConfig groups the knobs behind the theme options so the zero value
// means "no theming".
type themeConfig struct {
	selector       theme.ThemeSelector
	provider       theme.ThemeProvider
	fallbacks      map[string]string
	defaultTheme   string
	defaultVariant string
}

// WithThemeSelector wires a go-theme selector so requests can resolve theme
// and variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themes.selector = selector
	}
}

// WithThemeProvider derives a selector from a go-theme provider and records
// the theme and variant applied when neither the request nor the document
// names one.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) Option {
	return func(o *Orchestrator) {
		o.themes.provider = provider
		o.themes.defaultTheme = defaultTheme
		o.themes.defaultVariant = defaultVariant
	}
}

// WithThemeFallbacks overrides the fallback partials merged beneath manifest
// templates when deriving renderer configuration from a selection.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		if fallbacks != nil {
			o.themes.fallbacks = fallbacks
		}
	}
}

func (o *Orchestrator) applyThemeDefaults() {
	if o.themes.selector == nil && o.themes.provider != nil {
		selector, ok := o.themes.provider.(theme.ThemeSelector)
		if !ok {
			o.initialiseErr = errors.New("orchestrator: theme provider does not support selection")
			return
		}
		o.themes.selector = selector
	}
	if o.themes.fallbacks == nil {
		o.themes.fallbacks = defaultThemeFallbacks()
	}
}

// resolveTheme turns the request and document theme hints into a renderer
// configuration. A nil config means no theme applies to this render.
func (o *Orchestrator) resolveTheme(req Request, doc view.Document) (*theme.RendererConfig, error) {
	if o.themes.selector == nil {
		return nil, nil
	}

	name := firstNonEmpty(req.Theme, doc.Theme, o.themes.defaultTheme)
	if name == "" {
		return nil, nil
	}
	variant := firstNonEmpty(req.Variant, doc.Variant, o.themes.defaultVariant)

	selection, err := o.themes.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	return selectionToRendererConfig(selection, o.themes.fallbacks), nil
}

// selectionToRendererConfig merges fallback partials, manifest templates, and
// variant overrides into the flat configuration renderers consume. Variant
// values win over manifest values, which win over fallbacks.
func selectionToRendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	partials := make(map[string]string, len(fallbacks))
	for slot, path := range fallbacks {
		partials[slot] = path
	}
	tokens := map[string]string{}
	files := map[string]string{}
	prefix := ""

	if manifest := selection.Manifest; manifest != nil {
		for slot, path := range manifest.Templates {
			partials[slot] = path
		}
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		prefix = manifest.Assets.Prefix
		for key, value := range manifest.Assets.Files {
			files[key] = value
		}

		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for slot, path := range variant.Templates {
				partials[slot] = path
			}
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
			for key, value := range variant.Assets.Files {
				files[key] = value
			}
			if variant.Assets.Prefix != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVarsFromTokens(tokens),
		AssetURL: assetResolver(prefix, files),
	}
}

// defaultThemeFallbacks names the partial slots renderers fall back to when a
// manifest does not override them.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"views.page": "templates/page.html",
	}
}

func cssVarsFromTokens(tokens map[string]string) map[string]string {
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars["--"+key] = value
	}
	return vars
}

// assetResolver maps logical asset keys to URLs under the theme's prefix.
// Unknown keys resolve to an empty string so templates can skip them.
func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file := files[key]
		if file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
