// Package uikit assembles server-side presentational views from declarative
// documents: a component kit, spacing decoration, widget resolution, theming,
// and HTML/JSON renderers behind one Generate entry point.
package uikit

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/view"
)

// Props carries the loosely typed attributes a component renders from; alias
// exported via the root package for convenience.
type Props = component.Props

// Component renders one HTML fragment from props.
type Component = component.Component

// Func adapts a plain rendering function into a Component.
type Func = component.Func

// Decorator wraps a component with additional markup or behavior.
type Decorator = component.Decorator

// Descriptor bundles a component implementation with its assets and props
// contract for kit registration.
type Descriptor = kit.Descriptor

// Document is a declarative view definition ready for rendering.
type Document = view.Document

// Element is one node of a view document's component tree.
type Element = view.Element

// Source locates a view document on disk, in an fs.FS, or over HTTP.
type Source = view.Source

// RenderOptions describes per-request overrides renderers can use to adjust
// titles, locales, asset prefixes, and extra template context.
type RenderOptions = render.RenderOptions

// Request names the view to generate and its per-request overrides.
type Request = orchestrator.Request

// Option configures the orchestrator assembled by New.
type Option = orchestrator.Option

// ValidationError reports the issues that made a document fail strict
// validation.
type ValidationError = orchestrator.ValidationError

// Spacing wraps a component so its output is enclosed in a single container
// carrying vertical-margin utility classes derived from the props. The
// wrapped component receives the original props untouched.
func Spacing(inner Component) Component {
	return component.Spacing(inner)
}

// New exposes the orchestrator constructor from the top-level module; the
// zero-option form renders with the default kit and HTML renderer.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate builds an orchestrator from options and runs a single request
// through it. Callers issuing many requests should construct one orchestrator
// with New and reuse it.
func Generate(ctx context.Context, req Request, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, req)
}

// RenderHTML loads the document behind source, resolves the named view, and
// renders it with the default HTML renderer. It is the simplest entry point
// for callers that just want markup.
func RenderHTML(ctx context.Context, source view.Source, viewName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source: source,
		View:   viewName,
	})
}

// RenderHTMLFromDocument renders a pre-built document, bypassing the loader
// stage while still delegating to the orchestrator.
func RenderHTMLFromDocument(ctx context.Context, doc view.Document, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Document: &doc,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeProvider constructs a go-theme selector from a ThemeProvider and
// registers it with the orchestrator so renderers receive resolved partials,
// tokens, and assets.
func WithThemeProvider(provider theme.ThemeProvider, defaultTheme, defaultVariant string) orchestrator.Option {
	return orchestrator.WithThemeProvider(provider, defaultTheme, defaultVariant)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
