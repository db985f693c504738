package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-uikit/internal/viewsource"
	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/html"
	"github.com/goliatone/go-uikit/pkg/view"
	"github.com/goliatone/go-uikit/pkg/visibility"
	"github.com/goliatone/go-uikit/pkg/visibility/expr"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom view document loader.
func WithLoader(loader view.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithStore supplies pre-loaded documents that Generate resolves by view name
// before consulting any source.
func WithStore(store *view.Store) Option {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithSource sets a fallback source consulted when a request carries neither
// a document nor a source of its own.
func WithSource(src view.Source) Option {
	return func(o *Orchestrator) {
		o.source = src
	}
}

// WithKit swaps the component registry used for validation and for the
// default HTML renderer.
func WithKit(registry *kit.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.kit = registry
		}
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithDecorators wraps every component rendered by the default HTML renderer.
// Callers injecting their own registry configure decorators on their
// renderers directly.
func WithDecorators(decorators ...component.Decorator) Option {
	return func(o *Orchestrator) {
		for _, decorator := range decorators {
			if decorator == nil {
				continue
			}
			o.componentDecorators = append(o.componentDecorators, decorator)
		}
	}
}

// WithWidgets swaps the widget registry that resolves "field" placeholders.
func WithWidgets(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		if registry != nil {
			o.widgets = registry
		}
	}
}

// WithVisibility swaps the evaluator backing element "when" rules in the
// default HTML renderer.
func WithVisibility(evaluator visibility.Evaluator) Option {
	return func(o *Orchestrator) {
		if evaluator != nil {
			o.visibility = evaluator
		}
	}
}

// WithValidation toggles strict document validation. When enabled, Generate
// refuses to render documents with issues and returns a *ValidationError.
func WithValidation(strict bool) Option {
	return func(o *Orchestrator) {
		o.strict = strict
	}
}

// WithTranslator sets the translator applied to *Key props when the request
// options carry none.
func WithTranslator(translator render.Translator) Option {
	return func(o *Orchestrator) {
		o.translator = translator
	}
}

// WithUIDecorators registers document decorators that run against the
// resolved view before widgets and rendering.
func WithUIDecorators(decorators ...ViewDecorator) Option {
	return func(o *Orchestrator) {
		if len(decorators) == 0 {
			return
		}
		o.decorators = append(o.decorators, decorators...)
	}
}

// Orchestrator coordinates the full pipeline from view document to rendered
// output. It applies sensible defaults (HTML renderer, default kit, built-in
// widgets) while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader              view.Loader
	store               *view.Store
	source              view.Source
	kit                 *kit.Registry
	registry            *render.Registry
	defaultRenderer     string
	componentDecorators []component.Decorator
	widgets             *widgets.Registry
	visibility          visibility.Evaluator
	translator          render.Translator
	decorators          []ViewDecorator
	strict              bool
	themes              themeConfig
	initialiseErr       error
	defaultsApplied     bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a view.
type Request struct {
	// Source identifies where the view document lives. Optional when Document
	// is supplied or the store already holds the named view.
	Source view.Source

	// Document allows callers to bypass the store and loader when they already
	// have a parsed document. It is cloned before the pipeline runs.
	Document *view.Document

	// View names the document to resolve from the store. When a source load is
	// needed instead, the loaded document's name must match.
	View string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Theme and Variant override the document's own theme selection.
	Theme   string
	Variant string

	// AssetPrefix, Locale, and Extras overlay the corresponding RenderOptions
	// fields for this request.
	AssetPrefix string
	Locale      string
	Extras      map[string]any

	// RenderOptions carries per-request instructions such as a title override
	// or server-side validation issues that renderers can surface. When
	// omitted, renderers receive the zero-value struct plus the overlays
	// above.
	RenderOptions render.RenderOptions
}

// Generate executes the resolve → decorate → widgets → localize → validate →
// theme → render sequence and returns the rendered bytes (HTML for the
// default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := o.applyDecorators(&doc); err != nil {
		return nil, err
	}

	// Placeholders must resolve before validation: "field" is not a
	// registered component.
	if err := o.widgets.Apply(&doc); err != nil {
		return nil, fmt.Errorf("orchestrator: resolve widgets: %w", err)
	}

	opts := o.renderOptions(req)
	render.LocalizeDocument(&doc, opts)

	if o.strict {
		if result := view.Validate(doc, o.kit); !result.Valid {
			return nil, &ValidationError{View: doc.Name, Issues: result.Issues}
		}
	}

	themeCfg, err := o.resolveTheme(req, doc)
	if err != nil {
		return nil, err
	}
	if themeCfg != nil {
		opts.Theme = themeCfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

// RegisterWidget adds a runtime widget matcher so "field" placeholders can
// resolve to custom components without rebuilding the registry.
func (o *Orchestrator) RegisterWidget(name string, priority int, matcher widgets.Matcher) {
	o.WidgetRegistry().Register(name, priority, matcher)
}

// WidgetRegistry exposes the widget registry for direct configuration.
func (o *Orchestrator) WidgetRegistry() *widgets.Registry {
	if o.widgets == nil {
		o.widgets = widgets.NewRegistry()
	}
	return o.widgets
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (view.Document, error) {
	if req.Document != nil {
		return req.Document.Clone(), nil
	}

	name := strings.TrimSpace(req.View)
	if name != "" && o.store != nil {
		if doc, ok := o.store.Document(name); ok {
			return doc, nil
		}
	}

	src := req.Source
	if src == nil {
		src = o.source
	}
	if src == nil {
		if name != "" {
			return view.Document{}, fmt.Errorf("orchestrator: view %q not found", name)
		}
		return view.Document{}, errors.New("orchestrator: source, store view, or document is required")
	}

	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return view.Document{}, fmt.Errorf("orchestrator: load document: %w", err)
	}
	if name != "" && doc.Name != name {
		return view.Document{}, fmt.Errorf("orchestrator: source document %q does not match requested view %q", doc.Name, name)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDecorators(doc *view.Document) error {
	if len(o.decorators) == 0 || doc == nil {
		return nil
	}
	for _, decorator := range o.decorators {
		if decorator == nil {
			continue
		}
		if err := decorator.Decorate(doc); err != nil {
			return fmt.Errorf("orchestrator: decorate view: %w", err)
		}
	}
	return nil
}

// renderOptions overlays the request's convenience fields onto its render
// options. The caller's Extras map is never mutated.
func (o *Orchestrator) renderOptions(req Request) render.RenderOptions {
	opts := req.RenderOptions
	if req.AssetPrefix != "" {
		opts.AssetPrefix = req.AssetPrefix
	}
	if req.Locale != "" {
		opts.Locale = req.Locale
	}
	if len(req.Extras) > 0 {
		merged := make(map[string]any, len(opts.Extras)+len(req.Extras))
		for key, value := range opts.Extras {
			merged[key] = value
		}
		for key, value := range req.Extras {
			merged[key] = value
		}
		opts.Extras = merged
	}
	if opts.Translator == nil {
		opts.Translator = o.translator
	}
	return opts
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.kit == nil {
		o.kit = kit.NewDefaultRegistry()
	}
	if o.widgets == nil {
		o.widgets = widgets.NewRegistry()
	}
	if o.visibility == nil {
		o.visibility = expr.New()
	}
	if o.loader == nil {
		o.loader = viewsource.New(view.NewLoaderOptions())
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New(
			html.WithKit(o.kit),
			html.WithWidgets(o.widgets),
			html.WithVisibility(o.visibility),
			html.WithDecorators(o.componentDecorators...),
		)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.applyThemeDefaults()

	o.defaultsApplied = true
}

// ValidationError reports a document that failed strict validation. Callers
// can unwrap it with errors.As to surface the individual issues.
type ValidationError struct {
	View   string
	Issues []view.Issue
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "orchestrator: document invalid"
	}
	return fmt.Sprintf("orchestrator: view %q failed validation with %d issue(s)", e.View, len(e.Issues))
}
