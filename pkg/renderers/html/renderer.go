package html

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/render"
	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/view"
	"github.com/goliatone/go-uikit/pkg/visibility"
	"github.com/goliatone/go-uikit/pkg/visibility/expr"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

const (
	templateName = "templates/page.html"

	defaultStylesheetPath = "assets/" + StylesheetName
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	kit              *kit.Registry
	widgets          *widgets.Registry
	rules            visibility.Evaluator
	decorators       []component.Decorator
	overrides        map[string]string
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	stylesheet       string
	inlineStyles     bool
	withoutShell     bool
}

// WithKit swaps the component registry used to resolve element components.
func WithKit(registry *kit.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.kit = registry
		}
	}
}

// WithWidgets swaps the widget registry that rewrites "field" placeholders
// before rendering.
func WithWidgets(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithVisibility swaps the evaluator used for element "when" rules.
func WithVisibility(evaluator visibility.Evaluator) Option {
	return func(cfg *config) {
		if evaluator != nil {
			cfg.rules = evaluator
		}
	}
}

// WithDecorators wraps every rendered component with the provided decorators,
// outermost first, on top of whatever the registry entries already apply.
func WithDecorators(decorators ...component.Decorator) Option {
	return func(cfg *config) {
		for _, decorator := range decorators {
			if decorator == nil {
				continue
			}
			cfg.decorators = append(cfg.decorators, decorator)
		}
	}
}

// WithComponentOverrides substitutes component names per element path (for
// example "elements[0].children[1]") or per component name before lookup.
func WithComponentOverrides(overrides map[string]string) Option {
	return func(cfg *config) {
		cfg.overrides = cloneStringMap(overrides)
	}
}

// WithTemplatesFS supplies an alternate page shell bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads the page shell from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithStylesheet points the page shell at a stylesheet URL instead of the
// bundled default. An empty href drops the link entirely.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = href
	}
}

// WithDefaultStyles inlines the bundled stylesheet into the page shell instead
// of linking it, so the output needs no asset serving. Combine with
// WithStylesheet to additionally link a custom sheet.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
		cfg.stylesheet = ""
	}
}

// WithoutDocumentShell emits only the view fragment, skipping the surrounding
// HTML document, for callers embedding the output into their own page.
func WithoutDocumentShell() Option {
	return func(cfg *config) {
		cfg.withoutShell = true
	}
}

// Renderer turns a view document into a styled HTML page built from the
// component kit.
type Renderer struct {
	kit          *kit.Registry
	widgets      *widgets.Registry
	rules        visibility.Evaluator
	decorators   []component.Decorator
	overrides    map[string]string
	templates    rendertemplate.TemplateRenderer
	stylesheet   string
	inlineStyles bool
	withoutShell bool
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		kit:        kit.NewDefaultRegistry(),
		widgets:    widgets.NewRegistry(),
		rules:      expr.New(),
		templateFS: TemplatesFS(),
		stylesheet: defaultStylesheetPath,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	renderer := &Renderer{
		kit:          cfg.kit,
		widgets:      cfg.widgets,
		rules:        cfg.rules,
		decorators:   cfg.decorators,
		overrides:    cfg.overrides,
		templates:    cfg.templateRenderer,
		stylesheet:   cfg.stylesheet,
		inlineStyles: cfg.inlineStyles,
		withoutShell: cfg.withoutShell,
	}

	if cfg.withoutShell {
		return renderer, nil
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if renderer.templates == nil {
		if err := ensureTemplate(cfg.templateFS, templateName); err != nil {
			return nil, err
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer.templates = engine
	}

	return renderer, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML page for a view document. The document is cloned
// before widget resolution, so callers can reuse it across renders.
func (r *Renderer) Render(_ context.Context, doc view.Document, options render.RenderOptions) ([]byte, error) {
	doc = doc.Clone()
	if r.widgets != nil {
		if err := r.widgets.Apply(&doc); err != nil {
			return nil, fmt.Errorf("html renderer: resolve widgets: %w", err)
		}
	}

	classes := resolveChromeClasses(options.ChromeClasses)
	elements := newElementRenderer(r.kit, r.decorators, r.overrides, r.rules, classes)

	blocks := make([]string, 0, len(doc.Elements))
	for idx, element := range doc.Elements {
		markup, err := elements.render(element, fmt.Sprintf("elements[%d]", idx), options.Extras)
		if err != nil {
			return nil, fmt.Errorf("html renderer: %w", err)
		}
		if markup == "" {
			continue
		}
		blocks = append(blocks, markup)
	}

	content := buildViewMarkup(doc, blocks, classes, options.Issues)
	if r.withoutShell {
		return []byte(content), nil
	}

	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	themeCtx := buildThemeContext(options.Theme)
	stylesheets, scripts := r.pageAssets(elements, themeAssetResolver(options.Theme), options.AssetPrefix)

	inlineStyles := ""
	if r.inlineStyles {
		inlineStyles = defaultStylesheet()
	}

	data := map[string]any{
		"title":         pageTitle(doc, options),
		"view":          map[string]any{"name": doc.Name, "theme": doc.Theme, "variant": doc.Variant},
		"classes":       map[string]string{"page": classes.page},
		"content":       content,
		"stylesheets":   stylesheets,
		"scripts":       scripts,
		"inline_styles": inlineStyles,
		"theme":         themeCtx,
	}

	rendered, err := r.templates.RenderTemplate(templateName, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(rendered), nil
}

func pageTitle(doc view.Document, options render.RenderOptions) string {
	if title := strings.TrimSpace(options.Title); title != "" {
		return title
	}
	if title := strings.TrimSpace(doc.Title); title != "" {
		return title
	}
	return doc.Name
}

// pageAssets resolves the stylesheet and script lists for the page shell. The
// active theme may remap the renderer stylesheet; the asset prefix expands
// every relative URL.
func (r *Renderer) pageAssets(elements *elementRenderer, resolver func(string) string, prefix string) ([]string, []map[string]any) {
	stylesheet := r.stylesheet
	if resolver != nil {
		if resolved := resolver(themeAssetStylesheet); strings.TrimSpace(resolved) != "" {
			stylesheet = resolved
		}
	}

	kitStyles, kitScripts := elements.assets()

	stylesheets := make([]string, 0, len(kitStyles)+1)
	if stylesheet != "" {
		stylesheets = append(stylesheets, expandAssetURL(prefix, stylesheet))
	}
	for _, href := range kitStyles {
		stylesheets = append(stylesheets, expandAssetURL(prefix, href))
	}

	scripts := make([]map[string]any, 0, len(kitScripts))
	for _, script := range kitScripts {
		entry := map[string]any{
			"attrs": scriptAttrs(script),
		}
		if script.Src != "" {
			entry["src"] = expandAssetURL(prefix, script.Src)
		}
		if script.Inline != "" {
			entry["inline"] = script.Inline
		}
		scripts = append(scripts, entry)
	}
	return stylesheets, scripts
}

func buildViewMarkup(doc view.Document, blocks []string, classes chromeClasses, issues []view.Issue) string {
	var builder strings.Builder

	builder.WriteString(`<div class="`)
	builder.WriteString(html.EscapeString(classes.view))
	builder.WriteString(`"`)
	if name := strings.TrimSpace(doc.Name); name != "" {
		builder.WriteString(` data-view="`)
		builder.WriteString(html.EscapeString(name))
		builder.WriteString(`"`)
	}
	builder.WriteString(">\n")

	if len(issues) > 0 {
		builder.WriteString(indentLines(buildIssuesMarkup(issues, classes.errors), "    "))
	}
	for _, block := range blocks {
		builder.WriteString(indentLines(block, "    "))
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

func buildIssuesMarkup(issues []view.Issue, errorsClass string) string {
	var builder strings.Builder

	builder.WriteString(`<div class="`)
	builder.WriteString(html.EscapeString(errorsClass))
	builder.WriteString(`" role="alert">` + "\n")
	builder.WriteString("    <ul>\n")
	for _, issue := range issues {
		builder.WriteString(`        <li`)
		if issue.Path != "" {
			builder.WriteString(` data-path="`)
			builder.WriteString(html.EscapeString(issue.Path))
			builder.WriteString(`"`)
		}
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(issue.Message))
		builder.WriteString("</li>\n")
	}
	builder.WriteString("    </ul>\n")
	builder.WriteString("</div>\n")
	return builder.String()
}

func ensureTemplate(store fs.FS, name string) error {
	if store == nil {
		return fmt.Errorf("html renderer: template file system is nil")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("html renderer: template %q not found: %w", name, err)
	}
	return nil
}
