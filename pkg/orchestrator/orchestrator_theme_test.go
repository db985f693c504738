package orchestrator

import (
	"context"
	"testing"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/view"
)

func TestOrchestrator_PassesThemeConfigToRenderer(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
	}

	selection := &theme.Selection{
		Theme:    "acme",
		Variant:  "dusk",
		Manifest: manifest,
	}

	selector := &stubThemeSelector{selection: selection}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	doc := view.Document{Name: "landing"}
	_, err := orch.Generate(context.Background(), Request{
		Document: &doc,
		Renderer: renderer.Name(),
		Theme:    "custom-theme",
		Variant:  "dusk",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "custom-theme" || selector.calls[0].variant != "dusk" {
		t.Fatalf("unexpected selector args: %+v", selector.calls[0])
	}

	if renderer.options.Theme == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if renderer.options.Theme.Theme != selection.Theme {
		t.Fatalf("theme name mismatch: want %s, got %s", selection.Theme, renderer.options.Theme.Theme)
	}
	if renderer.options.Theme.Variant != selection.Variant {
		t.Fatalf("theme variant mismatch: want %s, got %s", selection.Variant, renderer.options.Theme.Variant)
	}
	if renderer.options.Theme.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := renderer.options.Theme.Partials["views.page"]; got != defaultThemeFallbacks()["views.page"] {
		t.Fatalf("partials not merged with fallbacks: want %s, got %s", defaultThemeFallbacks()["views.page"], got)
	}
	if renderer.options.Theme.Tokens["brand"] != manifest.Tokens["brand"] {
		t.Fatalf("tokens not propagated")
	}
	if renderer.options.Theme.CSSVars["--brand"] != manifest.Tokens["brand"] {
		t.Fatalf("css vars not derived from tokens")
	}
}

func TestOrchestrator_WithThemeProviderUsesDefaults(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand": "#123456",
		},
		Templates: map[string]string{
			"views.hero": "themes/acme/hero.html",
		},
		Assets: theme.Assets{
			Prefix: "/assets/themes/acme",
			Files: map[string]string{
				"html.stylesheet": "theme.css",
			},
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"brand": "#654321",
				},
				Templates: map[string]string{
					"views.footer": "themes/acme/dark/footer.html",
				},
				Assets: theme.Assets{
					Files: map[string]string{
						"html.vendor": "vendor.dark.js",
					},
				},
			},
		},
	}

	provider := theme.NewRegistry()
	if err := provider.Register(manifest); err != nil {
		t.Fatalf("register manifest: %v", err)
	}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeProvider(provider, "acme", "dark"),
	)

	doc := view.Document{Name: "landing"}
	_, err := orch.Generate(context.Background(), Request{
		Document: &doc,
		Renderer: renderer.Name(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cfg := renderer.options.Theme
	if cfg == nil {
		t.Fatalf("expected theme config passed to renderer")
	}
	if cfg.Theme != "acme" {
		t.Fatalf("theme name mismatch: want acme, got %s", cfg.Theme)
	}
	if cfg.Variant != "dark" {
		t.Fatalf("theme variant mismatch: want dark, got %s", cfg.Variant)
	}
	if cfg.Partials["views.hero"] != "themes/acme/hero.html" {
		t.Fatalf("expected base template override, got %s", cfg.Partials["views.hero"])
	}
	if cfg.Partials["views.footer"] != "themes/acme/dark/footer.html" {
		t.Fatalf("expected variant template override, got %s", cfg.Partials["views.footer"])
	}
	if cfg.Partials["views.page"] != defaultThemeFallbacks()["views.page"] {
		t.Fatalf("fallback partial not applied for page shell")
	}
	if cfg.Tokens["brand"] != "#654321" {
		t.Fatalf("tokens not merged with variant override, got %s", cfg.Tokens["brand"])
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Fatalf("css vars not derived from variant tokens, got %s", cfg.CSSVars["--brand"])
	}
	if cfg.AssetURL == nil {
		t.Fatalf("expected AssetURL resolver present")
	}
	if got := cfg.AssetURL("html.vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Fatalf("unexpected vendor asset url: %s", got)
	}
	if got := cfg.AssetURL("html.stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Fatalf("unexpected stylesheet asset url: %s", got)
	}
}

func TestOrchestrator_DocumentThemeFeedsSelector(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "paper", Variant: "wide"}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	doc := view.Document{Name: "landing", Theme: "paper", Variant: "wide"}
	if _, err := orch.Generate(context.Background(), Request{Document: &doc}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 1 {
		t.Fatalf("expected selector called once, got %d", len(selector.calls))
	}
	if selector.calls[0].name != "paper" || selector.calls[0].variant != "wide" {
		t.Fatalf("document theme should feed the selector: %+v", selector.calls[0])
	}
}

func TestOrchestrator_NoThemeNameSkipsSelection(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{Theme: "acme"}}

	renderer := &captureRenderer{}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch := New(
		WithRegistry(registry),
		WithDefaultRenderer(renderer.Name()),
		WithThemeSelector(selector),
	)

	doc := view.Document{Name: "landing"}
	if _, err := orch.Generate(context.Background(), Request{Document: &doc}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(selector.calls) != 0 {
		t.Fatalf("selector should not run without a theme name, got %d calls", len(selector.calls))
	}
	if renderer.options.Theme != nil {
		t.Fatalf("expected no theme config, got %+v", renderer.options.Theme)
	}
}

type captureRenderer struct {
	last    view.Document
	options render.RenderOptions
}

func (r *captureRenderer) Name() string {
	return "capture"
}

func (r *captureRenderer) ContentType() string {
	return "text/plain"
}

func (r *captureRenderer) Render(_ context.Context, doc view.Document, opts render.RenderOptions) ([]byte, error) {
	r.last = doc
	r.options = opts
	return []byte(doc.Name), nil
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}
