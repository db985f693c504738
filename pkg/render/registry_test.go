package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/view"
)

type namedRenderer string

func (r namedRenderer) Name() string        { return string(r) }
func (r namedRenderer) ContentType() string { return "text/plain" }
func (r namedRenderer) Render(_ context.Context, doc view.Document, _ render.RenderOptions) ([]byte, error) {
	return []byte(doc.Name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("html"))
	registry.MustRegister(namedRenderer("json"))

	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}

	if got := registry.List(); len(got) != 2 || got[0] != "html" || got[1] != "json" {
		t.Fatalf("unexpected list %v", got)
	}
	if !registry.Has("json") {
		t.Fatal("expected json renderer")
	}
	if registry.Has("tui") {
		t.Fatal("unexpected tui renderer")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("html"))

	err := registry.Register(namedRenderer("html"))
	if err == nil {
		t.Fatal("expected duplicate error")
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistryRejectsInvalidRenderers(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(namedRenderer("")); err == nil {
		t.Fatal("expected error for unnamed renderer")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected error for missing renderer")
	}
}
