package render_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-uikit/pkg/render"
)

func TestCatalogLocaleChain(t *testing.T) {
	catalog := render.NewCatalog("en")
	catalog.Add("en", "buttons.save", "Save")
	catalog.Add("es", "buttons.save", "Guardar")

	got, err := catalog.Translate("es-MX", "buttons.save")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Guardar" {
		t.Fatalf("expected base-language match, got %q", got)
	}

	got, err = catalog.Translate("fr", "buttons.save")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Save" {
		t.Fatalf("expected fallback locale, got %q", got)
	}

	if _, err := catalog.Translate("en", "buttons.cancel"); !errors.Is(err, render.ErrMissingTranslation) {
		t.Fatalf("expected ErrMissingTranslation, got %v", err)
	}
}

func TestCatalogInterpolation(t *testing.T) {
	catalog := render.NewCatalog("")
	catalog.Add("en", "greeting", "Hello, {name}!")

	got, err := catalog.Translate("en", "greeting", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Hello, Ada!" {
		t.Fatalf("unexpected interpolation %q", got)
	}
}

func TestLoadCatalogFS(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/en.yaml": &fstest.MapFile{Data: []byte(`buttons:
  save: Save
  cancel: Cancel
views:
  login:
    title: Sign in
`)},
		"locales/es.yml": &fstest.MapFile{Data: []byte("buttons:\n  save: Guardar\n")},
		"locales/notes.txt": &fstest.MapFile{Data: []byte("not a catalog")},
	}

	catalog, err := render.LoadCatalogFS(fsys, "en")
	if err != nil {
		t.Fatalf("LoadCatalogFS: %v", err)
	}

	got, err := catalog.Translate("en", "views.login.title")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Sign in" {
		t.Fatalf("expected nested keys to flatten, got %q", got)
	}

	got, err = catalog.Translate("es", "buttons.cancel")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Cancel" {
		t.Fatalf("expected fallback for untranslated key, got %q", got)
	}

	if len(catalog.Locales()) != 2 {
		t.Fatalf("expected two locales, got %v", catalog.Locales())
	}
}
