package viewsource_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-uikit/internal/viewsource"
	"github.com/goliatone/go-uikit/pkg/view"
)

const sampleDocument = `{"name": "signup", "elements": [{"component": "input", "props": {"name": "email"}}]}`

func TestLoader_FileSource(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "signup.json")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := viewsource.New(view.NewLoaderOptions())
	doc, err := loader.Load(context.Background(), view.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if doc.Name != "signup" {
		t.Fatalf("unexpected document name %q", doc.Name)
	}
	if doc.Source != path {
		t.Fatalf("source not recorded: %q", doc.Source)
	}
	if len(doc.Elements) != 1 || doc.Elements[0].Component != "input" {
		t.Fatalf("unexpected elements: %+v", doc.Elements)
	}
}

func TestLoader_FSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"views/dashboard.yaml": &fstest.MapFile{
			Data: []byte("name: dashboard\nelements:\n  - component: heading\n    props:\n      text: Stats\n"),
		},
	}

	loader := viewsource.New(view.NewLoaderOptions(view.WithFileSystem(fsys)))
	doc, err := loader.Load(context.Background(), view.SourceFromFS("views/dashboard.yaml"))
	if err != nil {
		t.Fatalf("load fs: %v", err)
	}
	if doc.Name != "dashboard" {
		t.Fatalf("unexpected document name %q", doc.Name)
	}
	if doc.Elements[0].Props.String("text") != "Stats" {
		t.Fatalf("yaml props not decoded: %+v", doc.Elements[0].Props)
	}
}

func TestLoader_FSSourceWithoutFS(t *testing.T) {
	loader := viewsource.New(view.NewLoaderOptions())
	if _, err := loader.Load(context.Background(), view.SourceFromFS("views/a.json")); err == nil {
		t.Fatal("expected error when fs is nil")
	}
}

func TestLoader_HTTPSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"elements": [{"component": "text", "props": {"text": "Hi"}}]}`))
	}))
	defer server.Close()

	loader := viewsource.New(view.NewLoaderOptions(view.WithHTTPFallback(0)))
	doc, err := loader.Load(context.Background(), view.SourceFromURL(server.URL+"/views/welcome.json"))
	if err != nil {
		t.Fatalf("load http: %v", err)
	}
	if doc.Name != "welcome" {
		t.Fatalf("name should derive from the url path, got %q", doc.Name)
	}
}

func TestLoader_HTTPDisabled(t *testing.T) {
	loader := viewsource.New(view.NewLoaderOptions())
	if _, err := loader.Load(context.Background(), view.SourceFromURL("http://example.com/view.json")); err == nil {
		t.Fatal("expected error when http support is disabled")
	}
}

func TestLoader_HTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	loader := viewsource.New(view.NewLoaderOptions(view.WithHTTPFallback(0)))
	if _, err := loader.Load(context.Background(), view.SourceFromURL(server.URL)); err == nil {
		t.Fatal("expected error for non-2xx response")
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := viewsource.New(view.NewLoaderOptions())
	if _, err := loader.Load(ctx, view.SourceFromFile("missing.json")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoader_NilSource(t *testing.T) {
	loader := viewsource.New(view.NewLoaderOptions())
	if _, err := loader.Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}
