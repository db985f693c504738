package uikit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-uikit/pkg/view"
)

func TestRenderHTMLFromDocument(t *testing.T) {
	doc := view.Document{
		Name: "welcome",
		Elements: []view.Element{
			{Component: "heading", Props: Props{"text": "Hello", "level": 1}},
		},
	}

	out, err := RenderHTMLFromDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("render document: %v", err)
	}
	if !strings.Contains(string(out), `<h1 class="uikit-heading">Hello</h1>`) {
		t.Fatalf("unexpected markup:\n%s", out)
	}
}

func TestRenderHTMLFromSourceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welcome.json")
	payload := []byte(`{
  "name": "welcome",
  "elements": [
    {"component": "text", "props": {"text": "Served from disk."}}
  ]
}`)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatalf("write document: %v", err)
	}

	out, err := RenderHTML(context.Background(), view.SourceFromFile(path), "welcome")
	if err != nil {
		t.Fatalf("render view: %v", err)
	}
	if !strings.Contains(string(out), "Served from disk.") {
		t.Fatalf("unexpected markup:\n%s", out)
	}
}

func TestNewSourceLoaderLoadsDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.json")
	payload := []byte(`{"name": "panel", "elements": [{"component": "badge", "props": {"label": "New"}}]}`)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		t.Fatalf("write document: %v", err)
	}

	loader := NewSourceLoader()
	doc, err := loader.Load(context.Background(), view.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if doc.Name != "panel" {
		t.Fatalf("unexpected document name: %q", doc.Name)
	}
}
