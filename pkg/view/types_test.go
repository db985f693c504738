package view

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/component"
)

func TestDocumentCloneIsDeep(t *testing.T) {
	original := Document{
		Name:    "login",
		Title:   "Sign in",
		Theme:   "base",
		Variant: "dark",
		Elements: []Element{
			{
				Component: "input",
				Props:     component.Props{"label": "Email", "spaceBottom": 4},
				When:      "extras.showEmail",
				Children: []Element{
					{Component: "text", Props: component.Props{"text": "hint"}},
				},
			},
		},
		Source: "views/login.yaml",
	}

	clone := original.Clone()
	if diff := cmp.Diff(original, clone); diff != "" {
		t.Fatalf("clone differs (-original +clone):\n%s", diff)
	}

	clone.Elements[0].Props["label"] = "changed"
	clone.Elements[0].Children[0].Component = "badge"
	clone.Elements = append(clone.Elements, Element{Component: "button"})

	if got := original.Elements[0].Props.String("label"); got != "Email" {
		t.Fatalf("clone shares props with original: %q", got)
	}
	if got := original.Elements[0].Children[0].Component; got != "text" {
		t.Fatalf("clone shares children with original: %q", got)
	}
	if len(original.Elements) != 1 {
		t.Fatalf("clone shares element slice with original: %d", len(original.Elements))
	}
}

func TestSourceConstructors(t *testing.T) {
	file := SourceFromFile("./views/login.yaml")
	if file.Kind() != SourceKindFile {
		t.Fatalf("unexpected kind %v", file.Kind())
	}
	if file.Location() != "views/login.yaml" {
		t.Fatalf("unexpected location %q", file.Location())
	}

	url := SourceFromURL("https://example.com/views/login.json")
	if url.Kind() != SourceKindURL {
		t.Fatalf("unexpected kind %v", url.Kind())
	}
}
