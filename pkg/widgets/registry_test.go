package widgets

import (
	"testing"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/view"
)

func TestResolve_ExplicitWidgetWins(t *testing.T) {
	reg := NewRegistry()
	element := view.Element{
		Component: "field",
		Props: component.Props{
			"widget": "rating",
			"value":  true,
		},
	}

	if got, ok := reg.Resolve(element); !ok || got != "rating" {
		t.Fatalf("expected explicit widget to win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_Builtins(t *testing.T) {
	reg := NewRegistry()

	cases := []struct {
		name    string
		element view.Element
		expect  string
	}{
		{
			name: "bool value checkbox",
			element: view.Element{
				Component: "field",
				Props:     component.Props{"label": "Enabled", "value": true},
			},
			expect: WidgetCheckbox,
		},
		{
			name: "checked prop checkbox",
			element: view.Element{
				Component: "field",
				Props:     component.Props{"label": "Agree", "checked": false},
			},
			expect: WidgetCheckbox,
		},
		{
			name: "options select",
			element: view.Element{
				Component: "field",
				Props:     component.Props{"label": "Tier", "options": []any{"free", "pro"}},
			},
			expect: WidgetSelect,
		},
		{
			name: "multiline textarea",
			element: view.Element{
				Component: "field",
				Props:     component.Props{"label": "Bio", "multiline": true},
			},
			expect: WidgetTextarea,
		},
		{
			name: "rows textarea",
			element: view.Element{
				Component: "field",
				Props:     component.Props{"label": "Notes", "rows": 6},
			},
			expect: WidgetTextarea,
		},
		{
			name: "src image",
			element: view.Element{
				Component: "field",
				Props:     component.Props{"src": "/img/avatar.png", "alt": "Avatar"},
			},
			expect: WidgetImage,
		},
		{
			name: "fallback input",
			element: view.Element{
				Component: "field",
				Props:     component.Props{"label": "Email", "name": "email"},
			},
			expect: WidgetInput,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := reg.Resolve(tc.element)
			if !ok {
				t.Fatalf("expected resolution for %s", tc.name)
			}
			if got != tc.expect {
				t.Fatalf("resolve %s: want %q, got %q", tc.name, tc.expect, got)
			}
		})
	}
}

func TestResolve_PriorityOverride(t *testing.T) {
	reg := NewRegistry()
	reg.Register("custom", 999, func(element view.Element) bool {
		_, isBool := element.Props["value"].(bool)
		return isBool
	})

	got, ok := reg.Resolve(view.Element{Props: component.Props{"value": true}})
	if !ok || got != "custom" {
		t.Fatalf("priority matcher should win, got %q (ok=%v)", got, ok)
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	reg := &Registry{}
	if got, ok := reg.Resolve(view.Element{Props: component.Props{"value": true}}); ok {
		t.Fatalf("empty registry resolved %q", got)
	}
}

func TestApply_RewritesFieldPlaceholders(t *testing.T) {
	reg := NewRegistry()

	doc := view.Document{
		Name: "profile",
		Elements: []view.Element{
			{Component: "field", Props: component.Props{"label": "Enabled", "value": true}},
			{Component: "field", Props: component.Props{"label": "Bio", "multiline": true}},
			{Component: "heading", Props: component.Props{"text": "Profile"}},
			{
				Children: []view.Element{
					{Component: "field", Props: component.Props{"label": "Tier", "options": []any{"free"}}},
				},
			},
		},
	}

	if err := reg.Apply(&doc); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := doc.Elements[0].Component; got != WidgetCheckbox {
		t.Fatalf("expected checkbox, got %q", got)
	}
	if got := doc.Elements[0].Props.String("widget"); got != WidgetCheckbox {
		t.Fatalf("expected widget prop recorded, got %q", got)
	}
	if got := doc.Elements[1].Component; got != WidgetTextarea {
		t.Fatalf("expected textarea, got %q", got)
	}
	if got := doc.Elements[2].Component; got != "heading" {
		t.Fatalf("concrete elements must pass through, got %q", got)
	}
	if got := doc.Elements[3].Children[0].Component; got != WidgetSelect {
		t.Fatalf("expected select in nested child, got %q", got)
	}
}

func TestApply_ExplicitWidgetProp(t *testing.T) {
	reg := NewRegistry()

	doc := view.Document{
		Name: "profile",
		Elements: []view.Element{
			{Component: "field", Props: component.Props{"label": "Bio", "widget": "textarea"}},
		},
	}

	if err := reg.Apply(&doc); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := doc.Elements[0].Component; got != WidgetTextarea {
		t.Fatalf("expected explicit widget, got %q", got)
	}
}

func TestApply_DoesNotMutateSharedProps(t *testing.T) {
	reg := NewRegistry()

	shared := component.Props{"label": "Email"}
	doc := view.Document{
		Name: "profile",
		Elements: []view.Element{
			{Component: "field", Props: shared},
		},
	}

	if err := reg.Apply(&doc); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, ok := shared["widget"]; ok {
		t.Fatal("apply mutated the caller's props map")
	}
	if got := doc.Elements[0].Props.String("widget"); got != WidgetInput {
		t.Fatalf("expected widget recorded on the applied copy, got %q", got)
	}
}
