package orchestrator_test

import (
	"path/filepath"
	"testing"

	"github.com/goliatone/go-uikit/pkg/orchestrator"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/renderers/html"
	"github.com/goliatone/go-uikit/pkg/renderers/jsontree"
	"github.com/goliatone/go-uikit/pkg/testsupport"
	"github.com/goliatone/go-uikit/pkg/view"
)

func TestOrchestrator_Integration_MultiRenderer(t *testing.T) {
	t.Parallel()

	ctx := testsupport.Context()
	source := view.SourceFromFile(filepath.Join("testdata", "landing.json"))

	registry := render.NewRegistry()
	registry.MustRegister(mustFragmentHTML(t))
	registry.MustRegister(mustJSONTree(t))

	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("html"),
		orchestrator.WithValidation(true),
	)

	type goldenCase struct {
		name     string
		renderer string
		golden   string
	}

	cases := []goldenCase{
		{name: "DefaultRenderer", renderer: "", golden: "landing_fragment.golden.html"},
		{name: "ExplicitHTML", renderer: "html", golden: "landing_fragment.golden.html"},
		{name: "JSONTree", renderer: "json", golden: "landing.golden.json"},
	}

	collected := make(map[string][]byte)

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			output, err := orch.Generate(ctx, orchestrator.Request{
				Source:   source,
				View:     "landing",
				Renderer: tc.renderer,
			})
			if err != nil {
				t.Fatalf("generate (%s): %v", tc.name, err)
			}

			if prior, ok := collected[tc.golden]; ok {
				if diff := testsupport.CompareGolden(string(prior), string(output)); diff != "" {
					t.Fatalf("renderer output mismatch (-want +got):\n%s", diff)
				}
			} else {
				copied := append([]byte(nil), output...)
				collected[tc.golden] = copied
			}

			goldenPath := filepath.Join("testdata", tc.golden)
			if testsupport.WriteMaybeGolden(t, goldenPath, output) {
				return
			}

			want := testsupport.MustReadGolden(t, goldenPath)
			if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
				t.Fatalf("golden mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func mustFragmentHTML(t *testing.T) render.Renderer {
	t.Helper()

	r, err := html.New(html.WithoutDocumentShell())
	if err != nil {
		t.Fatalf("html renderer: %v", err)
	}
	return r
}

func mustJSONTree(t *testing.T) render.Renderer {
	t.Helper()

	r, err := jsontree.New(jsontree.WithIndent("  "))
	if err != nil {
		t.Fatalf("jsontree renderer: %v", err)
	}
	return r
}
