package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	uikit "github.com/goliatone/go-uikit"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
	"github.com/goliatone/go-uikit/pkg/render"
	html "github.com/goliatone/go-uikit/pkg/renderers/html"
	"github.com/goliatone/go-uikit/pkg/renderers/jsontree"
	"github.com/goliatone/go-uikit/pkg/renderers/tui"
	"github.com/goliatone/go-uikit/pkg/view"
)

func main() {
	viewPath := flag.String("view", "", "view document path or URL")
	name := flag.String("name", "", "view name to render (must match the document when set)")
	renderer := flag.String("renderer", "html", "renderer to use")
	output := flag.String("output", "", "output file (stdout if empty)")
	themeName := flag.String("theme", "", "theme name passed to the renderer")
	variant := flag.String("variant", "", "theme variant passed to the renderer")
	assets := flag.String("assets", "", "asset URL prefix for stylesheets and scripts")
	list := flag.Bool("list", false, "list registered components and renderers")
	interactive := flag.Bool("interactive", false, "run the terminal playground instead of rendering")
	flag.Parse()

	ctx := context.Background()

	components := kit.NewDefaultRegistry()
	renderers := buildRenderers(components)

	if *list {
		fmt.Println("Components:")
		for _, entry := range components.Names() {
			fmt.Printf("  %s\n", entry)
		}
		fmt.Println("Renderers:")
		for _, entry := range renderers.List() {
			fmt.Printf("  %s\n", entry)
		}
		return
	}

	if *interactive {
		fragment, err := tui.New(tui.WithKit(components)).Run(ctx)
		if err != nil {
			log.Fatalf("Playground failed: %v", err)
		}
		if *output != "" && fragment != "" {
			if err := os.WriteFile(*output, []byte(fragment+"\n"), 0o644); err != nil {
				log.Fatalf("Failed to write output: %v", err)
			}
			fmt.Printf("Fragment written to %s\n", *output)
		}
		return
	}

	src := parseSource(*viewPath)
	if src == nil {
		log.Fatalf("invalid view source: %q", *viewPath)
	}

	gen := orchestrator.New(
		orchestrator.WithKit(components),
		orchestrator.WithRegistry(renderers),
		orchestrator.WithLoader(uikit.NewSourceLoader(view.WithHTTPFallback(30*time.Second))),
	)

	req := orchestrator.Request{
		Source:      src,
		View:        *name,
		Renderer:    *renderer,
		Theme:       *themeName,
		Variant:     *variant,
		AssetPrefix: *assets,
	}

	outputHTML, err := gen.Generate(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate view: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, outputHTML, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("View written to %s\n", *output)
	} else {
		fmt.Println(string(outputHTML))
	}
}

func buildRenderers(components *kit.Registry) *render.Registry {
	htmlRenderer, err := html.New(html.WithKit(components))
	if err != nil {
		log.Fatalf("Failed to build html renderer: %v", err)
	}
	jsonRenderer, err := jsontree.New(jsontree.WithIndent("  "))
	if err != nil {
		log.Fatalf("Failed to build json renderer: %v", err)
	}

	registry := render.NewRegistry()
	registry.MustRegister(htmlRenderer)
	registry.MustRegister(jsonRenderer)
	return registry
}

func parseSource(raw string) view.Source {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return view.SourceFromURL(path)
	}
	return view.SourceFromFile(path)
}
