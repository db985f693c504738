package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	_ "go.uber.org/automaxprocs"
	"golang.org/x/time/rate"

	uikit "github.com/goliatone/go-uikit"
	"github.com/goliatone/go-uikit/components/icons"
	"github.com/goliatone/go-uikit/components/icons/kitwiring"
	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	html "github.com/goliatone/go-uikit/pkg/renderers/html"
	"github.com/goliatone/go-uikit/pkg/view"
)

type galleryConfig struct {
	Addr     string
	ViewsDir string
}

func config() galleryConfig {
	addr := os.Getenv("UIKIT_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	views := os.Getenv("UIKIT_VIEWS")
	if views == "" {
		views = "examples/views"
	}

	return galleryConfig{Addr: addr, ViewsDir: views}
}

type gallery struct {
	instance   string
	components *kit.Registry
	gen        *orchestrator.Orchestrator
	index      *gotemplate.Engine
	limiter    *rate.Limiter
	viewsDir   string
}

func main() {
	cfg := config()

	components := kit.NewDefaultRegistry()
	if err := kitwiring.Register(components); err != nil {
		slog.Error("wire icon set", "error", err)
		os.Exit(1)
	}

	htmlRenderer, err := html.New(
		html.WithKit(components),
		html.WithStylesheet("/assets/"+uikit.StylesheetName),
	)
	if err != nil {
		slog.Error("build html renderer", "error", err)
		os.Exit(1)
	}
	renderers := render.NewRegistry()
	renderers.MustRegister(htmlRenderer)

	engine, err := gotemplate.New()
	if err != nil {
		slog.Error("build index template engine", "error", err)
		os.Exit(1)
	}

	g := &gallery{
		instance:   uuid.New().String(),
		components: components,
		gen: orchestrator.New(
			orchestrator.WithKit(components),
			orchestrator.WithRegistry(renderers),
		),
		index:    engine,
		limiter:  rate.NewLimiter(rate.Limit(20), 40),
		viewsDir: cfg.ViewsDir,
	}

	mux := http.NewServeMux()
	mux.Handle("/assets/",
		http.StripPrefix("/assets/",
			http.FileServerFS(uikit.AssetsFS()),
		),
	)
	mux.HandleFunc("/component/", g.handleComponent)
	mux.HandleFunc("/view/", g.handleView)
	mux.HandleFunc("/", g.handleIndex)
	if _, err := icons.RegisterRoutes(mux, ""); err != nil {
		slog.Error("mount icons api", "error", err)
		os.Exit(1)
	}

	slog.Info("gallery listening", "addr", cfg.Addr, "instance", g.instance)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

const indexTemplate = `<!doctype html>
<html lang="en">
<head>
    <meta charset="utf-8"/>
    <title>uikit gallery</title>
    <link rel="stylesheet" href="/assets/{{ stylesheet }}?v={{ instance }}"/>
</head>
<body class="uikit-page">
    <h1 class="uikit-heading">Component gallery</h1>
    <h2 class="uikit-heading">Components</h2>
    <ul>
{% for name in components %}        <li><a href="/component/{{ name }}?label={{ name }}&amp;spaceBottom=2">{{ name }}</a></li>
{% endfor %}    </ul>
    <h2 class="uikit-heading">Views</h2>
    <ul>
{% for name in views %}        <li><a href="/view/{{ name }}">{{ name }}</a></li>
{% endfor %}    </ul>
</body>
</html>
`

func (g *gallery) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page, err := g.index.RenderString(indexTemplate, map[string]any{
		"stylesheet": uikit.StylesheetName,
		"instance":   g.instance,
		"components": g.components.Names(),
		"views":      g.listViews(),
	})
	if err != nil {
		slog.Error("render index", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

func (g *gallery) handleComponent(w http.ResponseWriter, r *http.Request) {
	if !g.limiter.Allow() {
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/component/"), "/")
	if name == "" || !g.components.Has(name) {
		http.NotFound(w, r)
		return
	}

	doc := view.Document{
		Name:  name,
		Title: name,
		Elements: []view.Element{
			{Component: name, Props: propsFromQuery(r.URL.Query())},
		},
	}

	out, err := g.gen.Generate(r.Context(), orchestrator.Request{Document: &doc})
	if err != nil {
		slog.Error("render component", "component", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(out)
}

func (g *gallery) handleView(w http.ResponseWriter, r *http.Request) {
	if !g.limiter.Allow() {
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/view/"), "/")
	path, ok := g.viewFile(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	out, err := g.gen.Generate(r.Context(), orchestrator.Request{
		Source: view.SourceFromFile(path),
		View:   name,
	})
	if err != nil {
		slog.Error("render view", "view", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(out)
}

func (g *gallery) listViews() []string {
	entries, err := os.ReadDir(g.viewsDir)
	if err != nil {
		slog.Warn("list views", "dir", g.viewsDir, "error", err)
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".json" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(names)
	return names
}

func (g *gallery) viewFile(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, "/\\.") {
		return "", false
	}
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(g.viewsDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// propsFromQuery converts query parameters into component props, keeping
// numeric and boolean values typed so spacing and level props behave.
func propsFromQuery(values url.Values) component.Props {
	props := component.Props{}
	for key, list := range values {
		if len(list) == 0 {
			continue
		}
		raw := list[0]
		if n, err := strconv.Atoi(raw); err == nil {
			props[key] = n
			continue
		}
		if b, err := strconv.ParseBool(raw); err == nil {
			props[key] = b
			continue
		}
		props[key] = raw
	}
	return props
}
