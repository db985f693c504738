// Package jsontree renders a view document as deterministic JSON for
// client-side hydration. Key order is stable across runs: struct fields keep
// declaration order and props marshal through an ordered map, so payloads can
// be snapshot-tested and cached byte-for-byte.
package jsontree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/view"
	"github.com/goliatone/go-uikit/pkg/visibility"
	"github.com/goliatone/go-uikit/pkg/visibility/expr"
	"github.com/goliatone/go-uikit/pkg/widgets"
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	kit     *kit.Registry
	widgets *widgets.Registry
	rules   visibility.Evaluator
	indent  string
}

// WithKit swaps the component registry used for asset collection.
func WithKit(registry *kit.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.kit = registry
		}
	}
}

// WithWidgets swaps the widget registry that rewrites "field" placeholders
// before export.
func WithWidgets(registry *widgets.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.widgets = registry
		}
	}
}

// WithVisibility swaps the evaluator used for element "when" rules.
func WithVisibility(evaluator visibility.Evaluator) Option {
	return func(cfg *config) {
		if evaluator != nil {
			cfg.rules = evaluator
		}
	}
}

// WithIndent pretty-prints the payload with the given indent string.
func WithIndent(indent string) Option {
	return func(cfg *config) {
		cfg.indent = indent
	}
}

// Renderer serialises view documents into hydration payloads.
type Renderer struct {
	kit     *kit.Registry
	widgets *widgets.Registry
	rules   visibility.Evaluator
	indent  string
}

// New constructs the JSON renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		kit:     kit.NewDefaultRegistry(),
		widgets: widgets.NewRegistry(),
		rules:   expr.New(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return &Renderer{
		kit:     cfg.kit,
		widgets: cfg.widgets,
		rules:   cfg.rules,
		indent:  cfg.indent,
	}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "json"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render produces the JSON payload for a view document. The document is
// cloned before widget resolution, so callers can reuse it across renders.
func (r *Renderer) Render(_ context.Context, doc view.Document, options render.RenderOptions) ([]byte, error) {
	doc = doc.Clone()
	if r.widgets != nil {
		if err := r.widgets.Apply(&doc); err != nil {
			return nil, fmt.Errorf("json renderer: resolve widgets: %w", err)
		}
	}

	used := make(map[string]struct{})
	elements := make([]elementPayload, 0, len(doc.Elements))
	for idx, el := range doc.Elements {
		payload, skip, err := r.exportElement(el, fmt.Sprintf("elements[%d]", idx), options.Extras, used)
		if err != nil {
			return nil, fmt.Errorf("json renderer: %w", err)
		}
		if skip {
			continue
		}
		elements = append(elements, payload)
	}

	payload := documentPayload{
		View: viewPayload{
			Name:    doc.Name,
			Title:   doc.Title,
			Theme:   doc.Theme,
			Variant: doc.Variant,
		},
		Elements: elements,
		Assets:   r.exportAssets(used, options.AssetPrefix),
		Theme:    exportTheme(options.Theme),
	}

	var data []byte
	var err error
	if r.indent != "" {
		data, err = json.MarshalIndent(payload, "", r.indent)
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal document: %w", err)
	}
	return data, nil
}

func (r *Renderer) exportElement(el view.Element, path string, extras map[string]any, used map[string]struct{}) (elementPayload, bool, error) {
	if rule := strings.TrimSpace(el.When); rule != "" && r.rules != nil {
		visible, err := r.rules.Eval(path, rule, visibility.Context{
			Props:  el.Props,
			Extras: extras,
		})
		if err != nil {
			return elementPayload{}, false, fmt.Errorf("evaluate when rule for element %q: %w", path, err)
		}
		if !visible {
			return elementPayload{}, true, nil
		}
	}

	componentName := strings.TrimSpace(el.Component)
	if componentName == "" && len(el.Children) == 0 {
		return elementPayload{}, true, nil
	}

	payload := elementPayload{
		Component: componentName,
		Props:     orderedProps(el.Props),
	}
	if componentName != "" {
		payload.Classes = component.SpacingClasses(el.Props)
		used[componentName] = struct{}{}
	}

	for idx, child := range el.Children {
		childPayload, skip, err := r.exportElement(child, fmt.Sprintf("%s.children[%d]", path, idx), extras, used)
		if err != nil {
			return elementPayload{}, false, err
		}
		if skip {
			continue
		}
		payload.Children = append(payload.Children, childPayload)
	}

	return payload, false, nil
}

func (r *Renderer) exportAssets(used map[string]struct{}, prefix string) *assetsPayload {
	if r.kit == nil || len(used) == 0 {
		return nil
	}
	names := make([]string, 0, len(used))
	for name := range used {
		names = append(names, name)
	}
	slices.Sort(names)

	stylesheets, scripts := r.kit.Assets(names)
	if len(stylesheets) == 0 && len(scripts) == 0 {
		return nil
	}

	payload := &assetsPayload{}
	for _, href := range stylesheets {
		payload.Stylesheets = append(payload.Stylesheets, expandAssetURL(prefix, href))
	}
	for _, script := range scripts {
		entry := scriptPayload{
			Type:   strings.TrimSpace(script.Type),
			Async:  script.Async,
			Defer:  script.Defer,
			Inline: script.Inline,
		}
		if script.Module {
			entry.Type = "module"
		}
		if script.Src != "" {
			entry.Src = expandAssetURL(prefix, script.Src)
		}
		payload.Scripts = append(payload.Scripts, entry)
	}
	return payload
}

type documentPayload struct {
	View     viewPayload      `json:"view"`
	Elements []elementPayload `json:"elements"`
	Assets   *assetsPayload   `json:"assets,omitempty"`
	Theme    *themePayload    `json:"theme,omitempty"`
}

type viewPayload struct {
	Name    string `json:"name"`
	Title   string `json:"title,omitempty"`
	Theme   string `json:"theme,omitempty"`
	Variant string `json:"variant,omitempty"`
}

type elementPayload struct {
	Component string           `json:"component,omitempty"`
	Classes   string           `json:"classes,omitempty"`
	Props     orderedProps     `json:"props,omitempty"`
	Children  []elementPayload `json:"children,omitempty"`
}

type assetsPayload struct {
	Stylesheets []string        `json:"stylesheets,omitempty"`
	Scripts     []scriptPayload `json:"scripts,omitempty"`
}

type scriptPayload struct {
	Src    string `json:"src,omitempty"`
	Type   string `json:"type,omitempty"`
	Async  bool   `json:"async,omitempty"`
	Defer  bool   `json:"defer,omitempty"`
	Inline string `json:"inline,omitempty"`
}

type themePayload struct {
	Name    string            `json:"name,omitempty"`
	Variant string            `json:"variant,omitempty"`
	Tokens  map[string]string `json:"tokens,omitempty"`
	CSSVars map[string]string `json:"cssVars,omitempty"`
}

func exportTheme(cfg *theme.RendererConfig) *themePayload {
	if cfg == nil {
		return nil
	}
	return &themePayload{
		Name:    cfg.Theme,
		Variant: cfg.Variant,
		Tokens:  cfg.Tokens,
		CSSVars: cfg.CSSVars,
	}
}

type orderedProps map[string]any

// propsKeyOrder pins the keys clients read first; everything else sorts
// alphabetically after them.
var propsKeyOrder = map[string]int{
	kit.PropWidget: 0,
	kit.PropLabel:  1,
	kit.PropText:   2,
	kit.PropValue:  3,
}

func propsKeyLess(a, b string) bool {
	aRank, aSpecial := propsKeyOrder[a]
	bRank, bSpecial := propsKeyOrder[b]
	if aSpecial && bSpecial {
		return aRank < bRank
	}
	if aSpecial != bSpecial {
		return aSpecial
	}
	return a < b
}

func (p orderedProps) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return propsKeyLess(keys[i], keys[j])
	})

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyPayload, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		valuePayload, err := json.Marshal(p[key])
		if err != nil {
			return nil, err
		}
		buf.Write(keyPayload)
		buf.WriteByte(':')
		buf.Write(valuePayload)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func expandAssetURL(prefix, name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") ||
		strings.HasPrefix(name, "https://") ||
		strings.HasPrefix(name, "//") ||
		strings.HasPrefix(name, "/") {
		return name
	}
	if prefix == "" {
		return name
	}
	p := strings.TrimRight(prefix, "/")
	n := strings.TrimLeft(name, "/")
	if p == "" {
		return n
	}
	return p + "/" + n
}
