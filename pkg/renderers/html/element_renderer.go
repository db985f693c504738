package html

import (
	"bytes"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/view"
	"github.com/goliatone/go-uikit/pkg/visibility"
)

type elementRenderer struct {
	kit        *kit.Registry
	decorators []component.Decorator
	overrides  map[string]string
	rules      visibility.Evaluator
	classes    chromeClasses

	usedComponents map[string]struct{}
}

func newElementRenderer(registry *kit.Registry, decorators []component.Decorator, overrides map[string]string, rules visibility.Evaluator, classes chromeClasses) *elementRenderer {
	if registry == nil {
		registry = kit.NewDefaultRegistry()
	}
	return &elementRenderer{
		kit:            registry,
		decorators:     decorators,
		overrides:      cloneStringMap(overrides),
		rules:          rules,
		classes:        classes,
		usedComponents: make(map[string]struct{}),
	}
}

// render produces the markup for one element, children included. A skipped
// element (its when rule evaluated false, or the element is empty) yields the
// empty string with no error; strictness about empty elements belongs to view
// validation, not rendering.
func (r *elementRenderer) render(element view.Element, path string, extras map[string]any) (string, error) {
	visible, err := r.visible(element, path, extras)
	if err != nil {
		return "", err
	}
	if !visible {
		return "", nil
	}

	componentName := strings.TrimSpace(element.Component)
	if override := r.overrideFor(path, componentName); override != "" {
		componentName = override
	}
	if componentName == "" && len(element.Children) == 0 {
		return "", nil
	}

	control := ""
	if componentName != "" {
		descriptor, ok := r.kit.Descriptor(componentName)
		if !ok {
			return "", fmt.Errorf("component %q not registered for element %q", componentName, path)
		}

		renderComponent := descriptor.Renderer
		if len(r.decorators) > 0 {
			renderComponent = component.Compose(r.decorators...)(renderComponent)
		}

		var buf bytes.Buffer
		if err := renderComponent.Render(&buf, element.Props); err != nil {
			return "", fmt.Errorf("render component %q for element %q: %w", componentName, path, err)
		}
		control = buf.String()

		r.usedComponents[componentName] = struct{}{}
	}

	children := make([]string, 0, len(element.Children))
	for idx, child := range element.Children {
		markup, err := r.render(child, fmt.Sprintf("%s.children[%d]", path, idx), extras)
		if err != nil {
			return "", err
		}
		if markup == "" {
			continue
		}
		children = append(children, markup)
	}

	return r.buildElementMarkup(componentName, control, children), nil
}

func (r *elementRenderer) visible(element view.Element, path string, extras map[string]any) (bool, error) {
	rule := strings.TrimSpace(element.When)
	if rule == "" || r.rules == nil {
		return true, nil
	}
	ok, err := r.rules.Eval(path, rule, visibility.Context{
		Props:  element.Props,
		Extras: extras,
	})
	if err != nil {
		return false, fmt.Errorf("evaluate when rule for element %q: %w", path, err)
	}
	return ok, nil
}

func (r *elementRenderer) overrideFor(path, name string) string {
	if len(r.overrides) == 0 {
		return ""
	}
	if value := r.overrides[path]; value != "" {
		return value
	}
	return r.overrides[name]
}

func (r *elementRenderer) buildElementMarkup(componentName, control string, children []string) string {
	var builder strings.Builder
	builder.Grow(len(control) + 256)

	builder.WriteString(`<div class="`)
	builder.WriteString(html.EscapeString(r.classes.element))
	builder.WriteString(`"`)
	if componentName != "" {
		builder.WriteString(` data-component="`)
		builder.WriteString(html.EscapeString(componentName))
		builder.WriteString(`"`)
	}
	builder.WriteString(">\n")

	if control != "" {
		for _, line := range strings.Split(control, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			builder.WriteString("    ")
			builder.WriteString(line)
			builder.WriteByte('\n')
		}
	}

	if len(children) > 0 {
		builder.WriteString(`    <div class="`)
		builder.WriteString(html.EscapeString(r.classes.children))
		builder.WriteString("\">\n")
		for _, child := range children {
			builder.WriteString(indentLines(child, "        "))
		}
		builder.WriteString("    </div>\n")
	}

	builder.WriteString("</div>\n")
	return builder.String()
}

func (r *elementRenderer) assets() (stylesheets []string, scripts []kit.Script) {
	if r.kit == nil || len(r.usedComponents) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(r.usedComponents))
	for name := range r.usedComponents {
		names = append(names, name)
	}
	slices.Sort(names)
	return r.kit.Assets(names)
}
