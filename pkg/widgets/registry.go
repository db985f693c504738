package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
	"github.com/goliatone/go-uikit/pkg/view"
)

// Built-in widget identifiers exposed by the registry. Widgets resolve to
// kit component names so a rewritten element renders without extra wiring.
const (
	WidgetCheckbox = kit.NameCheckbox
	WidgetSelect   = kit.NameSelect
	WidgetTextarea = kit.NameTextarea
	WidgetImage    = kit.NameImage
	WidgetInput    = kit.NameInput
)

// Matcher decides whether a widget should handle the supplied element.
type Matcher func(element view.Element) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for elements based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence. Callers should avoid duplicate names; the
// latest registration wins during resolution.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for an element. An explicit "widget" prop
// is honoured before matcher evaluation.
func (r *Registry) Resolve(element view.Element) (string, bool) {
	if explicit := explicitWidget(element); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(element) {
			return entry.name, true
		}
	}
	return "", false
}

// Apply walks the document and rewrites every "field" placeholder element to
// the resolved widget's component name, recording the decision in the
// element's "widget" prop when the author left it empty. Concrete elements
// pass through untouched.
func (r *Registry) Apply(doc *view.Document) error {
	if r == nil || doc == nil {
		return nil
	}
	doc.Elements = r.applyElements(doc.Elements)
	return nil
}

func (r *Registry) applyElements(elements []view.Element) []view.Element {
	if len(elements) == 0 {
		return elements
	}
	applied := make([]view.Element, len(elements))
	for idx, element := range elements {
		applied[idx] = r.applyElement(element)
	}
	return applied
}

func (r *Registry) applyElement(element view.Element) view.Element {
	if strings.TrimSpace(element.Component) == kit.NameField {
		if widget, ok := r.Resolve(element); ok && widget != "" {
			element.Component = widget
			if element.Props.String(kit.PropWidget) == "" {
				element.Props = element.Props.Merge(component.Props{kit.PropWidget: widget})
			}
		}
	}
	if len(element.Children) > 0 {
		element.Children = r.applyElements(element.Children)
	}
	return element
}

func explicitWidget(element view.Element) string {
	if element.Props == nil {
		return ""
	}
	return strings.TrimSpace(element.Props.String(kit.PropWidget))
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetCheckbox, 90, func(element view.Element) bool {
		if element.Props == nil {
			return false
		}
		if element.Props.Has(kit.PropChecked) {
			return true
		}
		_, isBool := element.Props[kit.PropValue].(bool)
		return isBool
	})

	r.Register(WidgetSelect, 70, func(element view.Element) bool {
		if element.Props == nil {
			return false
		}
		switch options := element.Props[kit.PropOptions].(type) {
		case []any:
			return len(options) > 0
		case []string:
			return len(options) > 0
		case []map[string]any:
			return len(options) > 0
		default:
			return false
		}
	})

	r.Register(WidgetTextarea, 60, func(element view.Element) bool {
		if element.Props == nil {
			return false
		}
		if component.Truthy(element.Props[kit.PropMultiline]) {
			return true
		}
		return element.Props.Has(kit.PropRows)
	})

	r.Register(WidgetImage, 50, func(element view.Element) bool {
		return element.Props != nil && element.Props.String(kit.PropSrc) != ""
	})

	// Everything else becomes a plain input, so a "field" placeholder always
	// resolves.
	r.Register(WidgetInput, 10, func(element view.Element) bool {
		return true
	})
}
