package view

import (
	"github.com/goliatone/go-uikit/pkg/component"
)

// Document is one renderable screen: metadata plus a tree of elements.
type Document struct {
	Name     string    `json:"name" yaml:"name"`
	Title    string    `json:"title,omitempty" yaml:"title,omitempty"`
	TitleKey string    `json:"titleKey,omitempty" yaml:"titleKey,omitempty"`
	Theme    string    `json:"theme,omitempty" yaml:"theme,omitempty"`
	Variant  string    `json:"variant,omitempty" yaml:"variant,omitempty"`
	Elements []Element `json:"elements" yaml:"elements"`

	// Source records the file the document was parsed from, when any.
	Source string `json:"-" yaml:"-"`
}

// Element places one component instance in the tree. Elements may carry
// children; a childless element without a component name is invalid, one
// with children and no component acts as a plain grouping node.
type Element struct {
	Component string          `json:"component" yaml:"component"`
	Props     component.Props `json:"props,omitempty" yaml:"props,omitempty"`
	When      string          `json:"when,omitempty" yaml:"when,omitempty"`
	Children  []Element       `json:"children,omitempty" yaml:"children,omitempty"`
}

// Clone returns a deep copy of the document so decorators can mutate freely.
func (d Document) Clone() Document {
	out := d
	out.Elements = cloneElements(d.Elements)
	return out
}

// Clone returns a deep copy of the element, props included.
func (e Element) Clone() Element {
	out := e
	if e.Props != nil {
		out.Props = e.Props.Clone()
	}
	out.Children = cloneElements(e.Children)
	return out
}

func cloneElements(elements []Element) []Element {
	if len(elements) == 0 {
		return nil
	}
	out := make([]Element, len(elements))
	for idx, el := range elements {
		out[idx] = el.Clone()
	}
	return out
}
