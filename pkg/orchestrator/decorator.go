package orchestrator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/view"
)

// ViewDecorator mutates a resolved document before widget resolution and
// rendering run. Implementations can retitle views, inject elements, or patch
// props.
type ViewDecorator interface {
	Decorate(doc *view.Document) error
}

// ViewDecoratorFunc adapts plain functions to the ViewDecorator interface.
type ViewDecoratorFunc func(doc *view.Document) error

// Decorate executes the wrapped function when non-nil.
func (fn ViewDecoratorFunc) Decorate(doc *view.Document) error {
	if fn == nil {
		return nil
	}
	return fn(doc)
}

// JSONPresetDecorator applies declarative overrides loaded from a JSON file.
// The document shape supports view-level fields and per-element patches keyed
// by element path:
//
//	{
//	  "title": "Signup",
//	  "theme": "acme",
//	  "elements": {
//	    "elements[0]": {"props": {"label": "Email address"}},
//	    "elements[1].children[0]": {"component": "badge"}
//	  }
//	}
type JSONPresetDecorator struct {
	document jsonPresetDocument
}

type jsonPresetDocument struct {
	Title    string                      `json:"title"`
	TitleKey string                      `json:"titleKey"`
	Theme    string                      `json:"theme"`
	Variant  string                      `json:"variant"`
	Elements map[string]jsonElementPatch `json:"elements"`
}

type jsonElementPatch struct {
	Component string         `json:"component"`
	When      string         `json:"when"`
	Props     map[string]any `json:"props"`
}

// NewJSONPresetDecorator constructs a decorator from raw JSON bytes.
func NewJSONPresetDecorator(data []byte) (*JSONPresetDecorator, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset decorator: document is empty")
	}
	var document jsonPresetDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset decorator: parse document: %w", err)
	}
	return &JSONPresetDecorator{document: document}, nil
}

// NewJSONPresetDecoratorFromFS loads a preset document from the provided
// filesystem path.
func NewJSONPresetDecoratorFromFS(fsys fs.FS, path string) (*JSONPresetDecorator, error) {
	if fsys == nil {
		return nil, errors.New("json preset decorator: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset decorator: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset decorator: read %s: %w", path, err)
	}
	return NewJSONPresetDecorator(data)
}

// Decorate applies the declarative patches onto the supplied document.
func (d *JSONPresetDecorator) Decorate(doc *view.Document) error {
	if doc == nil {
		return errors.New("json preset decorator: document is nil")
	}

	if d.document.Title != "" {
		doc.Title = d.document.Title
	}
	if d.document.TitleKey != "" {
		doc.TitleKey = d.document.TitleKey
	}
	if d.document.Theme != "" {
		doc.Theme = d.document.Theme
	}
	if d.document.Variant != "" {
		doc.Variant = d.document.Variant
	}

	for path, patch := range d.document.Elements {
		element := findElementByPath(doc, path)
		if element == nil {
			return fmt.Errorf("json preset decorator: element %q not found", path)
		}
		applyElementPatch(element, patch)
	}
	return nil
}

func applyElementPatch(element *view.Element, patch jsonElementPatch) {
	if element == nil {
		return
	}
	if name := strings.TrimSpace(patch.Component); name != "" {
		element.Component = name
	}
	if patch.When != "" {
		element.When = patch.When
	}
	if len(patch.Props) > 0 {
		element.Props = element.Props.Merge(component.Props(patch.Props))
	}
}

// findElementByPath resolves paths of the form "elements[0].children[2]",
// the same shape validation issues report.
func findElementByPath(doc *view.Document, path string) *view.Element {
	segments := strings.Split(strings.TrimSpace(path), ".")
	if len(segments) == 0 {
		return nil
	}

	head, idx, ok := splitIndexSegment(segments[0])
	if !ok || head != "elements" || idx >= len(doc.Elements) {
		return nil
	}
	element := &doc.Elements[idx]

	for _, segment := range segments[1:] {
		head, idx, ok = splitIndexSegment(segment)
		if !ok || head != "children" || idx >= len(element.Children) {
			return nil
		}
		element = &element.Children[idx]
	}
	return element
}

// splitIndexSegment breaks "children[2]" into its name and index.
func splitIndexSegment(segment string) (string, int, bool) {
	open := strings.IndexByte(segment, '[')
	if open <= 0 || !strings.HasSuffix(segment, "]") {
		return "", 0, false
	}
	idx, err := strconv.Atoi(segment[open+1 : len(segment)-1])
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return segment[:open], idx, true
}
