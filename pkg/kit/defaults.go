package kit

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-uikit/pkg/component"
)

// NewDefaultRegistry constructs a registry pre-populated with the built-in
// presentational components. Every entry is registered wrapped with the
// spacing decorator, so rendered output always carries the spacing container
// and honours spaceTop/spaceBottom props out of the box.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameText, Descriptor{
		Renderer: component.Spacing(component.Func(textRenderer)),
	})
	registry.MustRegister(NameHeading, Descriptor{
		Renderer: component.Spacing(component.Func(headingRenderer)),
	})
	registry.MustRegister(NameInput, Descriptor{
		Renderer: component.Spacing(component.Func(inputRenderer)),
		Props:    inputPropsSchema(),
	})
	registry.MustRegister(NameTextarea, Descriptor{
		Renderer: component.Spacing(component.Func(textareaRenderer)),
	})
	registry.MustRegister(NameSelect, Descriptor{
		Renderer: component.Spacing(component.Func(selectRenderer)),
		Props:    selectPropsSchema(),
	})
	registry.MustRegister(NameCheckbox, Descriptor{
		Renderer: component.Spacing(component.Func(checkboxRenderer)),
	})
	registry.MustRegister(NameButton, Descriptor{
		Renderer: component.Spacing(component.Func(buttonRenderer)),
		Props:    buttonPropsSchema(),
	})
	registry.MustRegister(NameBadge, Descriptor{
		Renderer: component.Spacing(component.Func(badgeRenderer)),
	})
	registry.MustRegister(NameImage, Descriptor{
		Renderer: component.Spacing(component.Func(imageRenderer)),
		Props:    imagePropsSchema(),
	})
	registry.MustRegister(NameIcon, Descriptor{
		Renderer: component.Spacing(component.Func(iconRenderer)),
	})

	return registry
}

func textRenderer(buf *bytes.Buffer, props component.Props) error {
	var builder strings.Builder
	builder.WriteString(`<p`)
	writeAttr(&builder, "id", controlID(props))
	writeClassAttr(&builder, componentClasses("uikit-text", props))
	builder.WriteString(`>`)
	text := props.String(PropText)
	if text == "" {
		text = props.String(PropValue)
	}
	builder.WriteString(html.EscapeString(text))
	builder.WriteString(`</p>`)

	buf.WriteString(builder.String())
	return nil
}

func headingRenderer(buf *bytes.Buffer, props component.Props) error {
	level, ok := props.Int(PropLevel)
	if !ok || level < 1 || level > 6 {
		level = 2
	}
	tag := fmt.Sprintf("h%d", level)

	var builder strings.Builder
	builder.WriteString("<" + tag)
	writeAttr(&builder, "id", controlID(props))
	writeClassAttr(&builder, componentClasses("uikit-heading", props))
	builder.WriteString(`>`)
	text := props.String(PropText)
	if text == "" {
		text = props.String(PropLabel)
	}
	builder.WriteString(html.EscapeString(text))
	builder.WriteString("</" + tag + ">")

	buf.WriteString(builder.String())
	return nil
}

func inputRenderer(buf *bytes.Buffer, props component.Props) error {
	id := controlID(props)

	var builder strings.Builder
	writeLabel(&builder, props, id)

	builder.WriteString(`<input`)
	writeAttr(&builder, "id", id)
	writeAttr(&builder, "name", strings.TrimSpace(props.String(PropName)))
	inputType := strings.TrimSpace(props.String(PropType))
	if inputType == "" {
		inputType = "text"
	}
	writeAttr(&builder, "type", inputType)
	writeClassAttr(&builder, componentClasses("uikit-input", props))
	writeAttr(&builder, "value", props.String(PropValue))
	writeAttr(&builder, "placeholder", props.String(PropPlaceholder))
	if props.Bool(PropRequired) {
		builder.WriteString(` required`)
	}
	if props.Bool(PropDisabled) {
		builder.WriteString(` disabled`)
	}
	builder.WriteString(`/>`)

	buf.WriteString(builder.String())
	return nil
}

func textareaRenderer(buf *bytes.Buffer, props component.Props) error {
	id := controlID(props)

	var builder strings.Builder
	writeLabel(&builder, props, id)

	builder.WriteString(`<textarea`)
	writeAttr(&builder, "id", id)
	writeAttr(&builder, "name", strings.TrimSpace(props.String(PropName)))
	writeClassAttr(&builder, componentClasses("uikit-textarea", props))
	if rows, ok := props.Int(PropRows); ok && rows > 0 {
		writeAttr(&builder, "rows", fmt.Sprintf("%d", rows))
	}
	writeAttr(&builder, "placeholder", props.String(PropPlaceholder))
	if props.Bool(PropRequired) {
		builder.WriteString(` required`)
	}
	if props.Bool(PropDisabled) {
		builder.WriteString(` disabled`)
	}
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(props.String(PropValue)))
	builder.WriteString(`</textarea>`)

	buf.WriteString(builder.String())
	return nil
}

func selectRenderer(buf *bytes.Buffer, props component.Props) error {
	id := controlID(props)
	selected := props.String(PropValue)

	var builder strings.Builder
	writeLabel(&builder, props, id)

	builder.WriteString(`<select`)
	writeAttr(&builder, "id", id)
	writeAttr(&builder, "name", strings.TrimSpace(props.String(PropName)))
	writeClassAttr(&builder, componentClasses("uikit-select", props))
	if props.Bool(PropRequired) {
		builder.WriteString(` required`)
	}
	if props.Bool(PropDisabled) {
		builder.WriteString(` disabled`)
	}
	builder.WriteString(`>`)

	if placeholder := strings.TrimSpace(props.String(PropPlaceholder)); placeholder != "" {
		builder.WriteString(`<option value="" disabled`)
		if selected == "" {
			builder.WriteString(` selected`)
		}
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(placeholder))
		builder.WriteString(`</option>`)
	}

	for _, option := range optionItems(props) {
		builder.WriteString(`<option`)
		writeAttr(&builder, "value", option.Value)
		if option.Value != "" && option.Value == selected {
			builder.WriteString(` selected`)
		}
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(option.Label))
		builder.WriteString(`</option>`)
	}

	builder.WriteString(`</select>`)
	buf.WriteString(builder.String())
	return nil
}

func checkboxRenderer(buf *bytes.Buffer, props component.Props) error {
	id := controlID(props)

	var builder strings.Builder
	builder.WriteString(`<label`)
	writeAttr(&builder, "for", id)
	builder.WriteString(` class="uikit-checkbox">`)

	builder.WriteString(`<input type="checkbox"`)
	writeAttr(&builder, "id", id)
	writeAttr(&builder, "name", strings.TrimSpace(props.String(PropName)))
	if props.Bool(PropChecked) || props.Bool(PropValue) {
		builder.WriteString(` checked`)
	}
	if props.Bool(PropDisabled) {
		builder.WriteString(` disabled`)
	}
	builder.WriteString(`/>`)

	if label := strings.TrimSpace(props.String(PropLabel)); label != "" {
		builder.WriteString(`<span>`)
		builder.WriteString(html.EscapeString(label))
		builder.WriteString(`</span>`)
	}
	builder.WriteString(`</label>`)

	buf.WriteString(builder.String())
	return nil
}

func buttonRenderer(buf *bytes.Buffer, props component.Props) error {
	buttonType := strings.TrimSpace(props.String(PropType))
	if buttonType != "submit" {
		buttonType = "button"
	}

	var builder strings.Builder
	builder.WriteString(`<button`)
	writeAttr(&builder, "id", controlID(props))
	writeAttr(&builder, "type", buttonType)
	writeClassAttr(&builder, componentClasses("uikit-button", props))
	if props.Bool(PropDisabled) {
		builder.WriteString(` disabled`)
	}
	builder.WriteString(`>`)
	label := props.String(PropLabel)
	if label == "" {
		label = props.String(PropValue)
	}
	builder.WriteString(html.EscapeString(label))
	builder.WriteString(`</button>`)

	buf.WriteString(builder.String())
	return nil
}

func badgeRenderer(buf *bytes.Buffer, props component.Props) error {
	var builder strings.Builder
	builder.WriteString(`<span`)
	writeClassAttr(&builder, componentClasses("uikit-badge", props))
	builder.WriteString(`>`)
	text := props.String(PropLabel)
	if text == "" {
		text = props.String(PropValue)
	}
	builder.WriteString(html.EscapeString(text))
	builder.WriteString(`</span>`)

	buf.WriteString(builder.String())
	return nil
}

func imageRenderer(buf *bytes.Buffer, props component.Props) error {
	var builder strings.Builder
	builder.WriteString(`<img`)
	writeAttr(&builder, "id", controlID(props))
	writeClassAttr(&builder, componentClasses("uikit-image", props))
	writeAttr(&builder, "src", strings.TrimSpace(props.String(PropSrc)))
	writeAttr(&builder, "alt", props.String(PropAlt))
	builder.WriteString(`/>`)

	buf.WriteString(builder.String())
	return nil
}

func iconRenderer(buf *bytes.Buffer, props component.Props) error {
	markup := SanitizeIconMarkup(props.String(PropIcon))

	var builder strings.Builder
	builder.WriteString(`<span`)
	writeClassAttr(&builder, componentClasses("uikit-icon", props))
	builder.WriteString(` aria-hidden="true">`)
	// Sanitized SVG is written raw; everything else was stripped by the policy.
	builder.WriteString(markup)
	builder.WriteString(`</span>`)

	buf.WriteString(builder.String())
	return nil
}

type optionItem struct {
	Value string
	Label string
}

// optionItems normalises the options prop, accepting plain strings or
// value/label mappings in any mix.
func optionItems(props component.Props) []optionItem {
	raw, ok := props[PropOptions]
	if !ok {
		return nil
	}

	appendItem := func(items []optionItem, value any) []optionItem {
		switch entry := value.(type) {
		case string:
			if entry == "" {
				return items
			}
			return append(items, optionItem{Value: entry, Label: entry})
		case map[string]any:
			item := optionItem{
				Value: component.Props(entry).String(PropValue),
				Label: component.Props(entry).String(PropLabel),
			}
			if item.Label == "" {
				item.Label = item.Value
			}
			if item.Value == "" && item.Label == "" {
				return items
			}
			return append(items, item)
		default:
			if entry == nil {
				return items
			}
			text := fmt.Sprintf("%v", entry)
			return append(items, optionItem{Value: text, Label: text})
		}
	}

	var items []optionItem
	switch values := raw.(type) {
	case []string:
		for _, value := range values {
			items = appendItem(items, value)
		}
	case []any:
		for _, value := range values {
			items = appendItem(items, value)
		}
	case []map[string]any:
		for _, value := range values {
			items = appendItem(items, value)
		}
	}
	return items
}

func inputPropsSchema() *openapi3.Schema {
	return &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			PropLabel:       stringSchema(),
			PropPlaceholder: stringSchema(),
			PropName:        stringSchema(),
			PropID:          stringSchema(),
			PropType:        stringSchema(),
			PropValue:       anySchema(),
			PropRequired:    boolSchema(),
			PropDisabled:    boolSchema(),
		},
	}
}

func selectPropsSchema() *openapi3.Schema {
	return &openapi3.Schema{
		Type: &openapi3.Types{openapi3.TypeObject},
		Properties: openapi3.Schemas{
			PropLabel:       stringSchema(),
			PropPlaceholder: stringSchema(),
			PropName:        stringSchema(),
			PropValue:       anySchema(),
			PropOptions: openapi3.NewSchemaRef("", &openapi3.Schema{
				Type: &openapi3.Types{openapi3.TypeArray},
			}),
			PropRequired: boolSchema(),
			PropDisabled: boolSchema(),
		},
	}
}

func buttonPropsSchema() *openapi3.Schema {
	return &openapi3.Schema{
		Type:     &openapi3.Types{openapi3.TypeObject},
		Required: []string{PropLabel},
		Properties: openapi3.Schemas{
			PropLabel:   stringSchema(),
			PropVariant: stringSchema(),
			PropType: openapi3.NewSchemaRef("", &openapi3.Schema{
				Type: &openapi3.Types{openapi3.TypeString},
				Enum: []any{"button", "submit"},
			}),
			PropDisabled: boolSchema(),
		},
	}
}

func imagePropsSchema() *openapi3.Schema {
	return &openapi3.Schema{
		Type:     &openapi3.Types{openapi3.TypeObject},
		Required: []string{PropSrc},
		Properties: openapi3.Schemas{
			PropSrc: stringSchema(),
			PropAlt: stringSchema(),
		},
	}
}

func stringSchema() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}})
}

func boolSchema() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeBoolean}})
}

func anySchema() *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("", &openapi3.Schema{})
}
