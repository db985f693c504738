package kit

import (
	"html"
	"strings"

	"github.com/goliatone/go-uikit/pkg/component"
)

func controlID(props component.Props) string {
	if id := strings.TrimSpace(props.String(PropID)); id != "" {
		return "uk-" + id
	}
	if name := strings.TrimSpace(props.String(PropName)); name != "" {
		return "uk-" + name
	}
	return ""
}

func labelIDFor(controlID string) string {
	if controlID == "" {
		return ""
	}
	return controlID + "-label"
}

// writeAttr appends a name="value" pair, escaping the value. Empty values are
// skipped entirely so optional attributes never render blank.
func writeAttr(builder *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	builder.WriteString(" ")
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteString(`"`)
}

func writeClassAttr(builder *strings.Builder, classes []string) {
	builder.WriteString(` class="`)
	builder.WriteString(html.EscapeString(strings.Join(classes, " ")))
	builder.WriteString(`"`)
}

// componentClasses builds the class list for a built-in: the chrome class, an
// optional variant modifier, plus sanitized custom classes from props.
func componentClasses(base string, props component.Props) []string {
	classes := []string{base}
	if variant := strings.TrimSpace(props.String(PropVariant)); variant != "" {
		classes = append(classes, base+"--"+variant)
	}
	if extra := component.SanitizeClassList(props.String(PropClass)); extra != "" {
		classes = append(classes, extra)
	}
	return classes
}

func writeLabel(builder *strings.Builder, props component.Props, forID string) {
	label := strings.TrimSpace(props.String(PropLabel))
	if label == "" {
		return
	}
	builder.WriteString(`<label`)
	writeAttr(builder, "id", labelIDFor(forID))
	writeAttr(builder, "for", forID)
	builder.WriteString(` class="uikit-label">`)
	builder.WriteString(html.EscapeString(label))
	builder.WriteString(`</label>`)
}
