package component

import (
	"bytes"
	"fmt"
	"html"
	"strings"
)

// Spacing wraps a component so its output is enclosed in a single container
// carrying vertical-margin utility classes derived from the props.
//
// Two optional props drive the class list: KeySpaceTop selects a
// "space-top-<value>" token and KeySpaceBottom a "space-<value>" token. A
// falsy or absent value omits its token; when neither is present the
// container still renders, with an empty class attribute. The wrapped
// component receives the original props untouched, spacing keys included, so
// decoration never changes what the inner component sees.
//
// Values are interpolated as-is. A value outside the stylesheet's spacing
// scale produces a class that matches no rule, which is a layout no-op rather
// than an error.
func Spacing(inner Component) Component {
	return Func(func(buf *bytes.Buffer, props Props) error {
		buf.WriteString(`<div class="`)
		buf.WriteString(html.EscapeString(SpacingClasses(props)))
		buf.WriteString(`">`)
		if inner != nil {
			if err := inner.Render(buf, props); err != nil {
				return err
			}
		}
		buf.WriteString(`</div>`)
		return nil
	})
}

// SpacingFunc decorates a bare rendering function.
func SpacingFunc(inner Func) Func {
	return Spacing(inner).Render
}

// SpacingClasses computes the utility-class string Spacing would place on its
// container, without rendering. Token order is fixed: top before bottom.
func SpacingClasses(props Props) string {
	classes := make([]string, 0, 2)
	if value, ok := props[KeySpaceTop]; ok && Truthy(value) {
		classes = append(classes, fmt.Sprintf("space-top-%v", value))
	}
	if value, ok := props[KeySpaceBottom]; ok && Truthy(value) {
		classes = append(classes, fmt.Sprintf("space-%v", value))
	}
	return strings.Join(classes, " ")
}
