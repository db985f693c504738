package kitwiring

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-uikit/components/icons"
	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/kit"
)

// Register installs an "icon" component backed by the named icon set on reg,
// replacing the default inline-markup renderer while keeping any assets and
// props contract already registered under that name.
//
// The wired component:
// - resolves the "name" prop against the set (opts.Icons, else DefaultIcons)
// - falls back to sanitized inline markup from the "icon" prop on a miss
// - renders the same uikit-icon span as the default, spacing included
func Register(reg *kit.Registry, fns ...icons.OptionFn) error {
	if reg == nil {
		return fmt.Errorf("kitwiring: missing registry")
	}

	opts := icons.NewOptions(fns...)
	set := opts.Icons
	if set == nil {
		loaded, err := icons.DefaultIcons()
		if err != nil {
			return fmt.Errorf("kitwiring: load default icons: %w", err)
		}
		set = loaded
	}

	index := make(map[string]string, len(set))
	for _, icon := range set {
		index[strings.ToLower(icon.Name)] = icon.Markup
	}

	descriptor := kit.Descriptor{
		Renderer: component.Spacing(component.Func(namedIconRenderer(index))),
	}
	if base, ok := reg.Descriptor(kit.NameIcon); ok {
		descriptor.Stylesheets = base.Stylesheets
		descriptor.Scripts = base.Scripts
		descriptor.Props = base.Props
	}
	return reg.Register(kit.NameIcon, descriptor)
}

func namedIconRenderer(index map[string]string) component.Func {
	return func(buf *bytes.Buffer, props component.Props) error {
		name := strings.ToLower(strings.TrimSpace(props.String(kit.PropName)))
		markup := index[name]
		if markup == "" {
			markup = kit.SanitizeIconMarkup(props.String(kit.PropIcon))
		}

		classes := []string{"uikit-icon"}
		if variant := strings.TrimSpace(props.String(kit.PropVariant)); variant != "" {
			classes = append(classes, "uikit-icon--"+variant)
		}
		if extra := component.SanitizeClassList(props.String(kit.PropClass)); extra != "" {
			classes = append(classes, extra)
		}

		var builder strings.Builder
		builder.WriteString(`<span class="`)
		builder.WriteString(html.EscapeString(strings.Join(classes, " ")))
		builder.WriteString(`" aria-hidden="true">`)
		builder.WriteString(markup)
		builder.WriteString(`</span>`)

		buf.WriteString(builder.String())
		return nil
	}
}
