package html

import (
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-uikit/pkg/kit"
)

// indentLines prefixes every line of a markup block, dropping the trailing
// newline first so blocks nest without blank lines between them.
func indentLines(block, prefix string) string {
	var builder strings.Builder
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		builder.WriteString(prefix)
		builder.WriteString(line)
		builder.WriteByte('\n')
	}
	return builder.String()
}

// expandAssetURL joins an asset prefix with a relative asset name. Absolute
// URLs and rooted paths pass through untouched.
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

// scriptAttrs renders the attribute tail for a script tag, src excluded.
// Module scripts win over an explicit type.
func scriptAttrs(script kit.Script) string {
	var builder strings.Builder

	scriptType := strings.TrimSpace(script.Type)
	if script.Module {
		scriptType = "module"
	}
	if scriptType != "" {
		builder.WriteString(` type="`)
		builder.WriteString(html.EscapeString(scriptType))
		builder.WriteString(`"`)
	}
	if script.Async {
		builder.WriteString(" async")
	}
	if script.Defer {
		builder.WriteString(" defer")
	}
	if len(script.Attrs) > 0 {
		keys := make([]string, 0, len(script.Attrs))
		for key := range script.Attrs {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			builder.WriteString(" ")
			builder.WriteString(key)
			builder.WriteString(`="`)
			builder.WriteString(html.EscapeString(script.Attrs[key]))
			builder.WriteString(`"`)
		}
	}
	return builder.String()
}

func cloneStringMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for key, value := range src {
		out[key] = value
	}
	return out
}
