package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Regenerates the spacing utility block inside the bundled stylesheet. The
// class list must stay in lockstep with the spacing decorator's
// space-top-{n}/space-{n} output, so the block is generated rather than
// edited by hand.
const (
	stylesheetPath = "pkg/renderers/html/assets/uikit.css"

	beginMarker = "/* spacing-scale:begin (generated by scripts/generate-spacing-css) */"
	endMarker   = "/* spacing-scale:end */"

	steps   = 12
	stepRem = 0.25
)

func main() {
	data, err := os.ReadFile(stylesheetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read stylesheet: %v\n", err)
		os.Exit(1)
	}

	updated, err := replaceScale(string(data), spacingScale())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to update stylesheet: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(stylesheetPath, []byte(updated), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write stylesheet: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Regenerated spacing scale (%d steps) → %s\n", steps, stylesheetPath)
}

func spacingScale() string {
	var builder strings.Builder
	for n := 1; n <= steps; n++ {
		fmt.Fprintf(&builder, ".space-top-%d { margin-top: %srem; }\n", n, remValue(n))
	}
	for n := 1; n <= steps; n++ {
		fmt.Fprintf(&builder, ".space-%d { margin-bottom: %srem; }\n", n, remValue(n))
	}
	return builder.String()
}

// remValue renders n*0.25 with the shortest decimal form, matching the
// hand-readable style of the rest of the stylesheet (0.5rem, 1rem, 2.75rem).
func remValue(n int) string {
	return strconv.FormatFloat(float64(n)*stepRem, 'f', -1, 64)
}

func replaceScale(stylesheet, scale string) (string, error) {
	begin := strings.Index(stylesheet, beginMarker)
	if begin < 0 {
		return "", fmt.Errorf("marker %q not found", beginMarker)
	}
	end := strings.Index(stylesheet, endMarker)
	if end < 0 {
		return "", fmt.Errorf("marker %q not found", endMarker)
	}
	if end < begin {
		return "", fmt.Errorf("marker %q appears before %q", endMarker, beginMarker)
	}

	var builder strings.Builder
	builder.WriteString(stylesheet[:begin])
	builder.WriteString(beginMarker)
	builder.WriteString("\n")
	builder.WriteString(scale)
	builder.WriteString(stylesheet[end:])
	return builder.String(), nil
}
