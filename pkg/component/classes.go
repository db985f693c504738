package component

import "strings"

// JoinClasses joins non-empty class tokens with single spaces, trimming
// surrounding whitespace from each token.
func JoinClasses(tokens ...string) string {
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

// SanitizeClassList normalises a caller-supplied class list, dropping empty
// tokens and reserved "uikit-" chrome tokens so custom classes cannot collide
// with the kit's own markup hooks.
func SanitizeClassList(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "uikit-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}
