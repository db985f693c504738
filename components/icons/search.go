package icons

import (
	"sort"
	"strings"
)

func Search(icons []Icon, query string, limit int, opts Options) []Icon {
	limit = clampLimit(limit, opts)
	if limit == 0 {
		return nil
	}

	query = strings.TrimSpace(query)
	if query == "" {
		if opts.EmptySearchMode == EmptySearchTop {
			if len(icons) <= limit {
				return append([]Icon{}, icons...)
			}
			return append([]Icon{}, icons[:limit]...)
		}
		return nil
	}

	q := strings.ToLower(query)
	matches := make([]matchedIcon, 0, 32)
	for _, icon := range icons {
		lowerName := strings.ToLower(icon.Name)
		if !strings.Contains(lowerName, q) {
			continue
		}
		matches = append(matches, matchedIcon{
			icon:     icon,
			isPrefix: strings.HasPrefix(lowerName, q),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].isPrefix != matches[j].isPrefix {
			return matches[i].isPrefix
		}
		return matches[i].icon.Name < matches[j].icon.Name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]Icon, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.icon)
	}
	return out
}

func SearchOptions(icons []Icon, query string, limit int, opts Options) []Option {
	results := Search(icons, query, limit, opts)
	if len(results) == 0 {
		return nil
	}

	out := make([]Option, 0, len(results))
	for _, icon := range results {
		out = append(out, Option{Value: icon.Name, Label: icon.Name})
	}
	return out
}

// Option is the JSON shape pickers consume: one selectable entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type matchedIcon struct {
	icon     Icon
	isPrefix bool
}
