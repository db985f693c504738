package component

import (
	"fmt"
	"strconv"
	"strings"
)

// Spacing prop keys recognised by the Spacing decorator. Components receive
// them alongside every other prop and may ignore them.
const (
	KeySpaceTop    = "spaceTop"
	KeySpaceBottom = "spaceBottom"
)

// Props is the properties mapping passed to a component for one render pass.
// It is treated as immutable for the duration of the pass: components and
// decorators read from it but never write. Keys beyond the ones a component
// understands are opaque and travel through decorators unchanged.
type Props map[string]any

// Clone returns a shallow copy of the props. A nil receiver yields an empty,
// usable map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Has reports whether the key is present, truthy or not.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String formats the value under key with %v. Absent keys and nil values
// yield the empty string.
func (p Props) String(key string) string {
	value, ok := p[key]
	if !ok || value == nil {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// Bool reports the truthiness of the value under key.
func (p Props) Bool(key string) bool {
	return Truthy(p[key])
}

// Int extracts an integer value under key, accepting native integer kinds,
// integral floats (JSON decoding produces float64), and numeric strings.
func (p Props) Int(key string) (int, bool) {
	switch value := p[key].(type) {
	case int:
		return value, true
	case int8:
		return int(value), true
	case int16:
		return int(value), true
	case int32:
		return int(value), true
	case int64:
		return int(value), true
	case uint:
		return int(value), true
	case uint8:
		return int(value), true
	case uint16:
		return int(value), true
	case uint32:
		return int(value), true
	case uint64:
		return int(value), true
	case float32:
		if value == float32(int(value)) {
			return int(value), true
		}
	case float64:
		if value == float64(int(value)) {
			return int(value), true
		}
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// Merge returns a copy of the props with the overlay applied on top. The
// receiver is never mutated; overlay keys win on collision.
func (p Props) Merge(overlay Props) Props {
	out := p.Clone()
	for key, value := range overlay {
		out[key] = value
	}
	return out
}

// Truthy implements the inclusion predicate decorators use when deciding
// whether an optional prop participates in rendering: nil, false, empty
// strings, and numeric zero are falsy; everything else, non-empty strings
// included, is truthy.
func Truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int8:
		return v != 0
	case int16:
		return v != 0
	case int32:
		return v != 0
	case int64:
		return v != 0
	case uint:
		return v != 0
	case uint8:
		return v != 0
	case uint16:
		return v != 0
	case uint32:
		return v != 0
	case uint64:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	default:
		return true
	}
}
