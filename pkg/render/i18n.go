package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-uikit/pkg/view"
)

// ErrMissingTranslator signals that a *Key prop was present but no translator
// was configured on the render options.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves message keys into localized strings. Implementations
// decide how params are interpolated.
type Translator interface {
	Translate(locale, key string, params ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, params ...any) (string, error)

// Translate delegates to the underlying function.
func (fn TranslatorFunc) Translate(locale, key string, params ...any) (string, error) {
	return fn(locale, key, params...)
}

// MissingTranslationHandler produces the string rendered when a translation
// cannot be resolved.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	for _, param := range params {
		values, ok := param.(map[string]any)
		if !ok {
			continue
		}
		if fallback := strings.TrimSpace(anyToString(values["default"])); fallback != "" {
			return fallback
		}
	}
	return key
}

// Prop keys holding message keys, mapped to the prop each one localizes.
var propKeyHints = map[string]string{
	"labelKey":       "label",
	"textKey":        "text",
	"placeholderKey": "placeholder",
	"altKey":         "alt",
}

// LocalizeDocument mutates the supplied document in place, translating the
// document's titleKey and any *Key props on its elements into localized
// values.
//
// This is best-effort: translation failures are routed through opts.OnMissing
// and never abort rendering. Callers that need the original document intact
// should pass a clone.
func LocalizeDocument(doc *view.Document, opts RenderOptions) {
	if doc == nil {
		return
	}

	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}

	if key := strings.TrimSpace(doc.TitleKey); key != "" {
		doc.Title = translate(opts.Locale, key, strings.TrimSpace(doc.Title), opts.Translator, onMissing)
	}

	for i := range doc.Elements {
		localizeElement(&doc.Elements[i], opts.Locale, opts.Translator, onMissing)
	}
}

func localizeElement(element *view.Element, locale string, t Translator, onMissing MissingTranslationHandler) {
	if element == nil {
		return
	}

	if len(element.Props) > 0 {
		for hint, target := range propKeyHints {
			key := strings.TrimSpace(element.Props.String(hint))
			if key == "" {
				continue
			}
			fallback := strings.TrimSpace(element.Props.String(target))
			element.Props[target] = translate(locale, key, fallback, t, onMissing)
		}
	}

	for i := range element.Children {
		localizeElement(&element.Children[i], locale, t, onMissing)
	}
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

func anyToString(value any) string {
	if value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprint(value)
}
