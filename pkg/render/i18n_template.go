package render

import (
	"fmt"
	"strings"
)

// TemplateI18nConfig configures template-level translation helpers for
// callers that build their own page shells.
type TemplateI18nConfig struct {
	// LocaleKey selects the map key used to infer the locale when template
	// data passes a context map instead of a raw locale string.
	LocaleKey string
	// FuncName customizes the translator helper name (defaults to "translate").
	FuncName string
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

func (cfg TemplateI18nConfig) localeKey() string {
	if key := strings.TrimSpace(cfg.LocaleKey); key != "" {
		return key
	}
	return "locale"
}

func (cfg TemplateI18nConfig) funcName() string {
	if name := strings.TrimSpace(cfg.FuncName); name != "" {
		return name
	}
	return "translate"
}

func (cfg TemplateI18nConfig) onMissing() MissingTranslationHandler {
	if cfg.OnMissing != nil {
		return cfg.OnMissing
	}
	return missingTranslationDefault
}

// TemplateI18nFuncs returns helper functions for injection into a page-shell
// engine (via gotemplate.WithTemplateFunc), so custom shells can localize
// their own chrome strings:
//
//	{{ translate(locale, "footer.legal") }}
//
// The locale argument is either a locale string or a context map carrying the
// locale under cfg.LocaleKey. Missing translations resolve through
// cfg.OnMissing and never fail the render.
func TemplateI18nFuncs(t Translator, cfg TemplateI18nConfig) map[string]any {
	localeKey := cfg.localeKey()
	onMissing := cfg.onMissing()

	return map[string]any{
		cfg.funcName(): func(localeSrc any, key string, params ...any) string {
			return translateForTemplate(t, onMissing, localeFrom(localeSrc, localeKey), key, params)
		},
		"current_locale": func(localeSrc any) string {
			return localeFrom(localeSrc, localeKey)
		},
	}
}

// TemplateI18nFilter adapts the same lookup to the TemplateRenderer filter
// seam (RegisterFilter), where the piped value is the message key and the
// filter parameter is the locale source:
//
//	{{ "footer.legal"|translate:locale }}
func TemplateI18nFilter(t Translator, cfg TemplateI18nConfig) func(input any, param any) (any, error) {
	localeKey := cfg.localeKey()
	onMissing := cfg.onMissing()

	return func(input any, param any) (any, error) {
		key := ""
		if input != nil {
			key = fmt.Sprint(input)
		}
		return translateForTemplate(t, onMissing, localeFrom(param, localeKey), key, nil), nil
	}
}

func translateForTemplate(t Translator, onMissing MissingTranslationHandler, locale, key string, params []any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}
	msg, err := t.Translate(locale, key, params...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(locale, key, params, err)
	}
	return msg
}

// localeFrom reads a locale out of a template value. The page-shell engine
// normalizes all context data through a JSON round-trip, so locale sources
// arrive as strings or map[string]any; other shapes resolve to "".
func localeFrom(src any, key string) string {
	switch value := src.(type) {
	case nil:
		return ""
	case string:
		return value
	case map[string]any:
		nested, ok := value[key]
		if !ok || nested == nil {
			return ""
		}
		if str, ok := nested.(string); ok {
			return str
		}
		return strings.TrimSpace(fmt.Sprint(nested))
	default:
		return ""
	}
}
