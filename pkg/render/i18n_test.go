package render_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-uikit/pkg/component"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/view"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestLocalizeDocument_UsesKeysAndFallbacks(t *testing.T) {
	doc := view.Document{
		Name:     "login",
		Title:    "Sign in",
		TitleKey: "views.login.title",
		Elements: []view.Element{
			{
				Component: "input",
				Props: component.Props{
					"label":          "Email",
					"labelKey":       "fields.email",
					"placeholder":    "you@example.com",
					"placeholderKey": "fields.email.placeholder",
				},
				Children: []view.Element{
					{Component: "text", Props: component.Props{"textKey": "fields.email.hint"}},
				},
			},
		},
	}

	render.LocalizeDocument(&doc, render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{"fields.email": "Correo"},
	})

	if doc.Title != "Sign in" {
		t.Fatalf("expected title to fall back when missing, got %q", doc.Title)
	}
	if got := doc.Elements[0].Props.String("label"); got != "Correo" {
		t.Fatalf("expected translated label, got %q", got)
	}
	if got := doc.Elements[0].Props.String("placeholder"); got != "you@example.com" {
		t.Fatalf("expected placeholder to fall back, got %q", got)
	}
	if got := doc.Elements[0].Children[0].Props.String("text"); got != "fields.email.hint" {
		t.Fatalf("expected key itself when no fallback exists, got %q", got)
	}
}

func TestLocalizeDocument_NoTranslatorKeepsFallbacks(t *testing.T) {
	doc := view.Document{
		Name: "login",
		Elements: []view.Element{
			{Component: "button", Props: component.Props{"label": "Save", "labelKey": "buttons.save"}},
		},
	}

	render.LocalizeDocument(&doc, render.RenderOptions{Locale: "en"})

	if got := doc.Elements[0].Props.String("label"); got != "Save" {
		t.Fatalf("expected fallback without translator, got %q", got)
	}
}

func TestLocalizeDocument_OnMissingHandler(t *testing.T) {
	doc := view.Document{
		Name: "login",
		Elements: []view.Element{
			{Component: "button", Props: component.Props{"labelKey": "buttons.save"}},
		},
	}

	render.LocalizeDocument(&doc, render.RenderOptions{
		Locale:     "en",
		Translator: stubTranslator{},
		OnMissing: func(_ string, key string, _ []any, _ error) string {
			return "??" + key + "??"
		},
	})

	if got := doc.Elements[0].Props.String("label"); got != "??buttons.save??" {
		t.Fatalf("expected custom missing handler output, got %q", got)
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(stubTranslator{"buttons.save": "Guardar"}, render.TemplateI18nConfig{})

	translate, ok := funcs["translate"].(func(any, string, ...any) string)
	if !ok {
		t.Fatalf("translate helper has unexpected type %T", funcs["translate"])
	}
	if got := translate("es", "buttons.save"); got != "Guardar" {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := translate(map[string]any{"locale": "es"}, "buttons.save"); got != "Guardar" {
		t.Fatalf("expected locale read from context map, got %q", got)
	}
	if got := translate("es", "buttons.cancel", map[string]any{"default": "Cancel"}); got != "Cancel" {
		t.Fatalf("expected default param for missing key, got %q", got)
	}

	currentLocale, ok := funcs["current_locale"].(func(any) string)
	if !ok {
		t.Fatalf("current_locale helper has unexpected type %T", funcs["current_locale"])
	}
	if got := currentLocale(map[string]any{"locale": "es-MX"}); got != "es-MX" {
		t.Fatalf("unexpected locale %q", got)
	}
	if got := currentLocale(42); got != "" {
		t.Fatalf("expected empty locale for non-context value, got %q", got)
	}
}

func TestTemplateI18nFilter(t *testing.T) {
	filter := render.TemplateI18nFilter(stubTranslator{"footer.legal": "Aviso legal"}, render.TemplateI18nConfig{})

	got, err := filter("footer.legal", "es")
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if got != "Aviso legal" {
		t.Fatalf("unexpected translation %q", got)
	}

	got, err = filter("footer.missing", map[string]any{"locale": "es"})
	if err != nil {
		t.Fatalf("filter on missing key: %v", err)
	}
	if got != "footer.missing" {
		t.Fatalf("missing key should fall back to the key itself, got %q", got)
	}
}
