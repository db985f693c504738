package html

import "github.com/goliatone/go-uikit/pkg/render"

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassPage     ChromeClass = "uikit-page"
	ClassView     ChromeClass = "uikit-view"
	ClassElement  ChromeClass = "uikit-element"
	ClassChildren ChromeClass = "uikit-children"
	ClassErrors   ChromeClass = "uikit-errors"
)

// Default*Class values are applied when RenderOptions.ChromeClasses overrides are empty.
const (
	DefaultPageClass     = string(ClassPage)
	DefaultViewClass     = string(ClassView)
	DefaultElementClass  = string(ClassElement)
	DefaultChildrenClass = string(ClassChildren)
	DefaultErrorsClass   = string(ClassErrors)
)

type chromeClasses struct {
	page     string
	view     string
	element  string
	children string
	errors   string
}

func resolveChromeClasses(overrides *render.ChromeClasses) chromeClasses {
	classes := chromeClasses{
		page:     DefaultPageClass,
		view:     DefaultViewClass,
		element:  DefaultElementClass,
		children: DefaultChildrenClass,
		errors:   DefaultErrorsClass,
	}
	if overrides == nil {
		return classes
	}
	if overrides.Page != "" {
		classes.page = overrides.Page
	}
	if overrides.View != "" {
		classes.view = overrides.View
	}
	if overrides.Element != "" {
		classes.element = overrides.Element
	}
	if overrides.Children != "" {
		classes.children = overrides.Children
	}
	if overrides.Errors != "" {
		classes.errors = overrides.Errors
	}
	return classes
}
