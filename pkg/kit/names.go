package kit

// Canonical component names used by the default registry and renderers.
const (
	NameText     = "text"
	NameHeading  = "heading"
	NameInput    = "input"
	NameTextarea = "textarea"
	NameSelect   = "select"
	NameCheckbox = "checkbox"
	NameButton   = "button"
	NameBadge    = "badge"
	NameImage    = "image"
	NameIcon     = "icon"

	// NameField is the generic placeholder view documents may use; the
	// widgets registry resolves it to a concrete component before rendering.
	NameField = "field"
)

// Common prop keys the built-in components understand. Documents are free to
// carry additional keys; components ignore what they do not know.
const (
	PropLabel       = "label"
	PropText        = "text"
	PropValue       = "value"
	PropPlaceholder = "placeholder"
	PropName        = "name"
	PropID          = "id"
	PropType        = "type"
	PropVariant     = "variant"
	PropLevel       = "level"
	PropHref        = "href"
	PropSrc         = "src"
	PropAlt         = "alt"
	PropOptions     = "options"
	PropMultiline   = "multiline"
	PropDisabled    = "disabled"
	PropRequired    = "required"
	PropChecked     = "checked"
	PropRows        = "rows"
	PropIcon        = "icon"
	PropClass       = "class"
	PropWidget      = "widget"
)
