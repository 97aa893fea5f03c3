// Package styles holds the presentational class-name bundles the renderers
// consult. A profile is a typed, immutable mapping from element role to CSS
// class string; lookups for unknown roles return the empty string so a
// renderer never fails on a missing entry.
package styles

import "strings"

// Form element roles.
const (
	RoleForm     = "form"
	RoleField    = "field"
	RoleLabel    = "label"
	RoleInput    = "input"
	RoleTextarea = "textarea"
	RoleSelect   = "select"
	RoleCheckbox = "checkbox"
	RoleRadio    = "radio"
	RoleSubmit   = "submit"
	RoleError    = "error"
	RoleHelpText = "help_text"
)

// Table element roles.
const (
	RoleTable           = "table"
	RoleTableResponsive = "table_responsive"
	RoleTHead           = "thead"
	RoleTBody           = "tbody"
	RoleTR              = "tr"
	RoleTH              = "th"
	RoleTD              = "td"
	RoleActions         = "actions"
)

// Button variants.
const (
	ButtonPrimary   = "primary"
	ButtonSecondary = "secondary"
	ButtonSuccess   = "success"
	ButtonDanger    = "danger"
	ButtonWarning   = "warning"
	ButtonInfo      = "info"
	ButtonLight     = "light"
	ButtonDark      = "dark"
)

// Profile is a named, immutable bundle of class strings for form elements,
// table elements, and buttons.
type Profile struct {
	name   string
	form   map[string]string
	table  map[string]string
	button map[string]string
}

// NewProfile builds a profile from role->class maps. The maps are copied so
// later caller mutation cannot leak into the profile.
func NewProfile(name string, form, table, button map[string]string) Profile {
	return Profile{
		name:   strings.TrimSpace(name),
		form:   cloneClassMap(form),
		table:  cloneClassMap(table),
		button: cloneClassMap(button),
	}
}

// Name returns the profile's registry name.
func (p Profile) Name() string { return p.name }

// Form resolves the class string for a form element role.
func (p Profile) Form(role string) string { return p.form[role] }

// Table resolves the class string for a table element role.
func (p Profile) Table(role string) string { return p.table[role] }

// Button resolves the class string for a button variant.
func (p Profile) Button(variant string) string { return p.button[variant] }

func cloneClassMap(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for key, value := range src {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		out[key] = value
	}
	return out
}
