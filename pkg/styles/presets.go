package styles

// DefaultProfile is the neutral preset: every role resolves to the empty
// string, leaving markup unclassed for hosts that style by element.
func DefaultProfile() Profile {
	return NewProfile("default", nil, nil, nil)
}

// BootstrapProfile is the Bootstrap 5 preset.
func BootstrapProfile() Profile {
	return NewProfile("bootstrap",
		map[string]string{
			RoleForm:     "needs-validation",
			RoleField:    "mb-3",
			RoleLabel:    "form-label",
			RoleInput:    "form-control",
			RoleTextarea: "form-control",
			RoleSelect:   "form-select",
			RoleCheckbox: "form-check-input",
			RoleRadio:    "form-check-input",
			RoleSubmit:   "btn btn-primary",
			RoleError:    "invalid-feedback",
			RoleHelpText: "form-text text-muted",
		},
		map[string]string{
			RoleTable:           "table table-dark table-striped table-hover",
			RoleTableResponsive: "table-responsive",
			RoleActions:         "text-end",
		},
		map[string]string{
			ButtonPrimary:   "btn btn-primary",
			ButtonSecondary: "btn btn-secondary",
			ButtonSuccess:   "btn btn-success",
			ButtonDanger:    "btn btn-danger",
			ButtonWarning:   "btn btn-warning",
			ButtonInfo:      "btn btn-info",
			ButtonLight:     "btn btn-light",
			ButtonDark:      "btn btn-dark",
		},
	)
}

// BulmaProfile is the Bulma preset.
func BulmaProfile() Profile {
	return NewProfile("bulma",
		map[string]string{
			RoleField:    "field",
			RoleLabel:    "label",
			RoleInput:    "input",
			RoleTextarea: "textarea",
			RoleSelect:   "select",
			RoleCheckbox: "checkbox",
			RoleRadio:    "radio",
			RoleSubmit:   "button is-primary",
			RoleError:    "help is-danger",
			RoleHelpText: "help",
		},
		map[string]string{
			RoleTable:   "table is-striped is-hoverable is-fullwidth",
			RoleActions: "has-text-right",
		},
		map[string]string{
			ButtonPrimary:   "button is-primary",
			ButtonSecondary: "button",
			ButtonSuccess:   "button is-success",
			ButtonDanger:    "button is-danger",
			ButtonWarning:   "button is-warning",
			ButtonInfo:      "button is-info",
			ButtonLight:     "button is-light",
			ButtonDark:      "button is-dark",
		},
	)
}
