// Package forms renders create/edit forms for an entity schema and decodes
// the resulting submissions. Rendering is a pure function of its inputs; it
// never touches the persistence layer.
package forms

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/source"
	"github.com/goliatone/go-cruder/pkg/styles"
)

// Render produces the HTML form fragment for schema. A nil record renders a
// create form with empty controls; a present record pre-populates controls
// and switches the submit label to "Update". Fields that fail to build are
// omitted rather than failing the whole form.
func Render(schema entity.Schema, record source.Record, opts Options) string {
	var b strings.Builder
	b.Grow(1024)

	b.WriteString(`<form action="`)
	b.WriteString(html.EscapeString(opts.Action))
	b.WriteString(`" method="`)
	b.WriteString(html.EscapeString(opts.method()))
	b.WriteString(`"`)
	writeClassAttr(&b, opts.Profile.Form(styles.RoleForm))
	b.WriteString(" novalidate>\n")

	for _, hidden := range hiddenInputs(opts) {
		b.WriteString(`  <input type="hidden" name="`)
		b.WriteString(html.EscapeString(hidden.Name))
		b.WriteString(`" value="`)
		b.WriteString(html.EscapeString(hidden.Value))
		b.WriteString("\">\n")
	}

	for _, field := range schema.FormFields(opts.Exclude...) {
		block, err := buildFieldBlock(field, record, opts)
		if err != nil {
			continue
		}
		b.WriteString(block)
	}

	b.WriteString("  <div>\n")
	b.WriteString(`    <button type="submit"`)
	writeClassAttr(&b, opts.Profile.Form(styles.RoleSubmit))
	b.WriteString(">")
	if record != nil {
		b.WriteString("Update")
	} else {
		b.WriteString("Create")
	}
	b.WriteString("</button>\n")
	b.WriteString(`    <a href="`)
	b.WriteString(html.EscapeString(opts.cancelURL()))
	b.WriteString(`"`)
	writeClassAttr(&b, opts.Profile.Button(styles.ButtonSecondary))
	b.WriteString(">Cancel</a>\n")
	b.WriteString("  </div>\n")
	b.WriteString("</form>\n")
	return b.String()
}

func hiddenInputs(opts Options) []HiddenField {
	fields := make([]HiddenField, 0, len(opts.Hidden)+1)
	if opts.method() == "POST" {
		fields = append(fields, HiddenField{Name: opts.csrfField(), Value: CSRFPlaceholder})
	}
	fields = append(fields, opts.Hidden...)
	return sortedHidden(fields)
}

func buildFieldBlock(field entity.Field, record source.Record, opts Options) (string, error) {
	if strings.TrimSpace(field.Name) == "" {
		return "", fmt.Errorf("forms: field without a name")
	}

	value := ""
	if record != nil {
		if raw, ok := record.Get(field.Name); ok {
			value = entity.FormatControl(field, raw)
		}
	}

	kind := entity.ResolveInput(field)
	control := buildControl(field, kind, value, opts.Profile)

	var b strings.Builder
	b.Grow(len(control) + 256)

	b.WriteString("  <div")
	writeClassAttr(&b, opts.Profile.Form(styles.RoleField))
	b.WriteString(">\n")

	// Checkbox controls inline their own label.
	if kind != entity.InputCheckbox {
		b.WriteString(`    <label for="`)
		b.WriteString(controlID(field.Name))
		b.WriteString(`"`)
		writeClassAttr(&b, opts.Profile.Form(styles.RoleLabel))
		b.WriteString(">")
		b.WriteString(html.EscapeString(field.DisplayLabel()))
		b.WriteString("</label>\n")
	}

	for _, line := range strings.Split(control, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString("    ")
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if help := strings.TrimSpace(field.HelpText); help != "" {
		b.WriteString(`    <div`)
		writeClassAttr(&b, opts.Profile.Form(styles.RoleHelpText))
		b.WriteString(">")
		b.WriteString(html.EscapeString(help))
		b.WriteString("</div>\n")
	}

	if messages := opts.Errors[field.Name]; len(messages) > 0 {
		b.WriteString(`    <div`)
		writeClassAttr(&b, opts.Profile.Form(styles.RoleError))
		b.WriteString(">")
		b.WriteString(html.EscapeString(strings.Join(messages, " ")))
		b.WriteString("</div>\n")
	}

	b.WriteString("  </div>\n")
	return b.String(), nil
}

func buildControl(field entity.Field, kind entity.InputKind, value string, profile styles.Profile) string {
	switch kind {
	case entity.InputTextarea:
		return buildTextarea(field, value, profile)
	case entity.InputSelect:
		return buildSelect(field, value, profile)
	case entity.InputCheckbox:
		return buildCheckbox(field, value, profile)
	default:
		return buildInput(field, kind, value, profile)
	}
}

func buildInput(field entity.Field, kind entity.InputKind, value string, profile styles.Profile) string {
	var b strings.Builder
	b.WriteString(`<input type="`)
	b.WriteString(string(kind))
	b.WriteString(`"`)
	writeClassAttr(&b, profile.Form(styles.RoleInput))
	writeNameID(&b, field.Name)
	// File inputs never replay a stored value.
	if kind != entity.InputFile {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}
	if field.Required {
		b.WriteString(" required")
	}
	b.WriteString(">")
	return b.String()
}

func buildTextarea(field entity.Field, value string, profile styles.Profile) string {
	var b strings.Builder
	b.WriteString("<textarea")
	writeClassAttr(&b, profile.Form(styles.RoleTextarea))
	writeNameID(&b, field.Name)
	if field.Required {
		b.WriteString(" required")
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(value))
	b.WriteString("</textarea>")
	return b.String()
}

// triStateChoices is the option set for boolean selects such as the
// "active_client" exception: an unset placeholder plus explicit Yes/No.
var triStateChoices = []entity.Choice{
	{Value: "", Label: "Choose..."},
	{Value: "True", Label: "Yes"},
	{Value: "False", Label: "No"},
}

func buildSelect(field entity.Field, value string, profile styles.Profile) string {
	choices := field.Choices
	switch {
	case field.Name == "active_client" && field.Type == entity.TypeBoolean:
		choices = triStateChoices
	case len(choices) == 0:
		choices = []entity.Choice{{Value: "", Label: "Choose..."}}
	}

	var b strings.Builder
	b.WriteString("<select")
	writeClassAttr(&b, profile.Form(styles.RoleSelect))
	writeNameID(&b, field.Name)
	if field.Required {
		b.WriteString(" required")
	}
	b.WriteString(">\n")
	for _, choice := range choices {
		b.WriteString(`  <option value="`)
		b.WriteString(html.EscapeString(choice.Value))
		b.WriteString(`"`)
		if choice.Value != "" && choice.Value == value {
			b.WriteString(" selected")
		}
		b.WriteString(">")
		b.WriteString(html.EscapeString(choice.Label))
		b.WriteString("</option>\n")
	}
	b.WriteString("</select>")
	return b.String()
}

func buildCheckbox(field entity.Field, value string, profile styles.Profile) string {
	var b strings.Builder
	b.WriteString("<label>")
	b.WriteString(`<input type="checkbox"`)
	writeClassAttr(&b, profile.Form(styles.RoleCheckbox))
	writeNameID(&b, field.Name)
	if value == "True" {
		b.WriteString(" checked")
	}
	b.WriteString("> ")
	b.WriteString(html.EscapeString(field.DisplayLabel()))
	b.WriteString("</label>")
	return b.String()
}

func controlID(name string) string {
	return "id_" + html.EscapeString(name)
}

func writeNameID(b *strings.Builder, name string) {
	b.WriteString(` name="`)
	b.WriteString(html.EscapeString(name))
	b.WriteString(`" id="`)
	b.WriteString(controlID(name))
	b.WriteString(`"`)
}

func writeClassAttr(b *strings.Builder, class string) {
	if strings.TrimSpace(class) == "" {
		return
	}
	b.WriteString(` class="`)
	b.WriteString(html.EscapeString(class))
	b.WriteString(`"`)
}
