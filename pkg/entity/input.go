package entity

// InputKind is the closed enumeration of HTML input categories a field can
// render as.
type InputKind string

const (
	InputText     InputKind = "text"
	InputTextarea InputKind = "textarea"
	InputEmail    InputKind = "email"
	InputURL      InputKind = "url"
	InputNumber   InputKind = "number"
	InputCheckbox InputKind = "checkbox"
	InputDate     InputKind = "date"
	InputDateTime InputKind = "datetime-local"
	InputTime     InputKind = "time"
	InputFile     InputKind = "file"
	InputSelect   InputKind = "select"
)

var inputKinds = map[Type]InputKind{
	TypeString:       InputText,
	TypeText:         InputTextarea,
	TypeEmail:        InputEmail,
	TypeURL:          InputURL,
	TypeInteger:      InputNumber,
	TypeDecimal:      InputNumber,
	TypeBoolean:      InputCheckbox,
	TypeDate:         InputDate,
	TypeDateTime:     InputDateTime,
	TypeTime:         InputTime,
	TypeFile:         InputFile,
	TypeRelation:     InputSelect,
	TypeRelationMany: InputSelect,
}

// ResolveInput maps a field's declared type to the input category it renders
// as. A boolean field carrying an explicit choice set renders as a select
// rather than a checkbox; unrecognised types fall back to a text input. The
// mapping is total: it never fails.
func ResolveInput(field Field) InputKind {
	if field.Type == TypeBoolean && len(field.Choices) > 0 {
		return InputSelect
	}
	if kind, ok := inputKinds[field.Type]; ok {
		return kind
	}
	return InputText
}
