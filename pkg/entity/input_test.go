package entity

import "testing"

func TestResolveInputTable(t *testing.T) {
	cases := []struct {
		fieldType Type
		want      InputKind
	}{
		{TypeString, InputText},
		{TypeText, InputTextarea},
		{TypeEmail, InputEmail},
		{TypeURL, InputURL},
		{TypeInteger, InputNumber},
		{TypeDecimal, InputNumber},
		{TypeBoolean, InputCheckbox},
		{TypeDate, InputDate},
		{TypeDateTime, InputDateTime},
		{TypeTime, InputTime},
		{TypeFile, InputFile},
		{TypeRelation, InputSelect},
		{TypeRelationMany, InputSelect},
	}

	for _, tc := range cases {
		got := ResolveInput(Field{Name: "f", Type: tc.fieldType})
		if got != tc.want {
			t.Fatalf("ResolveInput(%s): want %s, got %s", tc.fieldType, tc.want, got)
		}
	}
}

func TestResolveInputBooleanWithChoicesIsSelect(t *testing.T) {
	field := Field{
		Name: "active_client",
		Type: TypeBoolean,
		Choices: []Choice{
			{Value: "True", Label: "Yes"},
			{Value: "False", Label: "No"},
		},
	}
	if got := ResolveInput(field); got != InputSelect {
		t.Fatalf("boolean with choices should resolve to select, got %s", got)
	}

	// Required, labelled, help text: none of it changes the outcome.
	field.Required = true
	field.Label = "Active?"
	field.HelpText = "toggle"
	if got := ResolveInput(field); got != InputSelect {
		t.Fatalf("boolean with choices and extra attributes should still resolve to select, got %s", got)
	}
}

func TestResolveInputUnknownTypeDefaultsToText(t *testing.T) {
	if got := ResolveInput(Field{Name: "f", Type: Type("uuid")}); got != InputText {
		t.Fatalf("unknown type should default to text, got %s", got)
	}
}
