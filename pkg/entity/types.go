package entity

import "strings"

// Type is the simplified enum for the semantic kinds a persisted field can
// declare. It is the universe the input resolver is total over.
type Type string

const (
	TypeString          Type = "string"
	TypeText            Type = "text"
	TypeEmail           Type = "email"
	TypeURL             Type = "url"
	TypeInteger         Type = "integer"
	TypeDecimal         Type = "decimal"
	TypeBoolean         Type = "boolean"
	TypeDate            Type = "date"
	TypeDateTime        Type = "datetime"
	TypeTime            Type = "time"
	TypeFile            Type = "file"
	TypeRelation        Type = "relation"
	TypeRelationMany    Type = "relation-many"
	TypeReverseRelation Type = "reverse-relation"
)

// Choice is one entry of a field's discrete value set.
type Choice struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Field describes a named, typed attribute of an entity. Struct fields are
// annotated so schemas can be serialised directly when needed.
type Field struct {
	Name     string   `json:"name" yaml:"name"`
	Type     Type     `json:"type" yaml:"type"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Required bool     `json:"required" yaml:"required"`
	HelpText string   `json:"helpText,omitempty" yaml:"help_text,omitempty"`
	Choices  []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
	// Relation names the target entity for relation-kind fields.
	Relation string `json:"relation,omitempty" yaml:"relation,omitempty"`
}

// DisplayLabel returns the declared label, deriving one from the field name
// when none was declared.
func (f Field) DisplayLabel() string {
	if strings.TrimSpace(f.Label) != "" {
		return f.Label
	}
	return DefaultLabeler(f.Name)
}

// Schema describes an entity type: its naming plus the ordered field list.
type Schema struct {
	Name     string  `json:"name" yaml:"name"`
	Singular string  `json:"singular,omitempty" yaml:"singular,omitempty"`
	Plural   string  `json:"plural,omitempty" yaml:"plural,omitempty"`
	Fields   []Field `json:"fields" yaml:"fields"`
}

// defaultFormExclusions are dropped from generated forms unless the caller
// opts back in: the identifier and bookkeeping timestamps are owned by the
// persistence layer.
var defaultFormExclusions = []string{"id", "created_at", "updated_at"}

// SingularLabel returns the declared singular noun or a humanised schema name.
func (s Schema) SingularLabel() string {
	if strings.TrimSpace(s.Singular) != "" {
		return s.Singular
	}
	return DefaultLabeler(s.Name)
}

// PluralLabel returns the declared plural noun, falling back to a naive "s"
// suffix on the singular.
func (s Schema) PluralLabel() string {
	if strings.TrimSpace(s.Plural) != "" {
		return s.Plural
	}
	label := s.SingularLabel()
	if label == "" {
		return ""
	}
	if strings.HasSuffix(strings.ToLower(label), "s") {
		return label
	}
	return label + "s"
}

// FieldByName looks a field up by exact name.
func (s Schema) FieldByName(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// VisibleFields lists the fields shown in list and detail views: everything
// except the identifier and reverse-relation collections.
func (s Schema) VisibleFields() []Field {
	out := make([]Field, 0, len(s.Fields))
	for _, field := range s.Fields {
		if field.Name == "id" || field.Type == TypeReverseRelation {
			continue
		}
		out = append(out, field)
	}
	return out
}

// FormFields lists the fields a generated form includes: the schema's fields
// minus the default exclusions and any caller-supplied exclusions.
func (s Schema) FormFields(exclude ...string) []Field {
	skip := make(map[string]struct{}, len(exclude)+len(defaultFormExclusions))
	for _, name := range defaultFormExclusions {
		skip[name] = struct{}{}
	}
	for _, name := range exclude {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		skip[name] = struct{}{}
	}

	out := make([]Field, 0, len(s.Fields))
	for _, field := range s.Fields {
		if _, excluded := skip[field.Name]; excluded {
			continue
		}
		if field.Type == TypeReverseRelation {
			continue
		}
		out = append(out, field)
	}
	return out
}
