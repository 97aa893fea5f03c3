package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goliatone/go-cruder/pkg/entity"
)

const (
	relationshipExtensionKey = "x-relationships"

	relationshipTypeAttr   = "type"
	relationshipTargetAttr = "target"
)

// Loader turns OpenAPI component schemas into entity schemas.
type Loader struct {
	options Options
}

// Options controls document loading behaviour.
type Options struct {
	// ResolveReferences allows the underlying loader to follow external $refs.
	ResolveReferences bool
}

// New returns a Loader with the supplied options.
func New(opts Options) *Loader {
	return &Loader{options: opts}
}

// LoadDocument parses raw OpenAPI 3 bytes and converts every component
// schema into an entity schema, keyed by the component name.
func (l *Loader) LoadDocument(ctx context.Context, raw []byte) (map[string]entity.Schema, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: l.options.ResolveReferences,
	}

	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return nil, fmt.Errorf("schema: validate document: %w", err)
	}

	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("schema: document defines no component schemas")
	}

	out := make(map[string]entity.Schema, len(doc.Components.Schemas))
	for name, ref := range doc.Components.Schemas {
		converted, err := convertComponent(name, ref)
		if err != nil {
			return nil, err
		}
		out[name] = converted
	}
	return out, nil
}

// Load is a convenience for pulling a single named component schema out of a
// document.
func (l *Loader) Load(ctx context.Context, raw []byte, component string) (entity.Schema, error) {
	schemas, err := l.LoadDocument(ctx, raw)
	if err != nil {
		return entity.Schema{}, err
	}
	out, ok := schemas[component]
	if !ok {
		return entity.Schema{}, fmt.Errorf("schema: component %q not found", component)
	}
	return out, nil
}

func convertComponent(name string, ref *openapi3.SchemaRef) (entity.Schema, error) {
	if ref == nil || ref.Value == nil {
		return entity.Schema{}, fmt.Errorf("schema: component %q has no value", name)
	}
	src := ref.Value

	required := make(map[string]struct{}, len(src.Required))
	for _, field := range src.Required {
		required[field] = struct{}{}
	}

	fields := make([]entity.Field, 0, len(src.Properties))
	for propName, propRef := range src.Properties {
		field, err := convertProperty(propName, propRef)
		if err != nil {
			return entity.Schema{}, fmt.Errorf("schema: component %q: %w", name, err)
		}
		if _, ok := required[propName]; ok {
			field.Required = true
		}
		fields = append(fields, field)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

	return entity.Schema{
		Name:   strings.ToLower(name),
		Fields: fields,
	}, nil
}

func convertProperty(name string, ref *openapi3.SchemaRef) (entity.Field, error) {
	if ref == nil || ref.Value == nil {
		return entity.Field{}, fmt.Errorf("property %q has no value", name)
	}
	src := ref.Value

	field := entity.Field{
		Name:     name,
		Type:     resolveType(firstSchemaType(src.Type), src.Format),
		HelpText: src.Description,
	}

	if rel := relationshipFromExtensions(src.Extensions); rel != nil {
		field.Relation = componentName(rel[relationshipTargetAttr])
		switch strings.ToLower(rel[relationshipTypeAttr]) {
		case "hasmany", "manytomany":
			field.Type = entity.TypeRelationMany
		case "reverse", "hasmanyreverse":
			field.Type = entity.TypeReverseRelation
		default:
			field.Type = entity.TypeRelation
		}
	}

	if len(src.Enum) > 0 {
		field.Choices = make([]entity.Choice, 0, len(src.Enum))
		for _, value := range src.Enum {
			text := fmt.Sprint(value)
			field.Choices = append(field.Choices, entity.Choice{
				Value: text,
				Label: entity.DefaultLabeler(text),
			})
		}
	}

	return field, nil
}

func resolveType(schemaType, format string) entity.Type {
	switch schemaType {
	case "integer":
		return entity.TypeInteger
	case "number":
		return entity.TypeDecimal
	case "boolean":
		return entity.TypeBoolean
	case "array":
		return entity.TypeRelationMany
	case "string":
		switch format {
		case "date-time":
			return entity.TypeDateTime
		case "date":
			return entity.TypeDate
		case "time":
			return entity.TypeTime
		case "email":
			return entity.TypeEmail
		case "uri", "url":
			return entity.TypeURL
		case "binary", "byte":
			return entity.TypeFile
		}
		return entity.TypeString
	}
	return entity.TypeString
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// relationshipFromExtensions normalises the x-relationships vendor extension
// into a flat string map. Both map[string]string and the decoded
// map[string]any shapes appear depending on the document source.
func relationshipFromExtensions(ext map[string]any) map[string]string {
	if len(ext) == 0 {
		return nil
	}
	raw, ok := ext[relationshipExtensionKey]
	if !ok {
		return nil
	}
	switch value := raw.(type) {
	case map[string]string:
		if len(value) == 0 {
			return nil
		}
		return value
	case map[string]any:
		out := make(map[string]string, len(value))
		for key, item := range value {
			text, ok := item.(string)
			if !ok {
				continue
			}
			out[key] = text
		}
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return nil
}

// componentName strips a "#/components/schemas/" prefix so relation targets
// read as plain entity names.
func componentName(target string) string {
	if idx := strings.LastIndex(target, "/"); idx >= 0 {
		target = target[idx+1:]
	}
	return strings.ToLower(target)
}
