package forms

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/source"
)

// ValidationErrors maps field names to validation messages. A non-empty map
// is a normal submission outcome, not a transport error: the caller re-renders
// the form with the messages inline.
type ValidationErrors map[string][]string

// Any reports whether at least one field failed validation.
func (v ValidationErrors) Any() bool { return len(v) > 0 }

func (v ValidationErrors) add(field, message string) {
	v[field] = append(v[field], message)
}

// ParseRecord decodes a submitted form back into a record using the schema's
// form fields. Blank optional values are omitted; required blanks and
// malformed numbers/timestamps produce validation errors.
func ParseRecord(schema entity.Schema, values url.Values, exclude ...string) (source.Record, ValidationErrors) {
	record := make(source.Record)
	verrs := make(ValidationErrors)

	for _, field := range schema.FormFields(exclude...) {
		raw := strings.TrimSpace(values.Get(field.Name))

		if entity.ResolveInput(field) == entity.InputCheckbox {
			// Unchecked checkboxes are absent from the submission.
			record[field.Name] = parseBool(raw)
			continue
		}

		if raw == "" {
			if field.Required {
				verrs.add(field.Name, fmt.Sprintf("%s is required.", field.DisplayLabel()))
				continue
			}
			// A blank field that was part of the submission clears the
			// stored value; one that never appeared stays untouched.
			if values.Has(field.Name) {
				record[field.Name] = blankValue(field)
			}
			continue
		}

		parsed, err := parseValue(field, raw)
		if err != nil {
			verrs.add(field.Name, err.Error())
			continue
		}
		record[field.Name] = parsed
	}

	return record, verrs
}

func parseValue(field entity.Field, raw string) (any, error) {
	switch field.Type {
	case entity.TypeBoolean:
		return parseBool(raw), nil
	case entity.TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a whole number.", field.DisplayLabel())
		}
		return n, nil
	case entity.TypeDecimal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be a number.", field.DisplayLabel())
		}
		return f, nil
	case entity.TypeDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a valid date.", field.DisplayLabel())
		}
		return t, nil
	case entity.TypeDateTime:
		for _, layout := range []string{"2006-01-02T15:04", entity.TimestampLayout, time.RFC3339} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return nil, fmt.Errorf("%s must be a valid date and time.", field.DisplayLabel())
	default:
		return raw, nil
	}
}

// blankValue is what a cleared field stores: the empty string for text-like
// fields, nil for everything typed.
func blankValue(field entity.Field) any {
	switch field.Type {
	case entity.TypeString, entity.TypeText, entity.TypeEmail, entity.TypeURL:
		return ""
	}
	return nil
}

// parseBool accepts the spellings browsers and the tri-state select produce.
func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}
