package entity

import (
	"fmt"
	"time"
)

// TimestampLayout is the display layout for date and datetime values in list
// and detail views.
const TimestampLayout = "2006-01-02 15:04"

// EmptyPlaceholder stands in for nil or unreadable values.
const EmptyPlaceholder = "-"

// FormatValue stringifies a record value for display: timestamps use
// TimestampLayout, booleans render as Yes/No, nil renders as the placeholder.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return EmptyPlaceholder
	case time.Time:
		if v.IsZero() {
			return EmptyPlaceholder
		}
		return v.Format(TimestampLayout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return EmptyPlaceholder
		}
		return v.Format(TimestampLayout)
	case bool:
		if v {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprint(v)
	}
}

// Control value layouts. Browsers reject date and datetime-local values in
// any other shape.
const (
	dateControlLayout     = "2006-01-02"
	dateTimeControlLayout = "2006-01-02T15:04"
	timeControlLayout     = "15:04"
)

// FormatControl stringifies a record value for a specific field's form
// control: temporal values use the wire layout the field's input kind
// requires, everything else formats like FormatInput.
func FormatControl(field Field, value any) string {
	t, ok := timeValue(value)
	if !ok {
		return FormatInput(value)
	}
	if t.IsZero() {
		return ""
	}
	switch ResolveInput(field) {
	case InputDate:
		return t.Format(dateControlLayout)
	case InputDateTime:
		return t.Format(dateTimeControlLayout)
	case InputTime:
		return t.Format(timeControlLayout)
	}
	return FormatInput(value)
}

func timeValue(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, true
		}
		return *v, true
	}
	return time.Time{}, false
}

// FormatInput stringifies a record value for use inside a form control. Nil
// and zero timestamps become the empty string, booleans keep their Go
// spelling so selects can match option values.
func FormatInput(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(TimestampLayout)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return v.Format(TimestampLayout)
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprint(v)
	}
}
