package forms

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-cruder/pkg/styles"
)

// DefaultCSRFField is the hidden input name used when the caller does not
// override it.
const DefaultCSRFField = "csrf_token"

// CSRFPlaceholder is the marker value emitted for the CSRF hidden input. The
// renderer never mints tokens; the host framework substitutes the marker when
// it assembles the page.
const CSRFPlaceholder = "{{ csrf_token }}"

// HiddenField represents a hidden form input emitted alongside the visible
// fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying a concrete token for hosts
// that resolve tokens before rendering instead of substituting the marker.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// Options carries the per-render inputs for a form.
type Options struct {
	// Action is the form submission URL.
	Action string
	// Method is the HTTP method; empty defaults to POST. POST forms receive
	// the CSRF hidden input automatically.
	Method string
	// Exclude lists field names dropped in addition to the default
	// exclusions (id, created_at, updated_at).
	Exclude []string
	// Profile supplies the class strings for every element role.
	Profile styles.Profile
	// Errors carries server-side validation messages keyed by field name,
	// rendered inline under the offending control.
	Errors map[string][]string
	// CSRFField overrides the hidden CSRF input name.
	CSRFField string
	// CancelURL is the cancel link target; empty defaults to "#".
	CancelURL string
	// Hidden appends extra hidden inputs after the CSRF field.
	Hidden []HiddenField
}

func (o Options) method() string {
	method := strings.ToUpper(strings.TrimSpace(o.Method))
	if method == "" {
		return "POST"
	}
	return method
}

func (o Options) csrfField() string {
	if strings.TrimSpace(o.CSRFField) == "" {
		return DefaultCSRFField
	}
	return strings.TrimSpace(o.CSRFField)
}

func (o Options) cancelURL() string {
	if strings.TrimSpace(o.CancelURL) == "" {
		return "#"
	}
	return o.CancelURL
}

// sortedHidden normalises hidden fields for deterministic rendering. Empty
// names are dropped; later duplicates win.
func sortedHidden(fields []HiddenField) []HiddenField {
	if len(fields) == 0 {
		return nil
	}

	byName := make(map[string]string, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		byName[name] = field.Value
	}
	if len(byName) == 0 {
		return nil
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: name, Value: byName[name]})
	}
	return out
}
