package source

import (
	"strings"

	"github.com/goliatone/go-cruder/pkg/entity"
)

// SearchSpec pairs an ordered field list with a single free-text query. A
// record matches when ANY listed field's value contains the query
// case-insensitively.
type SearchSpec struct {
	Fields []string
	Query  string
}

// Enabled reports whether the spec carries both fields and a non-empty query.
func (s SearchSpec) Enabled() bool {
	return len(s.Fields) > 0 && strings.TrimSpace(s.Query) != ""
}

// Filter applies the spec to records, preserving order. A disabled spec
// returns the input unchanged.
func (s SearchSpec) Filter(records []Record) []Record {
	if !s.Enabled() {
		return records
	}

	needle := strings.ToLower(strings.TrimSpace(s.Query))
	out := make([]Record, 0, len(records))
	for _, record := range records {
		if s.matches(record, needle) {
			out = append(out, record)
		}
	}
	return out
}

func (s SearchSpec) matches(record Record, needle string) bool {
	for _, field := range s.Fields {
		value, ok := record.Get(field)
		if !ok || value == nil {
			continue
		}
		haystack := strings.ToLower(entity.FormatInput(value))
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}
