// Package source defines the query-source contract the renderers and the
// CRUD handler consume, plus the search and pagination helpers that operate
// on it. Durable storage belongs to the host; implementations here adapt it.
package source

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup for a record id the source does not hold.
var ErrNotFound = errors.New("source: record not found")

// Record is one entity instance's field values. A missing key reads as nil.
type Record map[string]any

// Get reads a field value. The second return reports presence, so callers can
// distinguish a stored nil from an absent field.
func (r Record) Get(field string) (any, bool) {
	value, ok := r[field]
	return value, ok
}

// ID returns the record identifier, reading "id" first and "pk" as the
// fallback, stringified for URL building.
func (r Record) ID() string {
	if value, ok := r["id"]; ok && value != nil {
		return fmt.Sprint(value)
	}
	if value, ok := r["pk"]; ok && value != nil {
		return fmt.Sprint(value)
	}
	return ""
}

// Clone returns a shallow copy so handlers can mutate submissions without
// aliasing the source's stored map.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for key, value := range r {
		out[key] = value
	}
	return out
}

// QuerySource is the persistence collaborator contract: ordered enumeration,
// id lookup, and the three mutations. Implementations may be backed by
// anything that can list and mutate records.
type QuerySource interface {
	All(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Insert(ctx context.Context, record Record) (Record, error)
	Update(ctx context.Context, id string, record Record) (Record, error)
	Delete(ctx context.Context, id string) error
}
