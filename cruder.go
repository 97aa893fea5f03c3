// Package cruder generates complete CRUD web interfaces for schema-described
// entities: paginated and searchable list views, create/edit forms, detail
// and delete-confirmation pages, role-gated actions, and the HTTP routing
// glue, all styled through pluggable CSS profiles.
package cruder

import (
	"context"
	"net/http"

	"github.com/goliatone/go-cruder/pkg/crud"
	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/gate"
	"github.com/goliatone/go-cruder/pkg/schema"
	"github.com/goliatone/go-cruder/pkg/source"
	"github.com/goliatone/go-cruder/pkg/styles"
)

// Schema describes an entity: its naming plus the ordered field list.
type Schema = entity.Schema

// Field describes a single entity attribute.
type Field = entity.Field

// Record is a loosely typed row as read from a query source.
type Record = source.Record

// QuerySource is the persistence seam the handlers read and write through.
type QuerySource = source.QuerySource

// Resource is the per-entity configuration a handler serves.
type Resource = crud.Resource

// ResourceConfig is the file form of a resource.
type ResourceConfig = crud.ResourceConfig

// CurrentUser is the actor handed to the permission gate.
type CurrentUser = crud.CurrentUser

// Permissions maps CRUD operations to the roles allowed to perform them.
type Permissions = gate.Map

// StyleProfile is an immutable bundle of CSS class lookups.
type StyleProfile = styles.Profile

// NewResource validates the minimum viable resource configuration.
func NewResource(s Schema, src QuerySource) (Resource, error) {
	return crud.NewResource(s, src)
}

// NewHandler builds the net/http handler serving every CRUD action for a
// resource.
func NewHandler(res Resource, fns ...crud.OptionFn) http.Handler {
	return crud.NewHandler(res, fns...)
}

// RegisterRoutes mounts a resource handler under basePath on any mux that
// exposes Handle(pattern, handler).
func RegisterRoutes(mux crud.Mux, basePath string, res Resource, fns ...crud.OptionFn) (string, error) {
	return crud.RegisterRoutes(mux, basePath, res, fns...)
}

// NewStyleRegistry returns a registry seeded with the shipped profiles.
func NewStyleRegistry() *styles.Registry {
	return styles.NewRegistry()
}

// LoadSchemas converts every component schema of an OpenAPI 3 document into
// entity schemas keyed by component name.
func LoadSchemas(ctx context.Context, document []byte) (map[string]Schema, error) {
	return schema.New(schema.Options{}).LoadDocument(ctx, document)
}
