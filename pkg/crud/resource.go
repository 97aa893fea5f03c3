package crud

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-cruder/pkg/entity"
	"github.com/goliatone/go-cruder/pkg/gate"
	"github.com/goliatone/go-cruder/pkg/source"
)

// CurrentUser is the actor a host hands the permission gate. Hosts adapt
// their own session or auth types to it.
type CurrentUser interface {
	Roles() []string
	IsSuperuser() bool
}

// Resource is the per-entity configuration a handler serves.
type Resource struct {
	// Schema describes the entity the resource exposes.
	Schema entity.Schema
	// Source is the persistence backend.
	Source source.QuerySource
	// BasePath is the canonical list URL ("/contacts/"). When set it anchors
	// redirects and row action links; when empty both are derived from the
	// request path.
	BasePath string
	// Profile names the style profile to render with.
	Profile string
	// ExcludeFields are dropped from generated forms.
	ExcludeFields []string
	// ListFields restricts the list view columns.
	ListFields []string
	// SearchFields enables OR search across the named fields.
	SearchFields []string
	// SearchField is the deprecated singular spelling of SearchFields. It is
	// folded into SearchFields when set.
	SearchField string
	// PerPage is the list page size; values below 1 use the default.
	PerPage int
	// Permissions maps operations to the roles allowed to perform them.
	Permissions gate.Map
	// ReadonlyMode denies every mutating operation regardless of roles.
	ReadonlyMode bool
	// CSRFField overrides the hidden CSRF input name.
	CSRFField string
}

// NewResource validates the minimum viable configuration.
func NewResource(schema entity.Schema, src source.QuerySource) (Resource, error) {
	if strings.TrimSpace(schema.Name) == "" {
		return Resource{}, errors.New("crud: schema name is required")
	}
	if len(schema.Fields) == 0 {
		return Resource{}, fmt.Errorf("crud: schema %q declares no fields", schema.Name)
	}
	if src == nil {
		return Resource{}, fmt.Errorf("crud: resource %q needs a query source", schema.Name)
	}
	return Resource{Schema: schema, Source: src}, nil
}

// searchFields folds the deprecated singular alias into the field list.
func (res Resource) searchFields() []string {
	fields := append([]string(nil), res.SearchFields...)
	if single := strings.TrimSpace(res.SearchField); single != "" {
		for _, existing := range fields {
			if existing == single {
				return fields
			}
		}
		fields = append(fields, single)
	}
	return fields
}

// snapshot evaluates the gate for the supplied actor. A nil actor is an
// anonymous request: no roles, no superuser bypass.
func (res Resource) snapshot(user CurrentUser) gate.Snapshot {
	var roles []string
	superuser := false
	if user != nil {
		roles = user.Roles()
		superuser = user.IsSuperuser()
	}
	return gate.TakeSnapshot(roles, superuser, res.Permissions, res.ReadonlyMode)
}

func allowed(snapshot gate.Snapshot, op gate.Operation) bool {
	switch op {
	case gate.Create:
		return snapshot.CanCreate
	case gate.Read:
		return snapshot.CanRead
	case gate.Update:
		return snapshot.CanUpdate
	case gate.Delete:
		return snapshot.CanDelete
	}
	return false
}
