// Package gate decides whether an actor may perform a CRUD operation. The
// policy is fail-open: absence of a rule for an operation means the operation
// is unrestricted, so callers that want restriction must supply an explicit
// non-empty role list per operation.
package gate

import (
	"fmt"
	"strings"
)

// Operation identifies one of the four CRUD operations.
type Operation string

const (
	Create Operation = "create"
	Read   Operation = "read"
	Update Operation = "update"
	Delete Operation = "delete"
)

// Map assigns each operation the set of roles allowed to perform it. A
// missing or empty entry leaves the operation unrestricted.
type Map map[Operation][]string

// ParseOperation accepts both the full-word spellings and the single-letter
// C/R/U/D aliases used by configuration files.
func ParseOperation(raw string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "c", "create":
		return Create, nil
	case "r", "read":
		return Read, nil
	case "u", "update":
		return Update, nil
	case "d", "delete":
		return Delete, nil
	default:
		return "", fmt.Errorf("gate: unknown operation %q", raw)
	}
}

func (op Operation) mutates() bool {
	return op == Create || op == Update || op == Delete
}

// Allowed reports whether an actor holding roles may perform op under the
// supplied permission map. Readonly mode denies every mutating operation
// before any other rule is consulted, including for superusers.
func Allowed(roles []string, superuser bool, op Operation, permissions Map, readonly bool) bool {
	if readonly && op.mutates() {
		return false
	}
	if superuser {
		return true
	}

	required := permissions[op]
	if len(required) == 0 {
		return true
	}

	held := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		held[role] = struct{}{}
	}
	for _, role := range required {
		if _, ok := held[role]; ok {
			return true
		}
	}
	return false
}

// Snapshot carries the four per-request allow/deny flags renderers consume.
type Snapshot struct {
	CanCreate bool
	CanRead   bool
	CanUpdate bool
	CanDelete bool
}

// TakeSnapshot evaluates all four operations once so renderers never consult
// the role mapping themselves.
func TakeSnapshot(roles []string, superuser bool, permissions Map, readonly bool) Snapshot {
	return Snapshot{
		CanCreate: Allowed(roles, superuser, Create, permissions, readonly),
		CanRead:   Allowed(roles, superuser, Read, permissions, readonly),
		CanUpdate: Allowed(roles, superuser, Update, permissions, readonly),
		CanDelete: Allowed(roles, superuser, Delete, permissions, readonly),
	}
}

// AllowAll is the snapshot used when no actor context is available, matching
// the fail-open default.
func AllowAll() Snapshot {
	return Snapshot{CanCreate: true, CanRead: true, CanUpdate: true, CanDelete: true}
}
