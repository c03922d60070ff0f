// Package routes builds the conventional route declarations for an entity and
// decides which of them a route file still lacks.
package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/conduit-lang/crudgen/internal/naming"
)

// Action identifies what a declaration binds to.
type Action int

const (
	// ActionResource is the full resource-collection binding
	// (index, store, show, update, destroy).
	ActionResource Action = iota
	// ActionTrashed lists soft-deleted records.
	ActionTrashed
	// ActionRestore restores a soft-deleted record by id.
	ActionRestore
	// ActionForceDelete permanently deletes a record by id.
	ActionForceDelete
)

// String returns the handler method name of the action.
func (a Action) String() string {
	switch a {
	case ActionResource:
		return "resource"
	case ActionTrashed:
		return "trashed"
	case ActionRestore:
		return "restore"
	case ActionForceDelete:
		return "forceDelete"
	default:
		return "unknown"
	}
}

// Declaration binds an HTTP verb and path to a controller action.
type Declaration struct {
	Action Action
	Verb   string
	Path   string
}

// Handler returns the controller method the declaration dispatches to.
// Resource declarations dispatch to the conventional CRUD methods and
// return "".
func (d Declaration) Handler() string {
	if d.Action == ActionResource {
		return ""
	}
	return d.Action.String()
}

// ResourceDefinition describes the route surface of one entity.
type ResourceDefinition struct {
	Entity      string // Entity name (e.g., "ProductCategory")
	Segment     string // URL segment (e.g., "product-categories")
	IDParamName string // ID parameter name (default: "id")
	SoftDelete  bool   // Include trashed/restore/forceDelete
}

// NewResourceDefinition creates a resource definition with defaults.
func NewResourceDefinition(entity string, softDelete bool) *ResourceDefinition {
	return &ResourceDefinition{
		Entity:      entity,
		Segment:     naming.ResourceSegment(entity),
		IDParamName: "id",
		SoftDelete:  softDelete,
	}
}

// Declarations returns the candidate declarations in emission order.
// Soft-delete routes come first so the literal "trashed" segment is
// registered ahead of the resource's "{id}" routes.
func (def *ResourceDefinition) Declarations() []Declaration {
	var decls []Declaration
	if def.SoftDelete {
		member := fmt.Sprintf("%s/{%s}", def.Segment, def.IDParamName)
		decls = append(decls,
			Declaration{Action: ActionTrashed, Verb: http.MethodGet, Path: def.Segment + "/trashed"},
			Declaration{Action: ActionRestore, Verb: http.MethodPost, Path: member + "/restore"},
			Declaration{Action: ActionForceDelete, Verb: http.MethodDelete, Path: member + "/forceDelete"},
		)
	}
	return append(decls, Declaration{Action: ActionResource, Path: def.Segment})
}

// Build returns the candidate declarations for entity.
func Build(entity string, softDelete bool) []Declaration {
	return NewResourceDefinition(entity, softDelete).Declarations()
}

// Pending returns the candidates whose exact text does not already occur in
// existing, preserving candidate order. Duplicate candidates are kept once.
func Pending(existing string, candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	var pending []string
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		if !strings.Contains(existing, c) {
			pending = append(pending, c)
		}
	}
	return pending
}
