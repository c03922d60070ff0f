package column

import "github.com/conduit-lang/crudgen/internal/naming"

// Scope is the generation context that selects exclusion behavior.
type Scope int

const (
	// CreateValidation is the creation-request validation artifact.
	CreateValidation Scope = iota
	// UpdateValidation is the modification-request validation artifact.
	UpdateValidation
	// Serialization is the output serialization artifact.
	Serialization
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case CreateValidation:
		return "create_validation"
	case UpdateValidation:
		return "update_validation"
	case Serialization:
		return "serialization"
	default:
		return "unknown"
	}
}

// DefaultAuthEntity is the conventional name of the authentication principal.
const DefaultAuthEntity = "User"

const identityColumn = "id"

var (
	// row identity plus the three lifecycle timestamps
	bookkeeping = []string{identityColumn, "created_at", "updated_at", "deleted_at"}
	// credential lifecycle columns of the auth entity
	authLifecycle = []string{"email_verified_at", "remember_token"}
	// never serialized for the auth entity
	authSecret = "password"
)

// Policy decides which columns never appear in generated output.
type Policy struct {
	// AuthEntity names the authentication-principal entity.
	AuthEntity string
}

// DefaultPolicy returns a Policy treating "User" as the auth entity.
func DefaultPolicy() Policy {
	return Policy{AuthEntity: DefaultAuthEntity}
}

// IsAuthEntity reports whether entity names the auth entity. Names are
// compared in PascalCase form, so "api_user" matches "ApiUser" while "APIUser"
// matches itself.
func (p Policy) IsAuthEntity(entity string) bool {
	auth := p.authEntity()
	return entity == auth || naming.Pascal(entity) == naming.Pascal(auth)
}

// Exclusions returns the set of column names excluded for entity under scope.
func (p Policy) Exclusions(entity string, scope Scope) map[string]struct{} {
	auth := p.IsAuthEntity(entity)

	excluded := make(map[string]struct{}, len(bookkeeping)+len(authLifecycle)+1)
	for _, name := range bookkeeping {
		excluded[name] = struct{}{}
	}
	if auth {
		for _, name := range authLifecycle {
			excluded[name] = struct{}{}
		}
	}

	if scope == Serialization {
		delete(excluded, identityColumn)
		if auth {
			excluded[authSecret] = struct{}{}
		}
	}
	return excluded
}

// Filter returns the columns of entity that survive the exclusions for scope,
// in their original order. The result is always a subset of columns.
func (p Policy) Filter(entity string, columns []string, scope Scope) []string {
	excluded := p.Exclusions(entity, scope)
	kept := make([]string, 0, len(columns))
	for _, c := range columns {
		if _, ok := excluded[c]; !ok {
			kept = append(kept, c)
		}
	}
	return kept
}

func (p Policy) authEntity() string {
	if p.AuthEntity == "" {
		return DefaultAuthEntity
	}
	return p.AuthEntity
}
