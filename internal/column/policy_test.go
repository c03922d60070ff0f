package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var userColumns = []string{
	"id", "name", "email", "email_verified_at", "password",
	"remember_token", "created_at", "updated_at",
}

func TestPolicyFilter(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name    string
		entity  string
		columns []string
		scope   Scope
		want    []string
	}{
		{
			name:    "product create",
			entity:  "Product",
			columns: []string{"id", "name", "cover_img", "price", "created_at"},
			scope:   CreateValidation,
			want:    []string{"name", "cover_img", "price"},
		},
		{
			name:    "product serialization keeps id",
			entity:  "Product",
			columns: []string{"id", "name", "created_at", "updated_at", "deleted_at"},
			scope:   Serialization,
			want:    []string{"id", "name"},
		},
		{
			name:    "non-auth entity keeps password",
			entity:  "Account",
			columns: []string{"id", "password"},
			scope:   Serialization,
			want:    []string{"id", "password"},
		},
		{
			name:    "user update",
			entity:  "User",
			columns: userColumns,
			scope:   UpdateValidation,
			want:    []string{"name", "email", "password"},
		},
		{
			name:    "user serialization",
			entity:  "User",
			columns: userColumns,
			scope:   Serialization,
			want:    []string{"id", "name", "email"},
		},
		{
			name:    "everything excluded",
			entity:  "Tag",
			columns: []string{"id", "created_at"},
			scope:   CreateValidation,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Filter(tt.entity, tt.columns, tt.scope))
		})
	}
}

func TestPolicyFilterIsSubset(t *testing.T) {
	p := DefaultPolicy()
	for _, entity := range []string{"User", "Product"} {
		for _, scope := range []Scope{CreateValidation, UpdateValidation, Serialization} {
			got := p.Filter(entity, userColumns, scope)
			assert.Subset(t, userColumns, got, "%s/%s", entity, scope)
		}
	}
}

func TestPolicyIdentityColumn(t *testing.T) {
	p := DefaultPolicy()

	user := p.Filter("User", userColumns, Serialization)
	assert.Contains(t, user, "id")
	assert.NotContains(t, user, "password")

	for _, entity := range []string{"User", "Product"} {
		for _, scope := range []Scope{CreateValidation, UpdateValidation} {
			assert.NotContains(t, p.Filter(entity, userColumns, scope), "id")
		}
	}
}

func TestPolicyCustomAuthEntity(t *testing.T) {
	p := Policy{AuthEntity: "Member"}

	got := p.Filter("Member", []string{"id", "password", "remember_token"}, Serialization)
	assert.Equal(t, []string{"id"}, got)

	got = p.Filter("User", []string{"id", "password", "remember_token"}, Serialization)
	assert.Equal(t, []string{"id", "password", "remember_token"}, got)
}

func TestPolicyIsAuthEntity(t *testing.T) {
	p := Policy{AuthEntity: "APIUser"}

	assert.True(t, p.IsAuthEntity("APIUser"))
	assert.True(t, p.IsAuthEntity("ApiUser"))
	assert.False(t, p.IsAuthEntity("User"))

	got := p.Filter("APIUser", userColumns, Serialization)
	assert.Equal(t, []string{"id", "name", "email"}, got)

	assert.True(t, DefaultPolicy().IsAuthEntity("User"))
	assert.True(t, Policy{}.IsAuthEntity("User"))
}
