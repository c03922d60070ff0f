package templates

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRegister(t *testing.T) {
	registry := NewRegistry()
	tmpl := template.Must(template.New("x").Parse("x"))

	require.NoError(t, registry.Register("x", tmpl))
	assert.Error(t, registry.Register("x", tmpl), "duplicate registration")
}

func TestRegistryReplace(t *testing.T) {
	registry := NewRegistry()
	first := template.Must(template.New("x").Parse("first"))
	second := template.Must(template.New("x").Parse("second"))

	assert.Error(t, registry.Replace("x", second), "replace before register")

	require.NoError(t, registry.Register("x", first))
	require.NoError(t, registry.Replace("x", second))

	got, err := registry.Get("x")
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("non-existent")
	assert.Error(t, err)
	assert.Empty(t, registry.List())
}

func TestRegistryList(t *testing.T) {
	registry := NewRegistry()
	for _, n := range []Name{"b", "c", "a"} {
		require.NoError(t, registry.Register(n, template.Must(template.New(string(n)).Parse(""))))
	}
	assert.Equal(t, []Name{"a", "b", "c"}, registry.List())
}
