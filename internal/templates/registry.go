package templates

import (
	"fmt"
	"sort"
	"sync"
	"text/template"
)

// Registry holds parsed templates by name.
type Registry struct {
	templates map[Name]*template.Template
	mutex     sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[Name]*template.Template),
	}
}

// Register adds a template. Registering a name twice is an error.
func (r *Registry) Register(name Name, tmpl *template.Template) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.templates[name]; exists {
		return fmt.Errorf("template %s already registered", name)
	}

	r.templates[name] = tmpl
	return nil
}

// Replace swaps in tmpl for an already registered name.
func (r *Registry) Replace(name Name, tmpl *template.Template) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.templates[name]; !exists {
		return fmt.Errorf("template %s not found", name)
	}

	r.templates[name] = tmpl
	return nil
}

// Get retrieves a template by name
func (r *Registry) Get(name Name) (*template.Template, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	tmpl, exists := r.templates[name]
	if !exists {
		return nil, fmt.Errorf("template %s not found", name)
	}

	return tmpl, nil
}

// List returns the registered names, sorted.
func (r *Registry) List() []Name {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]Name, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
