// Package manifest reads batch generation input: a YAML document listing the
// entities to scaffold.
//
//	entities:
//	  - name: Product
//	    columns: [id, name, cover_img, price, created_at]
//	    soft_delete_routes: true
//	    only: [create, update]
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/conduit-lang/crudgen/internal/artifact"
	"github.com/conduit-lang/crudgen/internal/generator"
)

// Manifest is a list of entities processed in order.
type Manifest struct {
	Entities []Entity `yaml:"entities"`
}

// Entity is one manifest entry.
type Entity struct {
	Name             string   `yaml:"name"`
	Columns          []string `yaml:"columns"`
	SoftDeleteRoutes *bool    `yaml:"soft_delete_routes,omitempty"`
	Only             []string `yaml:"only,omitempty"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses a manifest document. Unknown keys are rejected.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	if len(m.Entities) == 0 {
		return nil, errors.New("manifest lists no entities")
	}
	return &m, nil
}

// Request converts the entry into a generation request. softDeleteDefault
// applies when the entry leaves soft_delete_routes unset.
func (e Entity) Request(softDeleteDefault bool) (generator.Request, error) {
	only, err := artifact.ParseKinds(e.Only)
	if err != nil {
		return generator.Request{}, &generator.InputError{Entity: e.Name, Message: err.Error()}
	}

	softDelete := softDeleteDefault
	if e.SoftDeleteRoutes != nil {
		softDelete = *e.SoftDeleteRoutes
	}

	return generator.Request{
		Entity:           e.Name,
		Columns:          e.Columns,
		SoftDeleteRoutes: softDelete,
		Only:             only,
	}, nil
}
