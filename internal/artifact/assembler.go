package artifact

import (
	"fmt"

	"github.com/conduit-lang/crudgen/internal/column"
	"github.com/conduit-lang/crudgen/internal/routes"
	"github.com/conduit-lang/crudgen/internal/synth"
	"github.com/conduit-lang/crudgen/internal/templates"
)

// defaultMessages is the failure-message block of creation artifacts.
var defaultMessages = []templates.Message{
	{Key: "required", Text: "The :attribute field is required."},
}

// Assembler renders artifacts. It performs no I/O.
type Assembler struct {
	engine *templates.Engine
	layout Layout
	policy column.Policy
}

// NewAssembler creates an Assembler.
func NewAssembler(engine *templates.Engine, layout Layout, policy column.Policy) *Assembler {
	return &Assembler{
		engine: engine,
		layout: layout,
		policy: policy,
	}
}

// Layout returns the project layout artifacts are placed in.
func (a *Assembler) Layout() Layout {
	return a.layout
}

// Validation renders the creation or modification validation artifact.
func (a *Assembler) Validation(entity string, columns []string, mode synth.Mode) (*Artifact, error) {
	kind := CreateValidation
	if mode == synth.Update {
		kind = UpdateValidation
	}

	cols := column.Classified(a.policy.Filter(entity, columns, mode.Scope()))
	fields := make([]templates.Field, len(cols))
	for i, c := range cols {
		fields[i] = templates.Field{
			Name:  c.Name,
			Rule:  synth.RuleFor(c, mode).String(),
			Label: synth.LabelFor(c),
		}
	}

	model := templates.ValidationModel{
		Namespace: a.layout.Namespace,
		Folder:    requestFolder(entity),
		Class:     requestClass(kind, entity),
		Fields:    fields,
	}
	if mode == synth.Create {
		model.Messages = defaultMessages
	}

	return a.render(kind, entity, templates.Validation, model)
}

// Serialization renders the output serialization artifact. Media columns
// are resolved to asset URLs; plain columns pass through.
func (a *Assembler) Serialization(entity string, columns []string) (*Artifact, error) {
	cols := column.Classified(a.policy.Filter(entity, columns, column.Serialization))
	fields := make([]templates.Field, len(cols))
	for i, c := range cols {
		fields[i] = templates.Field{Name: c.Name, Media: c.Kind.IsMedia()}
	}

	model := templates.SerializationModel{
		Namespace: a.layout.Namespace,
		Class:     resourceClass(entity),
		Fields:    fields,
	}
	return a.render(Serialization, entity, templates.Serialization, model)
}

// Declarations renders the candidate route declarations of an entity.
func (a *Assembler) Declarations(entity string, softDelete bool) ([]string, error) {
	controller := a.layout.Controller(entity)
	decls := routes.Build(entity, softDelete)

	out := make([]string, len(decls))
	for i, d := range decls {
		text, err := a.engine.Render(templates.RouteDeclaration, templates.DeclarationModel{
			Controller: controller,
			Resource:   d.Action == routes.ActionResource,
			Verb:       d.Verb,
			Path:       d.Path,
			Handler:    d.Handler(),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render %s route for %s: %w", d.Action, entity, err)
		}
		out[i] = text
	}
	return out, nil
}

// RouteBlock renders the block appended to the route file for declarations.
func (a *Assembler) RouteBlock(entity string, declarations []string) (string, error) {
	return a.engine.Render(templates.RouteBlock, templates.RouteBlockModel{
		Entity:       entity,
		Controller:   a.layout.Controller(entity),
		Declarations: declarations,
	})
}

// RoutesPath returns the shared route file.
func (a *Assembler) RoutesPath() string {
	return a.layout.Path(Routes, "")
}

func (a *Assembler) render(kind Kind, entity string, name templates.Name, model any) (*Artifact, error) {
	content, err := a.engine.Render(name, model)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble %s for %s: %w", kind, entity, err)
	}
	return &Artifact{
		Kind:    kind,
		Entity:  entity,
		Name:    Identity(kind, entity),
		Path:    a.layout.Path(kind, entity),
		Content: content,
	}, nil
}
