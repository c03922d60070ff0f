// Package generator drives one entity through assembly and emission. Each
// artifact is produced independently: a failure is recorded on its item and
// the remaining artifacts are still attempted.
package generator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/conduit-lang/crudgen/internal/artifact"
	"github.com/conduit-lang/crudgen/internal/emit"
	"github.com/conduit-lang/crudgen/internal/naming"
	"github.com/conduit-lang/crudgen/internal/synth"
)

var (
	entityPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	pascalPattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)
	columnPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// Request is the input of one entity generation.
type Request struct {
	Entity           string
	Columns          []string
	SoftDeleteRoutes bool
	Only             []artifact.Kind // nil selects every kind
}

// Item is the result of one artifact.
type Item struct {
	Kind    artifact.Kind
	Name    string
	Path    string
	Content string // rendered text; for routes, the block that was (or would be) appended
	Outcome emit.Outcome
	Err     error
}

// Report collects the items of one entity generation.
type Report struct {
	Entity string
	DryRun bool
	Items  []Item
}

// Err joins the errors of every failed item.
func (r *Report) Err() error {
	var errs []error
	for _, it := range r.Items {
		if it.Err != nil {
			errs = append(errs, it.Err)
		}
	}
	return errors.Join(errs...)
}

// Count returns the number of items with the given status.
func (r *Report) Count(status emit.Status) int {
	n := 0
	for _, it := range r.Items {
		if it.Outcome.Status == status {
			n++
		}
	}
	return n
}

// Options configures a Generator.
type Options struct {
	// DryRun renders every artifact and predicts its outcome without writing.
	DryRun bool
}

// Generator generates the artifacts of entities.
type Generator struct {
	assembler *artifact.Assembler
	opts      Options
}

// New creates a Generator.
func New(assembler *artifact.Assembler, opts Options) *Generator {
	return &Generator{
		assembler: assembler,
		opts:      opts,
	}
}

// Generate validates req and produces its artifacts. Invalid input returns an
// *InputError and no report. Otherwise the report is always returned, together
// with the joined errors of its failed items.
func (g *Generator) Generate(req Request) (*Report, error) {
	entity, err := NormalizeEntity(req.Entity)
	if err != nil {
		return nil, err
	}
	if err := ValidateColumns(entity, req.Columns); err != nil {
		return nil, err
	}

	kinds := req.Only
	if len(kinds) == 0 {
		kinds = artifact.Kinds
	}

	report := &Report{Entity: entity, DryRun: g.opts.DryRun}
	for _, kind := range kinds {
		var item Item
		if kind == artifact.Routes {
			item = g.routes(entity, req.SoftDeleteRoutes)
		} else {
			item = g.file(kind, entity, req.Columns)
		}
		report.Items = append(report.Items, item)
	}
	return report, report.Err()
}

func (g *Generator) file(kind artifact.Kind, entity string, columns []string) Item {
	item := Item{
		Kind: kind,
		Name: artifact.Identity(kind, entity),
		Path: g.assembler.Layout().Path(kind, entity),
	}

	var (
		a   *artifact.Artifact
		err error
	)
	switch kind {
	case artifact.CreateValidation:
		a, err = g.assembler.Validation(entity, columns, synth.Create)
	case artifact.UpdateValidation:
		a, err = g.assembler.Validation(entity, columns, synth.Update)
	default:
		a, err = g.assembler.Serialization(entity, columns)
	}
	if err != nil {
		return item.fail(entity, err)
	}
	item.Content = a.Content

	if g.opts.DryRun {
		status, err := emit.Probe(item.Path)
		if err != nil {
			return item.fail(entity, err)
		}
		item.Outcome = emit.Outcome{Status: status, Path: item.Path}
		return item
	}

	out, err := emit.WriteIfAbsent(item.Path, []byte(a.Content))
	item.Outcome = out
	if err != nil {
		return item.fail(entity, err)
	}
	return item
}

func (g *Generator) routes(entity string, softDelete bool) Item {
	item := Item{
		Kind: artifact.Routes,
		Name: artifact.Identity(artifact.Routes, entity),
		Path: g.assembler.RoutesPath(),
	}

	candidates, err := g.assembler.Declarations(entity, softDelete)
	if err != nil {
		return item.fail(entity, err)
	}

	render := func(declarations []string) (string, error) {
		block, err := g.assembler.RouteBlock(entity, declarations)
		if err == nil {
			item.Content = block
		}
		return block, err
	}

	if g.opts.DryRun {
		pending, err := emit.PendingRoutes(item.Path, candidates)
		if err != nil {
			return item.fail(entity, err)
		}
		if len(pending) == 0 {
			item.Outcome = emit.Outcome{Status: emit.Unchanged, Path: item.Path}
			return item
		}
		if _, err := render(pending); err != nil {
			return item.fail(entity, err)
		}
		item.Outcome = emit.Outcome{Status: emit.Appended, Path: item.Path, Appended: len(pending)}
		return item
	}

	out, err := emit.MergeRouteBlock(item.Path, candidates, render)
	item.Outcome = out
	if err != nil {
		return item.fail(entity, err)
	}
	return item
}

func (it Item) fail(entity string, err error) Item {
	it.Err = &ArtifactError{Entity: entity, Artifact: it.Kind, Path: it.Path, Cause: err}
	it.Outcome = emit.Outcome{Status: emit.Failed, Path: it.Path, Err: it.Err}
	return it
}

// NormalizeEntity validates an entity name and returns its PascalCase form.
// Names that are already PascalCase are returned unchanged, acronyms
// included (SKU, APIKey); snake and kebab names are converted.
func NormalizeEntity(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &InputError{Message: "entity name is required"}
	}
	if !entityPattern.MatchString(name) {
		return "", &InputError{Entity: name, Message: "entity name must start with a letter and contain only letters, digits, '_' or '-'"}
	}
	if pascalPattern.MatchString(name) {
		return name, nil
	}
	return naming.Pascal(name), nil
}

// ValidateColumns checks that every column is a lower snake_case identifier
// and appears once.
func ValidateColumns(entity string, columns []string) error {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if !columnPattern.MatchString(c) {
			return &InputError{Entity: entity, Column: c, Message: "column names must be lower snake_case identifiers"}
		}
		if _, dup := seen[c]; dup {
			return &InputError{Entity: entity, Column: c, Message: "duplicate column"}
		}
		seen[c] = struct{}{}
	}
	return nil
}

// ParseColumns splits a comma-separated column list, trimming whitespace.
// Leading and trailing commas are ignored; an empty entry between two
// columns ("name,,price") is an *InputError. A blank list yields nil.
func ParseColumns(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	first, last := 0, len(parts)-1
	for first <= last && parts[first] == "" {
		first++
	}
	for last >= first && parts[last] == "" {
		last--
	}
	if first > last {
		return nil, nil
	}

	cols := parts[first : last+1]
	for _, c := range cols {
		if c == "" {
			return nil, &InputError{Message: fmt.Sprintf("column list %q has an empty entry", strings.TrimSpace(s))}
		}
	}
	return cols, nil
}
