// Package templates renders generated artifacts from named templates bound to
// typed models. All host-framework syntax lives in the templates; callers only
// supply data.
package templates

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/conduit-lang/crudgen/internal/naming"
)

//go:embed dialect/*.tmpl
var builtin embed.FS

// Name identifies a template.
type Name string

const (
	// Validation renders a form-request validation artifact.
	Validation Name = "validation"
	// Serialization renders an output serialization artifact.
	Serialization Name = "serialization"
	// RouteDeclaration renders a single route declaration.
	RouteDeclaration Name = "route_declaration"
	// RouteBlock renders the block appended to the route file.
	RouteBlock Name = "route_block"
)

// Names lists every template the engine needs, in a stable order.
var Names = []Name{Validation, Serialization, RouteDeclaration, RouteBlock}

// FileName returns the template's file name inside a template directory.
func (n Name) FileName() string {
	return string(n) + ".tmpl"
}

// Engine is the template rendering engine
type Engine struct {
	funcs    template.FuncMap
	registry *Registry
}

// NewEngine creates an engine loaded with the built-in templates.
func NewEngine() (*Engine, error) {
	e := &Engine{
		funcs:    Funcs(),
		registry: NewRegistry(),
	}
	for _, name := range Names {
		src, err := builtin.ReadFile("dialect/" + name.FileName())
		if err != nil {
			return nil, fmt.Errorf("failed to read built-in template %s: %w", name, err)
		}
		tmpl, err := e.parse(name, string(src))
		if err != nil {
			return nil, err
		}
		if err := e.registry.Register(name, tmpl); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Funcs returns the function map available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"quote":    Quote,
		"lower":    strings.ToLower,
		"upper":    strings.ToUpper,
		"join":     strings.Join,
		"headline": naming.Headline,
	}
}

// Quote renders s as a single-quoted string literal.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}

// Override replaces the template name with src.
func (e *Engine) Override(name Name, src string) error {
	tmpl, err := e.parse(name, src)
	if err != nil {
		return err
	}
	return e.registry.Replace(name, tmpl)
}

// OverrideDir replaces built-in templates with the files of the same name
// found in dir. Missing files keep the built-in template. It returns the
// names that were replaced.
func (e *Engine) OverrideDir(dir string) ([]Name, error) {
	var replaced []Name
	for _, name := range Names {
		path := filepath.Join(dir, name.FileName())
		src, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return replaced, fmt.Errorf("failed to read template %s: %w", path, err)
		}
		if err := e.Override(name, string(src)); err != nil {
			return replaced, err
		}
		replaced = append(replaced, name)
	}
	return replaced, nil
}

// Render executes the template name with data.
func (e *Engine) Render(name Name, data any) (string, error) {
	tmpl, err := e.registry.Get(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Registry returns the engine's template registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

func (e *Engine) parse(name Name, src string) (*template.Template, error) {
	tmpl, err := template.New(string(name)).Funcs(e.funcs).Option("missingkey=error").Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return tmpl, nil
}
