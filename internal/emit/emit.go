// Package emit writes generated artifacts without ever overwriting existing
// content: single files are created only when absent, and route blocks are
// appended only with the declarations the route file still lacks.
package emit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conduit-lang/crudgen/internal/routes"
)

const (
	dirMode  os.FileMode = 0755
	fileMode os.FileMode = 0644
)

// Status is the result of one emission.
type Status int

const (
	// Created means the file did not exist and was written.
	Created Status = iota
	// Skipped means the file already existed and was left untouched.
	Skipped
	// Appended means new route declarations were appended.
	Appended
	// Unchanged means every route declaration was already present.
	Unchanged
	// Failed means a filesystem error stopped the emission.
	Failed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Skipped:
		return "skipped"
	case Appended:
		return "appended"
	case Unchanged:
		return "unchanged"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome reports what an emission did to one path.
type Outcome struct {
	Status   Status
	Path     string
	Appended int   // declarations appended (Appended only)
	Err      error // set when Status is Failed
}

// String describes the outcome in a short human-readable form.
func (o Outcome) String() string {
	switch o.Status {
	case Appended:
		if o.Appended == 1 {
			return "appended 1 declaration"
		}
		return fmt.Sprintf("appended %d declarations", o.Appended)
	case Unchanged:
		return "no changes"
	case Failed:
		return fmt.Sprintf("failed: %v", o.Err)
	default:
		return o.Status.String()
	}
}

func failed(path string, err error) (Outcome, error) {
	return Outcome{Status: Failed, Path: path, Err: err}, err
}

// EnsureDirectory creates path and its parents. An existing directory is not
// an error.
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, dirMode); err != nil {
		return &FSError{Op: "mkdir", Path: path, Cause: err}
	}
	return nil
}

// WriteIfAbsent writes content to path unless path already exists, creating
// parent directories as needed. The existence check and the create are a
// single exclusive open, so the first writer wins and later callers skip.
func WriteIfAbsent(path string, content []byte) (Outcome, error) {
	if err := EnsureDirectory(filepath.Dir(path)); err != nil {
		return failed(path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if errors.Is(err, fs.ErrExist) {
		return Outcome{Status: Skipped, Path: path}, nil
	}
	if err != nil {
		return failed(path, &FSError{Op: "create", Path: path, Cause: err})
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return failed(path, &FSError{Op: "write", Path: path, Cause: err})
	}
	if err := f.Close(); err != nil {
		return failed(path, &FSError{Op: "close", Path: path, Cause: err})
	}
	return Outcome{Status: Created, Path: path}, nil
}

// BlockRenderer renders the text appended for the surviving declarations.
type BlockRenderer func(declarations []string) (string, error)

// MergeRouteBlock appends the candidates missing from the route file at path,
// rendered by render as one block. A missing route file counts as empty and is
// created. Nothing is written when every candidate is already present.
//
// Concurrent merges into the same file are not serialized.
func MergeRouteBlock(path string, candidates []string, render BlockRenderer) (Outcome, error) {
	pending, err := PendingRoutes(path, candidates)
	if err != nil {
		return failed(path, err)
	}
	if len(pending) == 0 {
		return Outcome{Status: Unchanged, Path: path}, nil
	}

	block, err := render(pending)
	if err != nil {
		return failed(path, fmt.Errorf("failed to render route block: %w", err))
	}

	if err := EnsureDirectory(filepath.Dir(path)); err != nil {
		return failed(path, err)
	}
	if err := appendFile(path, []byte(block)); err != nil {
		return failed(path, err)
	}
	return Outcome{Status: Appended, Path: path, Appended: len(pending)}, nil
}

// PendingRoutes returns the candidates not yet present in the route file at
// path, without writing anything.
func PendingRoutes(path string, candidates []string) ([]string, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &FSError{Op: "read", Path: path, Cause: err}
	}
	return routes.Pending(string(existing), candidates), nil
}

// Probe reports the status WriteIfAbsent would produce for path right now.
func Probe(path string) (Status, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return Skipped, nil
	case errors.Is(err, fs.ErrNotExist):
		return Created, nil
	default:
		return Failed, &FSError{Op: "stat", Path: path, Cause: err}
	}
}

func appendFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, fileMode)
	if err != nil {
		return &FSError{Op: "open", Path: path, Cause: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &FSError{Op: "append", Path: path, Cause: err}
	}
	if err := f.Close(); err != nil {
		return &FSError{Op: "close", Path: path, Cause: err}
	}
	return nil
}
