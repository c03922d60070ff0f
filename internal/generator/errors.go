package generator

import (
	"errors"
	"fmt"

	"github.com/conduit-lang/crudgen/internal/artifact"
)

// ErrInvalidInput is matched by every input validation failure.
var ErrInvalidInput = errors.New("crudgen: invalid input")

// InputError describes an invalid entity name or column list. It aborts the
// generation of that entity only.
type InputError struct {
	Entity  string
	Column  string // empty when the entity name itself is invalid
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("crudgen: entity %q: column %q: %s", e.Entity, e.Column, e.Message)
	}
	if e.Entity == "" {
		return "crudgen: " + e.Message
	}
	return fmt.Sprintf("crudgen: entity %q: %s", e.Entity, e.Message)
}

// Is reports whether the target matches ErrInvalidInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// IsInputError reports whether err is an InputError.
func IsInputError(err error) bool {
	var inErr *InputError
	return errors.As(err, &inErr)
}

// ArtifactError wraps the failure of a single artifact with the context
// needed to re-run it.
type ArtifactError struct {
	Entity   string
	Artifact artifact.Kind
	Path     string
	Cause    error
}

// Error implements the error interface.
func (e *ArtifactError) Error() string {
	return fmt.Sprintf("crudgen: %s artifact for %s (%s): %v", e.Artifact, e.Entity, e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ArtifactError) Unwrap() error {
	return e.Cause
}
