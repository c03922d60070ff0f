package emit

import (
	"errors"
	"strings"
)

// ErrFilesystem is matched by every filesystem failure of this package.
var ErrFilesystem = errors.New("crudgen: filesystem error")

// FSError describes a failed filesystem operation.
type FSError struct {
	Op    string // "mkdir", "create", "write", "read", ...
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *FSError) Error() string {
	var b strings.Builder
	b.WriteString("crudgen: ")
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *FSError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrFilesystem.
func (e *FSError) Is(target error) bool {
	return target == ErrFilesystem
}

// IsFilesystemError reports whether err is an FSError.
func IsFilesystemError(err error) bool {
	var fsErr *FSError
	return errors.As(err, &fsErr)
}
