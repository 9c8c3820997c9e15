package domain

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Error kinds. Every error raised by the todo service wraps exactly one.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)

// MsgRequired is the field message for a missing or blank value.
const MsgRequired = "is required"

// ValidationError lists the rejected fields of one request, keyed by field
// name. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Error renders the fields in name order so messages are stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	sep := ": "
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		b.WriteString(sep)
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e.Fields[field])
		sep = "; "
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError names the missing entity. It matches ErrNotFound under
// errors.Is.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q %s", e.Resource, e.ID, ErrNotFound)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
