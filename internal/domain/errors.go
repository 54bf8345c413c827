package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// MsgRequired is the validation message for a missing field.
const MsgRequired = "is required"

// Error sentinels. Adapters map them to transport status codes, so wrap
// them rather than inventing new ones.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// ValidationError maps request field paths, such as "pages[0].id", to what
// is wrong with them. It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Invalid returns a ValidationError for a single field.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
