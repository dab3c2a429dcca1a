package form

import (
	"errors"
	"strings"
)

var (
	ErrNotOpen      = errors.New("form is not open")
	ErrBusy         = errors.New("submit already in progress")
	ErrUnknownField = errors.New("unknown field")
)

// ValidationError maps field names to the constraint they failed.
type ValidationError struct {
	Fields map[string]string
	order  []string
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	if _, ok := e.Fields[field]; !ok {
		e.order = append(e.order, field)
	}
	e.Fields[field] = msg
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.order))
	for _, f := range e.order {
		parts = append(parts, f+": "+e.Fields[f])
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// SubmitError is returned when the backend rejects a write.
type SubmitError struct {
	Message string
	Err     error
}

func (e *SubmitError) Error() string { return e.Message }

func (e *SubmitError) Unwrap() error { return e.Err }

type publicMessager interface {
	PublicMessage() string
}

// NewSubmitError picks the user-facing message for err: the upstream message
// when err carries a non-empty one, generic otherwise.
func NewSubmitError(err error, generic string) *SubmitError {
	var pm publicMessager
	if errors.As(err, &pm) {
		if msg := pm.PublicMessage(); msg != "" {
			return &SubmitError{Message: msg, Err: err}
		}
	}
	return &SubmitError{Message: generic, Err: err}
}
