// Package validation holds the field checks shared by the catalog forms,
// the CLI and the development server. Every check runs locally, before any
// request leaves the client.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is the sentinel every field error unwraps to
var ErrInvalid = errors.New("validation failed")

// FieldError describes a single invalid field
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error {
	return ErrInvalid
}

// Errors collects field errors so a form can show all of them at once
type Errors []*FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

func (e Errors) Unwrap() error {
	return ErrInvalid
}

// Add appends err when it is a *FieldError or an Errors value. nil is ignored.
func (e *Errors) Add(err error) {
	if err == nil {
		return
	}
	var fe *FieldError
	var many Errors
	switch {
	case errors.As(err, &many):
		*e = append(*e, many...)
	case errors.As(err, &fe):
		*e = append(*e, fe)
	default:
		*e = append(*e, &FieldError{Field: "_", Message: err.Error()})
	}
}

// Err returns nil when no error was collected
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Fields returns a field -> message map, the shape forms render inline
func (e Errors) Fields() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Message
		}
	}
	return out
}

// Required rejects empty and whitespace-only values
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &FieldError{Field: field, Message: "is required"}
	}
	return nil
}

// MaxLength rejects values longer than max runes
func MaxLength(field, value string, max int) error {
	if len([]rune(value)) > max {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)}
	}
	return nil
}

// IntRange rejects values outside [min, max]
func IntRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &FieldError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return nil
}

// PositiveID rejects ids that cannot reference a stored record
func PositiveID(field string, id int) error {
	if id <= 0 {
		return &FieldError{Field: field, Message: "must reference an existing record"}
	}
	return nil
}
