package validate

import (
	"errors"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field" xml:"field,attr"`
	Message string `json:"message" xml:",chardata"`
}

// Errors is the field-level error list returned for a rejected payload.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Struct runs the ozzo rules of v and flattens the result into Errors.
// A nil return means the payload is valid.
func Struct(v validation.Validatable) error {
	return FromOzzo(v.Validate())
}

// FromOzzo converts ozzo validation.Errors into a sorted Errors list.
// Internal errors and anything that is not a validation error pass through.
func FromOzzo(err error) error {
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return err
	}

	var ozzoErrs validation.Errors
	if !errors.As(err, &ozzoErrs) {
		return err
	}

	out := make(Errors, 0, len(ozzoErrs))
	flatten("", ozzoErrs, &out)
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func flatten(prefix string, errs validation.Errors, out *Errors) {
	for field, err := range errs {
		name := field
		if prefix != "" {
			name = prefix + "." + field
		}

		var nested validation.Errors
		if errors.As(err, &nested) {
			flatten(name, nested, out)
			continue
		}
		*out = append(*out, FieldError{Field: name, Message: err.Error()})
	}
}
