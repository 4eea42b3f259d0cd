// Package validate wraps go-playground/validator with the fixed,
// human-readable per-rule messages the accounts API exposes. Validation
// produces an explicit result (payload or field errors) rather than
// panicking, so infrastructure failures never masquerade as bad input.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single rule violation on a named field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// FieldErrors is the structured 400 payload for a failed validation.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so error payloads match the
	// wire format, not Go identifiers.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return val
}

// Struct validates s and converts any rule violations into FieldErrors.
// A nil return means s passed every declared rule.
func Struct(s any) FieldErrors {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Invalid input type, not a rule violation. Treat the whole
		// payload as malformed.
		return FieldErrors{{Field: "body", Rule: "invalid", Message: "body is invalid"}}
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldError(fe.Field(), fe.Tag()))
	}
	return out
}

// fieldError maps a validator tag onto the API's rule name and message.
func fieldError(field, tag string) FieldError {
	switch tag {
	case "required":
		return FieldError{Field: field, Rule: "required", Message: fmt.Sprintf("%s is required", field)}
	case "min":
		return FieldError{Field: field, Rule: "min", Message: fmt.Sprintf("%s is too short", field)}
	case "eqfield":
		return FieldError{Field: field, Rule: "confirmed", Message: fmt.Sprintf("%s not match", field)}
	case "email":
		return FieldError{Field: field, Rule: "email", Message: fmt.Sprintf("%s address must be valid", field)}
	case "alpha":
		return FieldError{Field: field, Rule: "alpha", Message: fmt.Sprintf("%s must be letters", field)}
	default:
		return FieldError{Field: field, Rule: tag, Message: fmt.Sprintf("%s is invalid", field)}
	}
}

// Unique builds the rule violation for a value that must be unique but
// already exists. Uniqueness is checked against storage, not by the
// validator, so the service layer raises it through this helper to keep
// the 400 payload shape identical.
func Unique(field string) FieldErrors {
	return FieldErrors{{
		Field:   field,
		Rule:    "unique",
		Message: fmt.Sprintf("%s already in use", field),
	}}
}
