// Package validate checks request payloads against their declared
// constraints and reports failures keyed by field, without mutating input.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var checker = newChecker()

func newChecker() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so error reports match the wire format.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// FieldErrors maps a field path (JSON names, e.g. "experiences[0].company")
// to the constraint messages it violated.
type FieldErrors map[string][]string

// Struct validates in against its struct tags. Returns nil when valid.
func Struct(in any) FieldErrors {
	err := checker.Struct(in)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"payload": {"invalid payload"}}
	}

	fields := make(FieldErrors, len(violations))
	for _, violation := range violations {
		key := fieldPath(violation.Namespace())
		fields[key] = append(fields[key], message(violation))
	}
	return fields
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return "is required"
	case "min":
		if v.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", v.Param())
		}
		return fmt.Sprintf("must contain at least %s items", v.Param())
	case "max":
		if v.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", v.Param())
		}
		return fmt.Sprintf("must contain at most %s items", v.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be a valid RFC 3339 timestamp"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", v.Param())
	default:
		return fmt.Sprintf("failed %s validation", v.Tag())
	}
}
