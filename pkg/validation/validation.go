// Package validation checks decoded request payloads against the constraints
// declared in their struct tags and reports every violating field at once.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/spacetalk/lambda-spacetalk/pkg/domain"
)

// Validator wraps a configured validator instance. The zero value is not
// usable; construct one with New.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Validate checks the struct and returns a domain.ValidationError listing
// every violation, or nil.
func (v *Validator) Validate(schema interface{}) error {
	err := v.v.Struct(schema)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	violations := make([]domain.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		violations = append(violations, domain.Violation{
			Field:   field,
			Message: message(field, fe),
		})
	}
	return domain.ValidationError{Violations: violations}
}

// DecodeAndValidate parses a JSON request body into dst and validates it.
// A missing body or malformed JSON is reported as a ValidationError too.
func (v *Validator) DecodeAndValidate(body string, dst interface{}) error {
	if strings.TrimSpace(body) == "" {
		return domain.ValidationError{Violations: []domain.Violation{
			{Field: "body", Message: "Request body is required"},
		}}
	}
	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return domain.ValidationError{Violations: []domain.Violation{
			{Field: "body", Message: decodeMessage(err)},
		}}
	}
	return v.Validate(dst)
}

// fieldPath drops the leading struct type name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s length must be at least %s characters long", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
		}
	case "max":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return fmt.Sprintf("%s must contain at most %s item(s)", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s length must be less than or equal to %s characters long", field, fe.Param())
		default:
			return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
		}
	default:
		return fmt.Sprintf("%s failed the %s constraint", field, fe.Tag())
	}
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String())
	}
	return "Request body must be valid JSON"
}
