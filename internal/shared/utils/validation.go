package utils

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field path to its validation messages.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// NewValidator returns a validator that reports fields by their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// CollectFieldErrors converts a validator result into FieldErrors. messages overrides the
// default text per "field.tag" key, for example "monetaryValue.amount.required".
// Errors that are not validator.ValidationErrors are returned under the "body" key.
func CollectFieldErrors(err error, messages map[string]string) FieldErrors {
	if err == nil {
		return nil
	}

	fieldErrors := FieldErrors{}

	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		fieldErrors.Add("body", err.Error())
		return fieldErrors
	}

	for _, fe := range validationErrors {
		field := fieldPath(fe)
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			fieldErrors.Add(field, msg)
			continue
		}
		fieldErrors.Add(field, getFieldErrorMessage(fe))
	}

	return fieldErrors
}

// DecodeTypeErrors reports JSON values of the wrong type as field errors.
// It returns nil for any other decoding failure.
func DecodeTypeErrors(err error) FieldErrors {
	var typeErr *json.UnmarshalTypeError
	if !stderrors.As(err, &typeErr) {
		return nil
	}

	field := typeErr.Field
	if field == "" {
		field = "body"
	}
	return FieldErrors{field: {fmt.Sprintf("%s must be of type %s", field, jsonTypeName(typeErr.Type))}}
}

// fieldPath strips the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Struct, reflect.Map:
		return "object"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Bool:
		return "boolean"
	default:
		return "number"
	}
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, fe.Tag())
	}
}
