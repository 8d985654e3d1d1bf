package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "jumatrek/pkg/errors"

	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (f FieldError) Error() string {
	return fmt.Sprintf("%s: %s", f.Field, f.Message)
}

// Validator checks model structs against their `validate` tags and reports
// failures by JSON field name.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &Validator{validate: v}
}

// Validate returns nil or a VALIDATION_ERROR AppError whose details map each
// offending field to a readable message.
func (v *Validator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return apperrors.Internal("validation could not run", err)
	}

	fields := v.translate(validationErrs)
	details := make(map[string]any, len(fields))
	for _, f := range fields {
		details[f.Field] = f.Message
	}
	return apperrors.Validation("Validation failed", details)
}

func (v *Validator) translate(errs validator.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, err := range errs {
		out = append(out, FieldError{
			Field:   fieldPath(err),
			Message: message(err),
		})
	}
	return out
}

// fieldPath drops the root struct name: "Trek.highlights[2]" -> "highlights[2]".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if isNumeric(err.Kind()) {
			return "must be at least " + err.Param()
		}
		return "must contain at least " + err.Param() + " characters"
	default:
		return "failed '" + err.Tag() + "' validation"
	}
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
