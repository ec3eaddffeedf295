package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-gift-catalog/models"
	v10 "github.com/go-playground/validator/v10"
)

// StructValidator validates structs by their `validate` tags.
// Field names in reported errors are taken from the `json` tag.
type StructValidator struct {
	validate *v10.Validate
}

func NewStructValidator() Validator {
	validate := v10.New(v10.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	return &StructValidator{validate: validate}
}

// Validate checks obj, which must be a struct or a pointer to one.
// When fields are given only those struct fields (Go names) are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalid *v10.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	return &ValidationError{Fields: FormatValidationErrors(err)}
}

// FormatValidationErrors converts validator errors into field errors.
// Code follows the pattern "INVALID_<RULE>|<param>", the param part is
// omitted for rules without one.
func FormatValidationErrors(err error) []models.FieldError {
	if err == nil {
		return nil
	}

	var ve v10.ValidationErrors
	if !errors.As(err, &ve) {
		return []models.FieldError{{Field: "", Code: "INVALID", Message: err.Error()}}
	}

	out := make([]models.FieldError, 0, len(ve))
	for _, f := range ve {
		code := "INVALID_" + strings.ToUpper(f.Tag())
		if f.Param() != "" {
			code += "|" + f.Param()
		}

		out = append(out, models.FieldError{
			Field:   strings.ToLower(f.Field()),
			Code:    code,
			Message: f.Error(),
		})
	}
	return out
}

func jsonTagName(sf reflect.StructField) string {
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return sf.Name
	default:
		return name
	}
}

func isStruct(obj any) bool {
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}
