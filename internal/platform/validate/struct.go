// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

// structValidator is safe for concurrent use and caches struct metadata,
// so a single instance serves the whole process.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names, which is what clients actually send.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	return v
}

// Struct checks target against its `validate` struct tags.
//
// It returns nil when every rule passes, and a VALIDATION_ERROR [apperr.AppError]
// listing one [apperr.FieldError] per failed rule otherwise.
//
// # Example
//
//	type createInput struct {
//	    Name  string  `json:"name"  validate:"required,min=1"`
//	    Price float64 `json:"price" validate:"gt=0"`
//	}
func Struct(target any) error {
	err := structValidator.Struct(target)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// InvalidValidationError: a programming error, not bad input.
		return apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, apperr.FieldError{
			Field:   fieldPath(fieldErr),
			Message: fieldMessage(fieldErr),
		})
	}

	return apperr.ValidationError(MsgValidationFailed, details...)
}

// fieldPath strips the root struct name from the namespace so nested fields
// read as "messages[0].role".
func fieldPath(fieldErr validator.FieldError) string {
	_, path, found := strings.Cut(fieldErr.Namespace(), ".")
	if !found {
		return fieldErr.Field()
	}
	return path
}

// fieldMessage converts a single failed rule into a human-readable message.
func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Minimum %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("Must contain at least %s items", fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("Maximum %s characters", fieldErr.Param())
		}
		return fmt.Sprintf("Must contain at most %s items", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("Must be greater than %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fieldErr.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Failed the %q rule", fieldErr.Tag())
	}
}
