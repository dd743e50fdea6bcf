// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// # Architecture
//
// Two styles are offered. Request shapes declare their rules as struct tags and
// are checked with [Struct]; ad-hoc checks use the fluent [Validator]. Both
// produce the same VALIDATION_ERROR with per-field details, and handlers run
// them before any payload reaches a service.
package validate

import "github.com/taibuivan/catalog/internal/platform/apperr"

// MsgValidationFailed is the top-level message of every validation error.
const MsgValidationFailed = "Validation failed"

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the value is empty. Whitespace counts as a value, so
// credentials reach the credential check unchanged.
func (v *Validator) Required(field, value string) *Validator {
	if value == "" {
		v.add(field, "This field is required")
	}
	return v
}

// Positive fails if the value is not strictly greater than zero.
func (v *Validator) Positive(field string, value int64) *Validator {
	if value <= 0 {
		v.add(field, "Must be a positive integer")
	}
	return v
}

// Err returns a [apperr.AppError] (VALIDATION_ERROR) if any rules failed,
// or nil if all rules passed.
//
// Call it at the end of the chain.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(MsgValidationFailed, v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Details returns the field errors collected so far.
func (v *Validator) Details() []apperr.FieldError {
	return v.errs
}

// add appends a [apperr.FieldError] to the internal slice.
func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// RequiredError is a shortcut to create a single-field validation error.
func RequiredError(field, message string) *apperr.AppError {
	return apperr.ValidationError(MsgValidationFailed, apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
