// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package section manages the catalog sections that group products.
package section

import "github.com/taibuivan/catalog/internal/platform/apperr"

// Section is a named group of products.
type Section struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateInput is the payload of a section creation.
type CreateInput struct {
	Name string `json:"name" validate:"required,min=1"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name *string `json:"name" validate:"omitempty,min=1"`
}

var (
	// ErrNotFound is returned when no section has the requested id.
	ErrNotFound = apperr.NotFound("Section")

	// ErrNameTaken is returned when another section already uses the name.
	ErrNameTaken = apperr.Conflict("Section name already exists")

	// ErrInUse is returned when deleting a section that products still reference.
	ErrInUse = apperr.ConstraintViolation("Section still has products")
)
