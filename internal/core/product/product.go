// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package product manages catalog products. Every product belongs to exactly
// one existing section.
package product

import "github.com/taibuivan/catalog/internal/platform/apperr"

// Product is a priced catalog item.
type Product struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	SectionID int64   `json:"sectionId"`
}

// CreateInput is the payload of a product creation.
type CreateInput struct {
	Name      string  `json:"name"      validate:"required,min=1"`
	Price     float64 `json:"price"     validate:"required,gt=0"`
	SectionID int64   `json:"sectionId" validate:"required,gt=0"`
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	Name      *string  `json:"name"      validate:"omitempty,min=1"`
	Price     *float64 `json:"price"     validate:"omitempty,gt=0"`
	SectionID *int64   `json:"sectionId" validate:"omitempty,gt=0"`
}

var (
	// ErrNotFound is returned when no product has the requested id.
	ErrNotFound = apperr.NotFound("Product")

	// ErrSectionNotFound is returned when the referenced section does not exist.
	ErrSectionNotFound = apperr.NotFound("Section")

	// ErrNameTaken is returned when another product already uses the name.
	ErrNameTaken = apperr.Conflict("Product name already exists")
)
