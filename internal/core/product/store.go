// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// Repository is the product store. Implementations return the dberr sentinels
// for missing rows and constraint violations.
type Repository interface {
	ListProducts(ctx context.Context) ([]*Product, error)
	GetProduct(ctx context.Context, id int64) (*Product, error)
	CreateProduct(ctx context.Context, product *Product) error
	UpdateProduct(ctx context.Context, id int64, input UpdateInput) (*Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// SectionChecker answers whether a section exists.
type SectionChecker interface {
	SectionExists(ctx context.Context, id int64) (bool, error)
}
