// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/catalog/internal/core/product"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// sectionSet stands in for the section table: it answers existence checks
// and backs the foreign key of [memoryRepository].
type sectionSet struct {
	mu  sync.Mutex
	ids map[int64]bool

	// vanishOnCheck deletes a section right after reporting it present,
	// reproducing a concurrent delete between check and write.
	vanishOnCheck bool

	checks int
}

func (set *sectionSet) SectionExists(_ context.Context, id int64) (bool, error) {
	set.mu.Lock()
	defer set.mu.Unlock()

	set.checks++
	exists := set.ids[id]
	if exists && set.vanishOnCheck {
		delete(set.ids, id)
	}
	return exists, nil
}

func (set *sectionSet) has(id int64) bool {
	set.mu.Lock()
	defer set.mu.Unlock()
	return set.ids[id]
}

// memoryRepository is an in-memory [product.Repository] enforcing the unique
// name and section reference constraints of the schema.
type memoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]*product.Product
	sections *sectionSet
	writes   int
}

func newMemoryRepository(sections *sectionSet) *memoryRepository {
	return &memoryRepository{products: map[int64]*product.Product{}, sections: sections}
}

func (repository *memoryRepository) ListProducts(context.Context) ([]*product.Product, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	products := []*product.Product{}
	for _, p := range repository.products {
		copied := *p
		products = append(products, &copied)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (repository *memoryRepository) GetProduct(_ context.Context, id int64) (*product.Product, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	p, found := repository.products[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (repository *memoryRepository) CreateProduct(_ context.Context, p *product.Product) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if !repository.sections.has(p.SectionID) {
		return dberr.ErrForeignKeyViolation
	}
	if repository.nameTaken(p.Name, 0) {
		return dberr.ErrUniqueViolation
	}

	repository.nextID++
	p.ID = repository.nextID
	copied := *p
	repository.products[p.ID] = &copied
	repository.writes++
	return nil
}

func (repository *memoryRepository) UpdateProduct(_ context.Context, id int64, input product.UpdateInput) (*product.Product, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	current, found := repository.products[id]
	if !found {
		return nil, dberr.ErrNotFound
	}

	next := *current
	if input.Name != nil {
		if repository.nameTaken(*input.Name, id) {
			return nil, dberr.ErrUniqueViolation
		}
		next.Name = *input.Name
	}
	if input.Price != nil {
		next.Price = *input.Price
	}
	if input.SectionID != nil {
		if !repository.sections.has(*input.SectionID) {
			return nil, dberr.ErrForeignKeyViolation
		}
		next.SectionID = *input.SectionID
	}

	repository.products[id] = &next
	repository.writes++
	copied := next
	return &copied, nil
}

func (repository *memoryRepository) DeleteProduct(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, found := repository.products[id]; !found {
		return dberr.ErrNotFound
	}
	delete(repository.products, id)
	repository.writes++
	return nil
}

func (repository *memoryRepository) nameTaken(name string, except int64) bool {
	for id, p := range repository.products {
		if id != except && p.Name == name {
			return true
		}
	}
	return false
}
