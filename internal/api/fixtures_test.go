// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/catalog/internal/core/product"
	"github.com/taibuivan/catalog/internal/core/section"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/users/auth"
	"github.com/taibuivan/catalog/pkg/pointer"
)

// catalogStore backs both catalog repositories with one lock so the product
// foreign key and the section delete restriction hold together.
type catalogStore struct {
	mu       sync.Mutex
	nextID   int64
	sections map[int64]*section.Section
	products map[int64]*product.Product
}

func newCatalogStore() *catalogStore {
	return &catalogStore{sections: map[int64]*section.Section{}, products: map[int64]*product.Product{}}
}

func (store *catalogStore) ListSections(context.Context) ([]*section.Section, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	sections := []*section.Section{}
	for _, s := range store.sections {
		copied := *s
		sections = append(sections, &copied)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })
	return sections, nil
}

func (store *catalogStore) GetSection(_ context.Context, id int64) (*section.Section, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	s, found := store.sections[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (store *catalogStore) SectionExists(_ context.Context, id int64) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	_, found := store.sections[id]
	return found, nil
}

func (store *catalogStore) CreateSection(_ context.Context, s *section.Section) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.sections {
		if existing.Name == s.Name {
			return dberr.ErrUniqueViolation
		}
	}
	store.nextID++
	s.ID = store.nextID
	copied := *s
	store.sections[s.ID] = &copied
	return nil
}

func (store *catalogStore) UpdateSection(_ context.Context, id int64, input section.UpdateInput) (*section.Section, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, found := store.sections[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	current.Name = pointer.Or(input.Name, current.Name)
	copied := *current
	return &copied, nil
}

func (store *catalogStore) DeleteSection(_ context.Context, id int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, found := store.sections[id]; !found {
		return dberr.ErrNotFound
	}
	for _, p := range store.products {
		if p.SectionID == id {
			return dberr.ErrForeignKeyViolation
		}
	}
	delete(store.sections, id)
	return nil
}

// productStore exposes the store as a [product.Repository].
type productStore struct{ *catalogStore }

func (store productStore) ListProducts(context.Context) ([]*product.Product, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	list := []*product.Product{}
	for _, p := range store.products {
		copied := *p
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (store productStore) GetProduct(_ context.Context, id int64) (*product.Product, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	p, found := store.products[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (store productStore) CreateProduct(_ context.Context, p *product.Product) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, found := store.sections[p.SectionID]; !found {
		return dberr.ErrForeignKeyViolation
	}
	store.nextID++
	p.ID = store.nextID
	copied := *p
	store.products[p.ID] = &copied
	return nil
}

func (store productStore) UpdateProduct(_ context.Context, id int64, input product.UpdateInput) (*product.Product, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, found := store.products[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	current.Name = pointer.Or(input.Name, current.Name)
	current.Price = pointer.Or(input.Price, current.Price)
	current.SectionID = pointer.Or(input.SectionID, current.SectionID)
	copied := *current
	return &copied, nil
}

func (store productStore) DeleteProduct(_ context.Context, id int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, found := store.products[id]; !found {
		return dberr.ErrNotFound
	}
	delete(store.products, id)
	return nil
}

// accounts is an in-memory [auth.UserRepository].
type accounts struct {
	mu     sync.Mutex
	byName map[string]*auth.User
}

func (repository *accounts) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user, found := repository.byName[username]
	if !found {
		return nil, dberr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (repository *accounts) Upsert(_ context.Context, user *auth.User) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	user.ID = int64(len(repository.byName) + 1)
	copied := *user
	repository.byName[user.Username] = &copied
	return nil
}
