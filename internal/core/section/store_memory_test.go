// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section_test

import (
	"context"
	"sort"
	"sync"

	"github.com/taibuivan/catalog/internal/core/section"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

// memoryRepository is an in-memory [section.Repository] that enforces the
// same unique and reference constraints as the PostgreSQL schema.
type memoryRepository struct {
	mu         sync.Mutex
	nextID     int64
	sections   map[int64]*section.Section
	referenced map[int64]bool
	writes     int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{sections: map[int64]*section.Section{}, referenced: map[int64]bool{}}
}

func (repository *memoryRepository) ListSections(context.Context) ([]*section.Section, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	sections := []*section.Section{}
	for _, s := range repository.sections {
		copied := *s
		sections = append(sections, &copied)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].ID < sections[j].ID })
	return sections, nil
}

func (repository *memoryRepository) GetSection(_ context.Context, id int64) (*section.Section, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	s, found := repository.sections[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (repository *memoryRepository) SectionExists(_ context.Context, id int64) (bool, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	_, found := repository.sections[id]
	return found, nil
}

func (repository *memoryRepository) CreateSection(_ context.Context, s *section.Section) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if repository.nameTaken(s.Name, 0) {
		return dberr.ErrUniqueViolation
	}

	repository.nextID++
	s.ID = repository.nextID
	copied := *s
	repository.sections[s.ID] = &copied
	repository.writes++
	return nil
}

func (repository *memoryRepository) UpdateSection(_ context.Context, id int64, input section.UpdateInput) (*section.Section, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	s, found := repository.sections[id]
	if !found {
		return nil, dberr.ErrNotFound
	}
	if input.Name != nil {
		if repository.nameTaken(*input.Name, id) {
			return nil, dberr.ErrUniqueViolation
		}
		s.Name = *input.Name
	}
	repository.writes++
	copied := *s
	return &copied, nil
}

func (repository *memoryRepository) DeleteSection(_ context.Context, id int64) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if _, found := repository.sections[id]; !found {
		return dberr.ErrNotFound
	}
	if repository.referenced[id] {
		return dberr.ErrForeignKeyViolation
	}
	delete(repository.sections, id)
	repository.writes++
	return nil
}

func (repository *memoryRepository) nameTaken(name string, except int64) bool {
	for id, s := range repository.sections {
		if id != except && s.Name == name {
			return true
		}
	}
	return false
}
