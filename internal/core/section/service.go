// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/metrics"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListSections(ctx context.Context) ([]*Section, error) {
	return service.repo.ListSections(ctx)
}

func (service *Service) GetSection(ctx context.Context, id int64) (*Section, error) {
	s, err := service.repo.GetSection(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// SectionExists reports whether a section with id exists.
func (service *Service) SectionExists(ctx context.Context, id int64) (bool, error) {
	return service.repo.SectionExists(ctx, id)
}

func (service *Service) CreateSection(ctx context.Context, input CreateInput) (*Section, error) {
	s := &Section{Name: input.Name}
	if err := service.repo.CreateSection(ctx, s); err != nil {
		return nil, translate(err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("section", "create").Inc()
	service.logger.InfoContext(ctx, "section_created", slog.Int64("section_id", s.ID), slog.String("name", s.Name))
	return s, nil
}

// UpdateSection applies a partial update. A missing section is reported before
// anything is written.
func (service *Service) UpdateSection(ctx context.Context, id int64, input UpdateInput) (*Section, error) {
	if _, err := service.GetSection(ctx, id); err != nil {
		return nil, err
	}

	s, err := service.repo.UpdateSection(ctx, id, input)
	if err != nil {
		return nil, translate(err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("section", "update").Inc()
	service.logger.InfoContext(ctx, "section_updated", slog.Int64("section_id", id))
	return s, nil
}

// DeleteSection removes a section. Sections that products still reference are
// kept and [ErrInUse] is returned.
func (service *Service) DeleteSection(ctx context.Context, id int64) error {
	if err := service.repo.DeleteSection(ctx, id); err != nil {
		return translate(err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("section", "delete").Inc()
	service.logger.WarnContext(ctx, "section_deleted", slog.Int64("section_id", id))
	return nil
}

// translate maps store sentinels to section errors.
func translate(err error) error {
	switch {
	case errors.Is(err, dberr.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, dberr.ErrUniqueViolation):
		return ErrNameTaken
	case errors.Is(err, dberr.ErrForeignKeyViolation):
		return ErrInUse
	default:
		return err
	}
}
