// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/metrics"
	"github.com/taibuivan/catalog/pkg/pointer"
)

type Service struct {
	repo     Repository
	sections SectionChecker
	logger   *slog.Logger
}

func NewService(repo Repository, sections SectionChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		sections: sections,
		logger:   logger,
	}
}

func (service *Service) ListProducts(ctx context.Context) ([]*Product, error) {
	return service.repo.ListProducts(ctx)
}

func (service *Service) GetProduct(ctx context.Context, id int64) (*Product, error) {
	p, err := service.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

// CreateProduct stores a new product in an existing section.
//
// The section is checked first so the common mistake is reported without a
// write; the foreign key still decides when a section disappears concurrently.
func (service *Service) CreateProduct(ctx context.Context, input CreateInput) (*Product, error) {
	if err := service.requireSection(ctx, input.SectionID); err != nil {
		return nil, err
	}

	p := &Product{Name: input.Name, Price: input.Price, SectionID: input.SectionID}
	if err := service.repo.CreateProduct(ctx, p); err != nil {
		return nil, translate(err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "create").Inc()
	service.logger.InfoContext(ctx, "product_created",
		slog.Int64("product_id", p.ID),
		slog.Int64("section_id", p.SectionID),
	)
	return p, nil
}

// UpdateProduct applies a partial update. The product must exist, and a moved
// product's new section must exist too.
func (service *Service) UpdateProduct(ctx context.Context, id int64, input UpdateInput) (*Product, error) {
	current, err := service.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if target := pointer.Or(input.SectionID, current.SectionID); target != current.SectionID {
		if err := service.requireSection(ctx, target); err != nil {
			return nil, err
		}
	}

	p, err := service.repo.UpdateProduct(ctx, id, input)
	if err != nil {
		return nil, translate(err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "update").Inc()
	service.logger.InfoContext(ctx, "product_updated", slog.Int64("product_id", id))
	return p, nil
}

func (service *Service) DeleteProduct(ctx context.Context, id int64) error {
	if err := service.repo.DeleteProduct(ctx, id); err != nil {
		return translate(err)
	}

	metrics.CatalogWritesTotal.WithLabelValues("product", "delete").Inc()
	service.logger.WarnContext(ctx, "product_deleted", slog.Int64("product_id", id))
	return nil
}

func (service *Service) requireSection(ctx context.Context, sectionID int64) error {
	exists, err := service.sections.SectionExists(ctx, sectionID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrSectionNotFound
	}
	return nil
}

// translate maps store sentinels to product errors. The only reference a
// product write can break is its section.
func translate(err error) error {
	switch {
	case errors.Is(err, dberr.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, dberr.ErrUniqueViolation):
		return ErrNameTaken
	case errors.Is(err, dberr.ErrForeignKeyViolation):
		return ErrSectionNotFound
	default:
		return err
	}
}
