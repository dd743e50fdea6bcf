// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListSections(ctx context.Context) ([]*Section, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.CatalogSection.ID, schema.CatalogSection.Name,
		schema.CatalogSection.Table, schema.CatalogSection.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sections")
	}
	defer rows.Close()

	sections := []*Section{}
	for rows.Next() {
		s := &Section{}
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, dberr.Wrap(err, "scan_section")
		}
		sections = append(sections, s)
	}

	return sections, dberr.Wrap(rows.Err(), "list_sections")
}

func (repository *PostgresRepository) GetSection(ctx context.Context, id int64) (*Section, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.CatalogSection.ID, schema.CatalogSection.Name,
		schema.CatalogSection.Table, schema.CatalogSection.ID,
	)

	s := &Section{}
	if err := repository.db.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name); err != nil {
		return nil, dberr.Wrap(err, "get_section")
	}
	return s, nil
}

func (repository *PostgresRepository) SectionExists(ctx context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CatalogSection.Table, schema.CatalogSection.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "section_exists")
	}
	return exists, nil
}

func (repository *PostgresRepository) CreateSection(ctx context.Context, s *Section) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.CatalogSection.Table, schema.CatalogSection.Name, schema.CatalogSection.ID,
	)

	err := repository.db.QueryRow(ctx, query, s.Name).Scan(&s.ID)
	return dberr.Wrap(err, "create_section")
}

func (repository *PostgresRepository) UpdateSection(ctx context.Context, id int64, input UpdateInput) (*Section, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s)
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CatalogSection.Table,
		schema.CatalogSection.Name, schema.CatalogSection.Name,
		schema.CatalogSection.ID,
		schema.CatalogSection.ID, schema.CatalogSection.Name,
	)

	s := &Section{}
	if err := repository.db.QueryRow(ctx, query, id, input.Name).Scan(&s.ID, &s.Name); err != nil {
		return nil, dberr.Wrap(err, "update_section")
	}
	return s, nil
}

func (repository *PostgresRepository) DeleteSection(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogSection.Table, schema.CatalogSection.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_section")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
