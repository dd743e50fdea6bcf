// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
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

// columns is the select list matching [scanProduct].
var columns = strings.Join(schema.CatalogProduct.Columns(), ", ")

func scanProduct(row pgx.Row) (*Product, error) {
	p := &Product{}
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.SectionID); err != nil {
		return nil, err
	}
	return p, nil
}

func (repository *PostgresRepository) ListProducts(ctx context.Context) ([]*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		columns, schema.CatalogProduct.Table, schema.CatalogProduct.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_products")
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_product")
		}
		products = append(products, p)
	}

	return products, dberr.Wrap(rows.Err(), "list_products")
}

func (repository *PostgresRepository) GetProduct(ctx context.Context, id int64) (*Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		columns, schema.CatalogProduct.Table, schema.CatalogProduct.ID,
	)

	p, err := scanProduct(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_product")
	}
	return p, nil
}

func (repository *PostgresRepository) CreateProduct(ctx context.Context, p *Product) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s
	`,
		schema.CatalogProduct.Table,
		schema.CatalogProduct.Name, schema.CatalogProduct.Price, schema.CatalogProduct.SectionID,
		schema.CatalogProduct.ID,
	)

	err := repository.db.QueryRow(ctx, query, p.Name, p.Price, p.SectionID).Scan(&p.ID)
	return dberr.Wrap(err, "create_product")
}

func (repository *PostgresRepository) UpdateProduct(ctx context.Context, id int64, input UpdateInput) (*Product, error) {
	table := schema.CatalogProduct
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s)
		WHERE %s = $1
		RETURNING %s
	`,
		table.Table,
		table.Name, table.Name,
		table.Price, table.Price,
		table.SectionID, table.SectionID,
		table.ID,
		columns,
	)

	p, err := scanProduct(repository.db.QueryRow(ctx, query, id, input.Name, input.Price, input.SectionID))
	if err != nil {
		return nil, dberr.Wrap(err, "update_product")
	}
	return p, nil
}

func (repository *PostgresRepository) DeleteProduct(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CatalogProduct.Table, schema.CatalogProduct.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
