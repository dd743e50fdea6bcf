// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/catalog/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrForeignKeyViolation is returned when the store rejects a write because
	// a referenced row is missing, or a referencing row still exists.
	ErrForeignKeyViolation = apperr.ConstraintViolation("Operation violates a reference constraint")

	// ErrUniqueViolation is returned when a write collides with a unique index.
	ErrUniqueViolation = apperr.Conflict("Resource already exists")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Repositories return the sentinels above unchanged so services can match them
// with [errors.Is] and translate them into domain errors.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Integrity constraints, classified by SQLSTATE
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			return ErrForeignKeyViolation
		case pgerrcode.UniqueViolation:
			return ErrUniqueViolation
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	slog.Debug("db_query_failed", slog.String("action", action), slog.Any("error", err))
	return apperr.Internal(err)
}
