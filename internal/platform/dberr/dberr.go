// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/tubecache/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")

	// ErrConflict is returned when an idempotent insert finds the row already
	// committed. Callers re-read and use the winning row.
	ErrConflict = apperr.Conflict("Resource already exists")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations carry a Postgres SQLSTATE
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			// A concurrent importer committed the same id first. The caller
			// re-reads and returns the winning row (idempotent get-or-import).
			return apperr.Conflict("Resource already exists")
		case pgerrcode.ForeignKeyViolation:
			// Parent entity missing at insert time. The graph resolver is
			// supposed to prevent this; treat it as a per-item defect.
			return apperr.ValidationError("Referenced entity does not exist")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// IsConflict reports whether err is the unique-violation mapping.
func IsConflict(err error) bool {
	return apperr.IsCode(err, "CONFLICT")
}

// IsNotFound reports whether err is the not-found mapping.
func IsNotFound(err error) bool {
	return apperr.IsCode(err, "NOT_FOUND")
}
