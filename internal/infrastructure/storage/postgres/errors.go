package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"stockroom/internal/core/apperror"
)

// PostgreSQL error codes pattern-matched into friendlier classifications.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// ClassifyError maps low-level database errors to application errors.
// Unrecognized errors pass through unchanged for the caller to wrap.
func ClassifyError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return apperror.NewDuplicate(entity, pgErr.ConstraintName, "").WithCause(err)
	case codeForeignKeyViolation:
		return apperror.NewConflict("record is referenced by other records").
			WithDetail("entity", entity).
			WithDetail("constraint", pgErr.ConstraintName).
			WithCause(err)
	case codeCheckViolation:
		return apperror.NewValidation("value violates a database constraint").
			WithDetail("entity", entity).
			WithDetail("constraint", pgErr.ConstraintName).
			WithCause(err)
	}
	return err
}
