// Package pgerrs turns PostgreSQL driver errors into the errs kinds the core understands.
package pgerrs

import (
	"errors"
	"fmt"

	"errands/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNotNullViolation     = "23502"
	classDataException       = "22"
)

// Translate classifies err raised while writing entity during operation.
// Lost races become InvalidStatusTransitionError, constraint violations become
// validation or not-found errors, and anything else a StorageError.
func Translate(entity, operation string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return errs.NewStorageError(operation+" "+entity, err)
	}

	switch {
	case pgErr.Code == codeSerializationFailure, pgErr.Code == codeDeadlockDetected:
		return errs.NewConcurrentUpdateError(entity, err)
	case pgErr.Code == codeUniqueViolation:
		return errs.NewValueIsInvalidErrorWithCause(entity, fmt.Errorf("already exists (%s)", pgErr.ConstraintName))
	case pgErr.Code == codeForeignKeyViolation:
		return errs.NewObjectNotFoundErrorWithCause(entity, pgErr.ConstraintName, errors.New("referenced row is missing"))
	case pgErr.Code == codeCheckViolation, pgErr.Code == codeNotNullViolation:
		return errs.NewValueIsInvalidErrorWithCause(entity, fmt.Errorf("violates %s", pgErr.ConstraintName))
	case len(pgErr.Code) == 5 && pgErr.Code[:2] == classDataException:
		return errs.NewValueIsInvalidErrorWithCause(entity, errors.New(pgErr.Message))
	default:
		return errs.NewStorageError(operation+" "+entity, err)
	}
}
