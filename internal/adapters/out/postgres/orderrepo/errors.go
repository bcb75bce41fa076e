package orderrepo

import (
	"errors"

	"ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// Postgres error codes of lost races: serialization_failure,
// deadlock_detected and lock_not_available.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
)

// translateError maps driver errors onto the errs taxonomy. Lost lock races
// become ConcurrentModificationError, everything else is wrapped with the
// operation name.
func translateError(err error, entity string, id any, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(entity, id)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
			return errs.NewConcurrentModificationErrorWithCause(entity, id, err)
		}
	}
	return pkgerrors.Wrapf(err, "%s %s", op, entity)
}
