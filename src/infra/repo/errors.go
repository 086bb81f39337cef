package repo

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"staffrecords/src/core/domain"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// mapWriteError turns constraint violations into domain conflicts and wraps
// everything else with the failed action.
func mapWriteError(action string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return domain.NewConflictError(fmt.Sprintf("%s: foreign key %s violated", action, pgErr.ConstraintName))
		case pgUniqueViolation:
			return domain.NewConflictError(fmt.Sprintf("%s: unique constraint %s violated", action, pgErr.ConstraintName))
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}
