package postgres

import (
	"errors"

	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"

	onePendingPerQuote = "assignment_attempts_one_pending_per_quote"
	attemptsPrimaryKey = "assignment_attempts_pkey"
	attemptQuoteFK     = "assignment_attempts_quote_id_fkey"
	attemptProviderFK  = "assignment_attempts_provider_id_fkey"
)

// mapPgError turns constraint violations into the store's error taxonomy.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		switch pgErr.ConstraintName {
		case onePendingPerQuote:
			return interfaces.ErrPendingAttemptExists
		case attemptsPrimaryKey:
			return interfaces.ErrDuplicate
		}
	case foreignKeyViolation:
		switch pgErr.ConstraintName {
		case attemptQuoteFK:
			return interfaces.ErrQuoteNotFound
		case attemptProviderFK:
			return interfaces.ErrProviderNotFound
		}
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
