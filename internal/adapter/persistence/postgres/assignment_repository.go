package postgres

import (
	"context"
	"errors"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const attemptColumns = `id, quote_id, provider_id, scheduled_date, scheduled_time, status,
	response_deadline, responded_late, created_at, updated_at`

// AssignmentRepository stores attempts in PostgreSQL.
//
// The partial unique index assignment_attempts_one_pending_per_quote backs the
// one-pending-per-quote rule even if the quote guard column is bypassed.
type AssignmentRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IAssignmentRepository = (*AssignmentRepository)(nil)

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

func (r *AssignmentRepository) Create(ctx context.Context, a entities.AssignmentAttempt, quote entities.QuoteMutation) (entities.AssignmentAttempt, error) {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		// The quote goes first so a guard rejection wins over the index.
		if err := applyQuoteMutation(ctx, tx, quote, a.CreatedAt); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment_attempts (`+attemptColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			a.ID, a.QuoteID, a.ProviderID, a.ScheduledDate, a.ScheduledTime, string(a.Status),
			a.ResponseDeadline.UTC(), a.RespondedLate, a.CreatedAt.UTC(), a.UpdatedAt.UTC())
		return mapPgError(err)
	})
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}
	return a, nil
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id string) (entities.AssignmentAttempt, error) {
	a, err := scanAttempt(r.pool.QueryRow(ctx, `SELECT `+attemptColumns+` FROM assignment_attempts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.AssignmentAttempt{}, interfaces.ErrAttemptNotFound
	}
	return a, err
}

func (r *AssignmentRepository) UpdateStatus(ctx context.Context, id string, from, to entities.AssignmentStatus, opts interfaces.TransitionOptions) (entities.AssignmentAttempt, error) {
	at := opts.At
	if at.IsZero() {
		at = time.Now()
	}

	var out entities.AssignmentAttempt
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		a, err := scanAttempt(tx.QueryRow(ctx, `
			UPDATE assignment_attempts
			SET status = $3, responded_late = responded_late OR $4, updated_at = $5
			WHERE id = $1 AND status = $2
			RETURNING `+attemptColumns,
			id, string(from), string(to), opts.Late, at.UTC()))
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM assignment_attempts WHERE id = $1)`, id).Scan(&exists); err != nil {
				return err
			}
			if !exists {
				return interfaces.ErrAttemptNotFound
			}
			return interfaces.ErrStatusMismatch
		}
		if err != nil {
			return mapPgError(err)
		}
		if err := applyQuoteMutation(ctx, tx, opts.Quote, at); err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}
	return out, nil
}

func (r *AssignmentRepository) FindPendingExpired(ctx context.Context, now time.Time) ([]entities.AssignmentAttempt, error) {
	return r.list(ctx, `
		SELECT `+attemptColumns+` FROM assignment_attempts
		WHERE status = 'pending' AND response_deadline < $1
		ORDER BY response_deadline, id`, now.UTC())
}

func (r *AssignmentRepository) FindPendingByQuote(ctx context.Context, quoteID string) (entities.AssignmentAttempt, bool, error) {
	a, err := scanAttempt(r.pool.QueryRow(ctx, `
		SELECT `+attemptColumns+` FROM assignment_attempts
		WHERE quote_id = $1 AND status = 'pending'`, quoteID))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.AssignmentAttempt{}, false, nil
	}
	if err != nil {
		return entities.AssignmentAttempt{}, false, err
	}
	return a, true, nil
}

func (r *AssignmentRepository) ListByQuote(ctx context.Context, quoteID string) ([]entities.AssignmentAttempt, error) {
	return r.list(ctx, `
		SELECT `+attemptColumns+` FROM assignment_attempts
		WHERE quote_id = $1
		ORDER BY created_at, id`, quoteID)
}

func (r *AssignmentRepository) list(ctx context.Context, sql string, args ...any) ([]entities.AssignmentAttempt, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.AssignmentAttempt{}
	for rows.Next() {
		a, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAttempt(row pgx.Row) (entities.AssignmentAttempt, error) {
	var (
		a      entities.AssignmentAttempt
		status string
	)
	err := row.Scan(&a.ID, &a.QuoteID, &a.ProviderID, &a.ScheduledDate, &a.ScheduledTime, &status,
		&a.ResponseDeadline, &a.RespondedLate, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}
	a.Status = entities.AssignmentStatus(status)
	a.ResponseDeadline = a.ResponseDeadline.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a, nil
}
