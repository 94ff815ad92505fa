package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const quoteColumns = `id, client_name, client_email, client_phone, service_type, space_type,
	bedrooms, bathrooms, floors, cleaning_level, zip_code, estimated_hours, status, lead_status,
	scheduled_date, assigned_cleaner_id, pending_attempt_id, created_at, updated_at`

// querier is what both *pgxpool.Pool and pgx.Tx offer.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type QuoteRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(pool *pgxpool.Pool) *QuoteRepository {
	return &QuoteRepository{pool: pool}
}

// Create inserts a quote. Used to seed local databases and by tests.
func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO quotes (id, client_name, client_email, client_phone, service_type, space_type,
			bedrooms, bathrooms, floors, cleaning_level, zip_code, estimated_hours, status, lead_status,
			scheduled_date, assigned_cleaner_id, pending_attempt_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		q.ID, q.ClientName, q.ClientEmail, q.ClientPhone, q.ServiceType, q.Space.Type,
		q.Space.Bedrooms, q.Space.Bathrooms, q.Space.Floors, q.CleaningLevel, q.ZipCode, q.EstimatedHours,
		string(q.Status), string(q.LeadStatus), q.ScheduledAt, nullable(q.AssignedCleanerID), nullable(q.PendingAttemptID),
		q.CreatedAt, q.UpdatedAt)
	return err
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	return getQuote(ctx, r.pool, id)
}

func (r *QuoteRepository) ClearAssignment(ctx context.Context, id string) (entities.Quote, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE quotes
		SET status = 'pending', assigned_cleaner_id = NULL, scheduled_date = NULL, updated_at = $2
		WHERE id = $1 AND pending_attempt_id IS NULL AND status IN ('pending', 'assigned')
		RETURNING `+quoteColumns, id, time.Now().UTC())

	q, err := scanQuote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, explainQuoteConflict(ctx, r.pool, id)
	}
	return q, err
}

func (r *QuoteRepository) UpdateLeadStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Quote, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE quotes SET lead_status = $2, updated_at = $3
		WHERE id = $1
		RETURNING `+quoteColumns, id, string(status), time.Now().UTC())

	q, err := scanQuote(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, interfaces.ErrQuoteNotFound
	}
	return q, err
}

func getQuote(ctx context.Context, db querier, id string) (entities.Quote, error) {
	q, err := scanQuote(db.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Quote{}, interfaces.ErrQuoteNotFound
	}
	return q, err
}

// applyQuoteMutation runs the quote half of an attempt write inside tx.
func applyQuoteMutation(ctx context.Context, tx pgx.Tx, m entities.QuoteMutation, now time.Time) error {
	var (
		tag pgconn.CommandTag
		err error
	)
	switch m.Kind {
	case entities.QuoteMutationNone:
		return nil
	case entities.QuoteMutationAssign:
		tag, err = tx.Exec(ctx, `
			UPDATE quotes
			SET status = 'assigned', assigned_cleaner_id = $2, scheduled_date = $3, pending_attempt_id = $4, updated_at = $5
			WHERE id = $1 AND pending_attempt_id IS NULL AND status IN ('pending', 'assigned')`,
			m.QuoteID, m.ProviderID, m.ScheduledAt.UTC(), m.AttemptID, now.UTC())
		if err == nil && tag.RowsAffected() == 0 {
			return explainQuoteConflict(ctx, tx, m.QuoteID)
		}
	case entities.QuoteMutationConfirm:
		tag, err = tx.Exec(ctx, `UPDATE quotes SET pending_attempt_id = NULL, updated_at = $2 WHERE id = $1`,
			m.QuoteID, now.UTC())
	case entities.QuoteMutationRelease:
		tag, err = tx.Exec(ctx, `
			UPDATE quotes
			SET status = 'pending', assigned_cleaner_id = NULL, scheduled_date = NULL, pending_attempt_id = NULL, updated_at = $2
			WHERE id = $1`,
			m.QuoteID, now.UTC())
	default:
		return fmt.Errorf("unknown quote mutation %q", m.Kind)
	}
	if err != nil {
		return mapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return interfaces.ErrQuoteNotFound
	}
	return nil
}

// explainQuoteConflict reads the quote to say why a guarded update matched
// no rows.
func explainQuoteConflict(ctx context.Context, db querier, id string) error {
	q, err := getQuote(ctx, db, id)
	if err != nil {
		return err
	}
	if q.PendingAttemptID != "" {
		return interfaces.ErrPendingAttemptExists
	}
	return fmt.Errorf("%w: status %s", interfaces.ErrQuoteNotAssignable, q.Status)
}

func scanQuote(row pgx.Row) (entities.Quote, error) {
	var (
		q                  entities.Quote
		status, leadStatus string
		cleaner, pending   *string
	)
	err := row.Scan(
		&q.ID, &q.ClientName, &q.ClientEmail, &q.ClientPhone, &q.ServiceType, &q.Space.Type,
		&q.Space.Bedrooms, &q.Space.Bathrooms, &q.Space.Floors, &q.CleaningLevel, &q.ZipCode, &q.EstimatedHours,
		&status, &leadStatus, &q.ScheduledAt, &cleaner, &pending, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		return entities.Quote{}, err
	}
	q.Status = entities.QuoteStatus(status)
	q.LeadStatus = entities.LeadStatus(leadStatus)
	if cleaner != nil {
		q.AssignedCleanerID = *cleaner
	}
	if pending != nil {
		q.PendingAttemptID = *pending
	}
	q.CreatedAt = q.CreatedAt.UTC()
	q.UpdatedAt = q.UpdatedAt.UTC()
	if q.ScheduledAt != nil {
		at := q.ScheduledAt.UTC()
		q.ScheduledAt = &at
	}
	return q, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
