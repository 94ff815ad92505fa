package postgres

import (
	"context"
	"errors"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CleanerRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IProviderRepository = (*CleanerRepository)(nil)

func NewCleanerRepository(pool *pgxpool.Pool) *CleanerRepository {
	return &CleanerRepository{pool: pool}
}

// Create inserts a cleaner. The directory is owned elsewhere; this exists
// for seeding.
func (r *CleanerRepository) Create(ctx context.Context, p entities.Provider) error {
	status := p.Status
	if status == "" {
		status = entities.ProviderStatusAvailable
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cleaners (id, name, email, phone, services, rating, availability, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Name, p.Email, p.Phone, emptyIfNil(p.Services), p.Rating, emptyIfNil(p.Availability), string(status))
	return err
}

func (r *CleanerRepository) GetByID(ctx context.Context, id string) (entities.Provider, error) {
	var (
		p      entities.Provider
		status string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, services, rating, availability, status
		FROM cleaners WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Services, &p.Rating, &p.Availability, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Provider{}, interfaces.ErrProviderNotFound
	}
	if err != nil {
		return entities.Provider{}, err
	}
	p.Status = entities.ProviderStatus(status)
	return p, nil
}

// AddSlot publishes a free window for a cleaner.
func (r *CleanerRepository) AddSlot(ctx context.Context, cleanerID, serviceID, zip, date, start, end string, distance float64) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO cleaner_slots (cleaner_id, service_id, zip_code, slot_date, start_time, end_time, distance)
		VALUES ($1, $2, $3, $4::text::date, $5::text::time, $6::text::time, $7)`,
		cleanerID, serviceID, zip, date, start, end, distance)
	return mapPgError(err)
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// AvailabilityIndex delegates to the find_available_cleaners function, which
// returns one row per cleaner ordered by distance and then id.
type AvailabilityIndex struct {
	pool *pgxpool.Pool
}

var _ interfaces.IAvailabilityIndex = (*AvailabilityIndex)(nil)

func NewAvailabilityIndex(pool *pgxpool.Pool) *AvailabilityIndex {
	return &AvailabilityIndex{pool: pool}
}

func (i *AvailabilityIndex) FindCandidates(ctx context.Context, c entities.MatchCriteria) ([]entities.Candidate, error) {
	rows, err := i.pool.Query(ctx, `
		SELECT provider_id, provider_name, provider_rating, slot_distance
		FROM find_available_cleaners($1::text::date, $2::text::time, $3::text::time, $4, $5)`,
		c.ServiceDate, c.StartTime, c.EndTime, c.ZipCode, c.ServiceID)
	if err != nil {
		return nil, err
	}

	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Candidate, error) {
		var cand entities.Candidate
		err := row.Scan(&cand.ProviderID, &cand.Name, &cand.Rating, &cand.Distance)
		return cand, err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Candidate{}
	}
	return out, nil
}
