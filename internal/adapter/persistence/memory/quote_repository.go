package memory

import (
	"context"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

type QuoteRepository struct {
	store *Store
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(store *Store) *QuoteRepository {
	return &QuoteRepository{store: store}
}

func (r *QuoteRepository) GetByID(_ context.Context, id string) (entities.Quote, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return entities.Quote{}, interfaces.ErrQuoteNotFound
	}
	return q, nil
}

func (r *QuoteRepository) ClearAssignment(_ context.Context, id string) (entities.Quote, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return entities.Quote{}, interfaces.ErrQuoteNotFound
	}
	if q.PendingAttemptID != "" {
		return entities.Quote{}, interfaces.ErrPendingAttemptExists
	}
	switch q.Status {
	case entities.QuoteStatusPending:
		return q, nil
	case entities.QuoteStatusAssigned:
	default:
		return entities.Quote{}, interfaces.ErrQuoteNotAssignable
	}

	q.Status = entities.QuoteStatusPending
	q.AssignedCleanerID = ""
	q.ScheduledAt = nil
	q.UpdatedAt = time.Now().UTC()
	s.quotes[id] = q
	return q, nil
}

func (r *QuoteRepository) UpdateLeadStatus(_ context.Context, id string, status entities.LeadStatus) (entities.Quote, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.quotes[id]
	if !ok {
		return entities.Quote{}, interfaces.ErrQuoteNotFound
	}
	q.LeadStatus = status
	q.UpdatedAt = time.Now().UTC()
	s.quotes[id] = q
	return q, nil
}
