package memory

import (
	"context"
	"sort"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

type AssignmentRepository struct {
	store *Store
}

var _ interfaces.IAssignmentRepository = (*AssignmentRepository)(nil)

func NewAssignmentRepository(store *Store) *AssignmentRepository {
	return &AssignmentRepository{store: store}
}

func (r *AssignmentRepository) Create(_ context.Context, a entities.AssignmentAttempt, quote entities.QuoteMutation) (entities.AssignmentAttempt, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.attempts[a.ID]; exists {
		return entities.AssignmentAttempt{}, interfaces.ErrDuplicate
	}
	if a.Status == entities.AssignmentStatusPending {
		for _, other := range s.attempts {
			if other.QuoteID == a.QuoteID && other.Status == entities.AssignmentStatusPending {
				return entities.AssignmentAttempt{}, interfaces.ErrPendingAttemptExists
			}
		}
	}

	q, touched, err := s.applyQuoteMutation(quote, a.CreatedAt)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	s.attempts[a.ID] = a
	s.order = append(s.order, a.ID)
	if touched {
		s.quotes[q.ID] = q
	}
	return a, nil
}

func (r *AssignmentRepository) GetByID(_ context.Context, id string) (entities.AssignmentAttempt, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[id]
	if !ok {
		return entities.AssignmentAttempt{}, interfaces.ErrAttemptNotFound
	}
	return a, nil
}

func (r *AssignmentRepository) UpdateStatus(_ context.Context, id string, from, to entities.AssignmentStatus, opts interfaces.TransitionOptions) (entities.AssignmentAttempt, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[id]
	if !ok {
		return entities.AssignmentAttempt{}, interfaces.ErrAttemptNotFound
	}
	if a.Status != from {
		return entities.AssignmentAttempt{}, interfaces.ErrStatusMismatch
	}

	at := opts.At
	if at.IsZero() {
		at = time.Now()
	}
	q, touched, err := s.applyQuoteMutation(opts.Quote, at)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	a.Status = to
	a.RespondedLate = opts.Late
	a.UpdatedAt = at.UTC()
	s.attempts[id] = a
	if touched {
		s.quotes[q.ID] = q
	}
	return a, nil
}

func (r *AssignmentRepository) FindPendingExpired(_ context.Context, now time.Time) ([]entities.AssignmentAttempt, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.AssignmentAttempt
	for _, id := range s.order {
		a := s.attempts[id]
		if a.Status == entities.AssignmentStatusPending && a.Overdue(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ResponseDeadline.Before(out[j].ResponseDeadline) })
	return out, nil
}

func (r *AssignmentRepository) FindPendingByQuote(_ context.Context, quoteID string) (entities.AssignmentAttempt, bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.order {
		a := s.attempts[id]
		if a.QuoteID == quoteID && a.Status == entities.AssignmentStatusPending {
			return a, true, nil
		}
	}
	return entities.AssignmentAttempt{}, false, nil
}

func (r *AssignmentRepository) ListByQuote(_ context.Context, quoteID string) ([]entities.AssignmentAttempt, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []entities.AssignmentAttempt{}
	for _, id := range s.order {
		if a := s.attempts[id]; a.QuoteID == quoteID {
			out = append(out, a)
		}
	}
	return out, nil
}
