package memory

import (
	"context"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

type ProviderRepository struct {
	store *Store
}

var _ interfaces.IProviderRepository = (*ProviderRepository)(nil)

func NewProviderRepository(store *Store) *ProviderRepository {
	return &ProviderRepository{store: store}
}

func (r *ProviderRepository) GetByID(_ context.Context, id string) (entities.Provider, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.providers[id]
	if !ok {
		return entities.Provider{}, interfaces.ErrProviderNotFound
	}
	return p, nil
}

// AvailabilityIndex answers from the seeded slots. A slot matches when it
// covers the whole requested window; cleaners that are not available are
// left out.
type AvailabilityIndex struct {
	store *Store
}

var _ interfaces.IAvailabilityIndex = (*AvailabilityIndex)(nil)

func NewAvailabilityIndex(store *Store) *AvailabilityIndex {
	return &AvailabilityIndex{store: store}
}

func (i *AvailabilityIndex) FindCandidates(ctx context.Context, c entities.MatchCriteria) ([]entities.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s := i.store
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	out := []entities.Candidate{}
	for _, slot := range s.slots {
		if slot.ServiceID != c.ServiceID || slot.ZipCode != c.ZipCode || slot.Date != c.ServiceDate {
			continue
		}
		// HH:MM compares correctly as a string.
		if slot.StartTime > c.StartTime || slot.EndTime < c.EndTime {
			continue
		}
		p, ok := s.providers[slot.ProviderID]
		if !ok || seen[p.ID] || (p.Status != "" && p.Status != entities.ProviderStatusAvailable) {
			continue
		}
		seen[p.ID] = true
		out = append(out, entities.Candidate{ProviderID: p.ID, Name: p.Name, Rating: p.Rating, Distance: slot.Distance})
	}
	return out, nil
}
