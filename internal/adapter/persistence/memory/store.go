// Package memory keeps quotes, cleaners, slots and assignment attempts in
// process memory. It backs STORAGE_BACKEND=memory and the store tests.
package memory

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

// Slot is a window in which a cleaner is free for a service in a zip code.
type Slot struct {
	ProviderID string  `json:"provider_id"`
	ServiceID  string  `json:"service_id"`
	ZipCode    string  `json:"zip_code"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	Distance   float64 `json:"distance"`
}

// Store is the shared state behind every repository in this package. A
// single mutex makes an attempt write and its quote mutation one atomic step.
type Store struct {
	mu        sync.Mutex
	quotes    map[string]entities.Quote
	providers map[string]entities.Provider
	attempts  map[string]entities.AssignmentAttempt
	order     []string
	slots     []Slot
	inbox     []entities.InboxNotification
}

func NewStore() *Store {
	return &Store{
		quotes:    map[string]entities.Quote{},
		providers: map[string]entities.Provider{},
		attempts:  map[string]entities.AssignmentAttempt{},
	}
}

func (s *Store) PutQuote(q entities.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[q.ID] = q
}

func (s *Store) PutProvider(p entities.Provider) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.providers[p.ID] = p
}

func (s *Store) PutSlot(slot Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = append(s.slots, slot)
}

// Seed is the JSON document accepted by LoadSeed.
type Seed struct {
	Quotes    []entities.Quote    `json:"quotes"`
	Providers []entities.Provider `json:"providers"`
	Slots     []Slot              `json:"slots"`
}

// LoadSeed fills the store from a JSON seed document.
func (s *Store) LoadSeed(r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}
	now := time.Now().UTC()
	for _, q := range seed.Quotes {
		if q.Status == "" {
			q.Status = entities.QuoteStatusPending
		}
		if q.LeadStatus == "" {
			q.LeadStatus = entities.LeadStatusNew
		}
		if q.CreatedAt.IsZero() {
			q.CreatedAt, q.UpdatedAt = now, now
		}
		s.PutQuote(q)
	}
	for _, p := range seed.Providers {
		s.PutProvider(p)
	}
	for _, slot := range seed.Slots {
		s.PutSlot(slot)
	}
	return nil
}

// applyQuoteMutation returns the quote as it will look after m. The caller
// holds s.mu and stores the result only when the whole write succeeds.
func (s *Store) applyQuoteMutation(m entities.QuoteMutation, now time.Time) (entities.Quote, bool, error) {
	if m.Kind == entities.QuoteMutationNone {
		return entities.Quote{}, false, nil
	}
	q, ok := s.quotes[m.QuoteID]
	if !ok {
		return entities.Quote{}, false, interfaces.ErrQuoteNotFound
	}

	switch m.Kind {
	case entities.QuoteMutationAssign:
		if q.PendingAttemptID != "" {
			return entities.Quote{}, false, interfaces.ErrPendingAttemptExists
		}
		if !q.Assignable() {
			return entities.Quote{}, false, interfaces.ErrQuoteNotAssignable
		}
		at := m.ScheduledAt.UTC()
		q.Status = entities.QuoteStatusAssigned
		q.AssignedCleanerID = m.ProviderID
		q.ScheduledAt = &at
		q.PendingAttemptID = m.AttemptID
	case entities.QuoteMutationConfirm:
		q.PendingAttemptID = ""
	case entities.QuoteMutationRelease:
		q.Status = entities.QuoteStatusPending
		q.AssignedCleanerID = ""
		q.ScheduledAt = nil
		q.PendingAttemptID = ""
	default:
		return entities.Quote{}, false, fmt.Errorf("unknown quote mutation %q", m.Kind)
	}
	q.UpdatedAt = now.UTC()
	return q, true, nil
}
