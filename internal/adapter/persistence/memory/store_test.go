package memory_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"cleaning_assignments/internal/adapter/persistence/memory"
	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type workflow struct {
	store    *memory.Store
	attempts *memory.AssignmentRepository
	quotes   *memory.QuoteRepository
	clock    *clock
	uc       *usecase.AssignmentUseCase
	sweeper  *usecase.ExpirySweeper
}

func newWorkflow(t *testing.T) *workflow {
	t.Helper()
	store := memory.NewStore()
	store.PutQuote(entities.Quote{
		ID: "q-1", ClientEmail: "client@example.com", ServiceType: "standard", ZipCode: "94107",
		Status: entities.QuoteStatusPending, LeadStatus: entities.LeadStatusQualified,
	})
	store.PutProvider(entities.Provider{ID: "A", Name: "Ana", Rating: 4.8, Status: entities.ProviderStatusAvailable})
	store.PutProvider(entities.Provider{ID: "B", Name: "Bea", Rating: 4.5, Status: entities.ProviderStatusAvailable})
	store.PutSlot(memory.Slot{ProviderID: "A", ServiceID: "standard", ZipCode: "94107", Date: "2026-10-20", StartTime: "08:00", EndTime: "18:00", Distance: 2.0})
	store.PutSlot(memory.Slot{ProviderID: "B", ServiceID: "standard", ZipCode: "94107", Date: "2026-10-20", StartTime: "09:00", EndTime: "13:00", Distance: 0.5})

	w := &workflow{
		store:    store,
		attempts: memory.NewAssignmentRepository(store),
		quotes:   memory.NewQuoteRepository(store),
		clock:    &clock{t: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)},
	}
	matcher := usecase.NewMatchingUseCase(memory.NewAvailabilityIndex(store))
	w.uc = usecase.NewAssignmentUseCase(w.attempts, w.quotes, memory.NewProviderRepository(store), nil, matcher,
		usecase.WithClock(w.clock))
	w.sweeper = usecase.NewExpirySweeper(w.attempts, w.uc, usecase.WithSweeperClock(w.clock))
	return w
}

func (w *workflow) create(t *testing.T, provider string) entities.AssignmentAttempt {
	t.Helper()
	a, err := w.uc.CreateAssignment(context.Background(), usecase.CreateAssignmentInput{
		QuoteID: "q-1", ProviderID: provider, ScheduledDate: "2026-10-20", ScheduledTime: "09:00",
	})
	require.NoError(t, err)
	return a
}

func TestWorkflow_HappyPath(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	a := w.create(t, "A")
	assert.Equal(t, w.clock.Now().Add(30*time.Minute), a.ResponseDeadline)

	q, err := w.quotes.GetByID(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusAssigned, q.Status)
	assert.Equal(t, "A", q.AssignedCleanerID)
	assert.Equal(t, a.ID, q.PendingAttemptID)
	require.NotNil(t, q.ScheduledAt)
	assert.Equal(t, time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC), *q.ScheduledAt)

	w.clock.Advance(10 * time.Minute)
	accepted, err := w.uc.Accept(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentStatusAccepted, accepted.Status)
	assert.False(t, accepted.RespondedLate)

	q, _ = w.quotes.GetByID(ctx, "q-1")
	assert.Equal(t, entities.QuoteStatusAssigned, q.Status)
	assert.Equal(t, "A", q.AssignedCleanerID)
	assert.Empty(t, q.PendingAttemptID)
}

func TestWorkflow_DeclineReleasesQuote(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	a := w.create(t, "A")
	_, err := w.uc.Decline(ctx, a.ID)
	require.NoError(t, err)

	q, _ := w.quotes.GetByID(ctx, "q-1")
	assert.Equal(t, entities.QuoteStatusPending, q.Status)
	assert.Empty(t, q.AssignedCleanerID)
	assert.Nil(t, q.ScheduledAt)

	// A second offer is allowed once the first one is resolved.
	b := w.create(t, "B")
	list, err := w.uc.ListByQuote(ctx, "q-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entities.AssignmentStatusDeclined, list[0].Status)
	assert.Equal(t, b.ID, list[1].ID)
}

func TestWorkflow_ExpiryThenLateAccept(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	a := w.create(t, "A")
	w.clock.Advance(31 * time.Minute)

	res, err := w.sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.SweepResult{Expired: 1}, res)

	stored, _ := w.attempts.GetByID(ctx, a.ID)
	assert.Equal(t, entities.AssignmentStatusExpired, stored.Status)
	q, _ := w.quotes.GetByID(ctx, "q-1")
	assert.Equal(t, entities.QuoteStatusPending, q.Status)

	_, err = w.uc.Accept(ctx, a.ID)
	assert.ErrorIs(t, err, interfaces.ErrConflict)

	res, err = w.sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.SweepResult{}, res)
}

func TestWorkflow_LateAcceptBeforeSweep(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()

	a := w.create(t, "A")
	w.clock.Advance(40 * time.Minute)

	accepted, err := w.uc.Accept(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, accepted.RespondedLate)

	res, err := w.sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, res.Expired)
}

func TestWorkflow_ConcurrentCreatesForOneQuote(t *testing.T) {
	w := newWorkflow(t)

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			provider := "A"
			if i%2 == 1 {
				provider = "B"
			}
			_, errs[i] = w.uc.CreateAssignment(context.Background(), usecase.CreateAssignmentInput{
				QuoteID: "q-1", ProviderID: provider, ScheduledDate: "2026-10-20", ScheduledTime: "09:00",
			})
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, interfaces.ErrConflict)
	}
	assert.Equal(t, 1, ok)

	list, _ := w.attempts.ListByQuote(context.Background(), "q-1")
	assert.Len(t, list, 1)
}

func TestWorkflow_ConcurrentAccepts(t *testing.T) {
	w := newWorkflow(t)
	a := w.create(t, "A")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = w.uc.Accept(context.Background(), a.ID)
		}(i)
	}
	wg.Wait()

	var okCount, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			okCount++
		case errors.Is(err, interfaces.ErrConflict):
			conflicts++
		}
	}
	assert.Equal(t, 1, okCount)
	assert.Equal(t, 1, conflicts)

	stored, _ := w.attempts.GetByID(context.Background(), a.ID)
	assert.Equal(t, entities.AssignmentStatusAccepted, stored.Status)
}

func TestWorkflow_AutoAssignPicksBestScore(t *testing.T) {
	w := newWorkflow(t)

	a, err := w.uc.AutoAssign(context.Background(), usecase.AutoAssignInput{
		QuoteID: "q-1", ScheduledDate: "2026-10-20", StartTime: "09:00", EndTime: "12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "B", a.ProviderID)
}

func TestAssignmentRepository_Create(t *testing.T) {
	store := memory.NewStore()
	store.PutQuote(entities.Quote{ID: "q-1", Status: entities.QuoteStatusCancelled})
	repo := memory.NewAssignmentRepository(store)
	now := time.Now()

	a := entities.NewAssignmentAttempt("att-1", "q-1", "A", "2026-10-20", "09:00", now)
	_, err := repo.Create(context.Background(), a, entities.AssignQuote(a, now))
	assert.ErrorIs(t, err, interfaces.ErrQuoteNotAssignable)

	_, err = repo.GetByID(context.Background(), "att-1")
	assert.ErrorIs(t, err, interfaces.ErrAttemptNotFound, "failed quote mutation must not leave the attempt behind")

	_, err = repo.Create(context.Background(), a, entities.QuoteMutation{})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), a, entities.QuoteMutation{})
	assert.ErrorIs(t, err, interfaces.ErrDuplicate)

	missing := entities.NewAssignmentAttempt("att-2", "q-404", "A", "2026-10-20", "09:00", now)
	_, err = repo.Create(context.Background(), missing, entities.AssignQuote(missing, now))
	assert.ErrorIs(t, err, interfaces.ErrQuoteNotFound)
}

func TestAssignmentRepository_UpdateStatus(t *testing.T) {
	store := memory.NewStore()
	repo := memory.NewAssignmentRepository(store)
	now := time.Now()
	a := entities.NewAssignmentAttempt("att-1", "q-1", "A", "2026-10-20", "09:00", now)
	_, err := repo.Create(context.Background(), a, entities.QuoteMutation{})
	require.NoError(t, err)

	_, err = repo.UpdateStatus(context.Background(), "nope", entities.AssignmentStatusPending, entities.AssignmentStatusAccepted, interfaces.TransitionOptions{})
	assert.ErrorIs(t, err, interfaces.ErrAttemptNotFound)

	_, err = repo.UpdateStatus(context.Background(), "att-1", entities.AssignmentStatusAccepted, entities.AssignmentStatusDeclined, interfaces.TransitionOptions{})
	assert.ErrorIs(t, err, interfaces.ErrStatusMismatch)

	later := now.Add(time.Minute)
	updated, err := repo.UpdateStatus(context.Background(), "att-1", entities.AssignmentStatusPending, entities.AssignmentStatusDeclined, interfaces.TransitionOptions{At: later, Late: true})
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentStatusDeclined, updated.Status)
	assert.True(t, updated.RespondedLate)
	assert.True(t, updated.UpdatedAt.Equal(later))
	assert.True(t, updated.ResponseDeadline.Equal(a.ResponseDeadline), "deadline never changes")
}

func TestQuoteRepository_ClearAssignment(t *testing.T) {
	w := newWorkflow(t)
	ctx := context.Background()
	a := w.create(t, "A")

	_, err := w.quotes.ClearAssignment(ctx, "q-1")
	assert.ErrorIs(t, err, interfaces.ErrPendingAttemptExists)

	_, err = w.uc.Accept(ctx, a.ID)
	require.NoError(t, err)

	q, err := w.quotes.ClearAssignment(ctx, "q-1")
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusPending, q.Status)
	assert.Empty(t, q.AssignedCleanerID)

	_, err = w.quotes.ClearAssignment(ctx, "q-404")
	assert.ErrorIs(t, err, interfaces.ErrQuoteNotFound)
}

func TestAvailabilityIndex_FindCandidates(t *testing.T) {
	w := newWorkflow(t)
	w.store.PutProvider(entities.Provider{ID: "C", Rating: 5, Status: entities.ProviderStatusOffline})
	w.store.PutSlot(memory.Slot{ProviderID: "C", ServiceID: "standard", ZipCode: "94107", Date: "2026-10-20", StartTime: "00:00", EndTime: "23:59"})
	idx := memory.NewAvailabilityIndex(w.store)

	got, err := idx.FindCandidates(context.Background(), entities.MatchCriteria{
		ServiceDate: "2026-10-20", StartTime: "12:00", EndTime: "15:00", ZipCode: "94107", ServiceID: "standard",
	})
	require.NoError(t, err)
	require.Len(t, got, 1, "B ends at 13:00 and C is offline")
	assert.Equal(t, "A", got[0].ProviderID)
	assert.Equal(t, 4.8, got[0].Rating)
}

func TestStore_LoadSeed(t *testing.T) {
	store := memory.NewStore()
	err := store.LoadSeed(strings.NewReader(`{
		"quotes": [{"id": "q-9", "zip_code": "10001", "service_type": "standard"}],
		"providers": [{"id": "p-9", "name": "Zed", "rating": 4.1, "status": "available"}],
		"slots": [{"provider_id": "p-9", "service_id": "standard", "zip_code": "10001", "date": "2026-11-01", "start_time": "08:00", "end_time": "12:00", "distance": 1.5}]
	}`))
	require.NoError(t, err)

	q, err := memory.NewQuoteRepository(store).GetByID(context.Background(), "q-9")
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusPending, q.Status)
	assert.Equal(t, entities.LeadStatusNew, q.LeadStatus)

	p, err := memory.NewProviderRepository(store).GetByID(context.Background(), "p-9")
	require.NoError(t, err)
	assert.Equal(t, "Zed", p.Name)

	assert.Error(t, store.LoadSeed(strings.NewReader("{")))
}

func TestNotificationInbox(t *testing.T) {
	ctx := context.Background()
	inbox := memory.NewNotificationInbox(memory.NewStore())
	base := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"n-1", "n-2", "n-3"} {
		recipient := "p-1"
		if id == "n-2" {
			recipient = "p-2"
		}
		require.NoError(t, inbox.Save(ctx, entities.InboxNotification{
			ID: id, RecipientID: recipient, Title: id, SentAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	assert.ErrorIs(t, inbox.Save(ctx, entities.InboxNotification{ID: "n-1"}), interfaces.ErrDuplicate)

	unread, err := inbox.ListUnread(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "n-3", unread[0].ID)
	assert.Equal(t, "n-1", unread[1].ID)

	read, err := inbox.MarkRead(ctx, "n-3", base.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, read.Read)
	require.NotNil(t, read.ReadAt)

	again, err := inbox.MarkRead(ctx, "n-3", base.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, again.ReadAt.Equal(base.Add(time.Hour)), "second read keeps the first timestamp")

	unread, err = inbox.ListUnread(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "n-1", unread[0].ID)

	_, err = inbox.MarkRead(ctx, "missing", base)
	assert.ErrorIs(t, err, interfaces.ErrNotificationNotFound)
}
