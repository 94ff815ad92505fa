package postgres_test

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"cleaning_assignments/internal/adapter/persistence/postgres"
	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/infrastructure/database"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	testPool    *pgxpool.Pool
	skipReason  string
	t0          = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	quoteSeq    int
	quoteSeqMux sync.Mutex
)

// TestMain starts a throwaway PostgreSQL and runs the embedded migrations
// against it. Without Docker, or with -short, every test is skipped.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		skipReason = "postgres integration tests skipped in -short mode"
		os.Exit(m.Run())
	}

	os.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "assignments",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		skipReason = fmt.Sprintf("cannot start postgres container: %v", err)
		os.Exit(m.Run())
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to get container host: %v", err)
	}
	if host == "" || host == "null" {
		host = "localhost"
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatalf("failed to get mapped port: %v", err)
	}
	url := fmt.Sprintf("postgres://test:test@%s:%s/assignments?sslmode=disable", host, port.Port())

	if err := database.RunMigrations(url, nil); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	testPool, err = database.ConnectPostgres(ctx, url)
	if err != nil {
		log.Fatalf("failed to connect: %v", err)
	}
	seedCleaners(ctx)

	code := m.Run()

	testPool.Close()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func requireDB(t *testing.T) {
	t.Helper()
	if skipReason != "" {
		t.Skip(skipReason)
	}
}

func seedCleaners(ctx context.Context) {
	cleaners := postgres.NewCleanerRepository(testPool)
	for _, p := range []entities.Provider{
		{ID: "A", Name: "Ana", Email: "ana@example.com", Services: []string{"deep_clean"}, Rating: 4.8},
		{ID: "B", Name: "Bia", Email: "bia@example.com", Services: []string{"deep_clean"}, Rating: 4.5},
		{ID: "C", Name: "Caio", Rating: 4.9, Status: entities.ProviderStatusOffline},
	} {
		if err := cleaners.Create(ctx, p); err != nil {
			log.Fatalf("seed cleaner %s: %v", p.ID, err)
		}
	}
	slots := []struct {
		id, start, end string
		distance       float64
	}{
		{"A", "08:00", "17:00", 2.0},
		{"A", "12:00", "18:00", 1.0},
		{"B", "09:00", "13:00", 0.5},
		{"C", "08:00", "18:00", 0.1},
	}
	for _, s := range slots {
		if err := cleaners.AddSlot(ctx, s.id, "deep_clean", "94107", "2026-10-20", s.start, s.end, s.distance); err != nil {
			log.Fatalf("seed slot %s: %v", s.id, err)
		}
	}
}

func newQuote(t *testing.T) entities.Quote {
	t.Helper()
	quoteSeqMux.Lock()
	quoteSeq++
	id := fmt.Sprintf("q-%d", quoteSeq)
	quoteSeqMux.Unlock()

	q := entities.Quote{
		ID:          id,
		ClientName:  "Client",
		ClientEmail: "client@example.com",
		ServiceType: "deep_clean",
		ZipCode:     "94107",
		Status:      entities.QuoteStatusPending,
		LeadStatus:  entities.LeadStatusNew,
		CreatedAt:   t0,
		UpdatedAt:   t0,
	}
	require.NoError(t, postgres.NewQuoteRepository(testPool).Create(context.Background(), q))
	return q
}

func createAttempt(t *testing.T, repo *postgres.AssignmentRepository, id, quoteID, providerID string) (entities.AssignmentAttempt, error) {
	t.Helper()
	a := entities.NewAssignmentAttempt(id, quoteID, providerID, "2026-10-20", "09:30", t0)
	at, err := a.ScheduledAt()
	require.NoError(t, err)
	return repo.Create(context.Background(), a, entities.AssignQuote(a, at))
}

func TestAssignmentRepository_CreateAssignsQuote(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := postgres.NewAssignmentRepository(testPool)
	quotes := postgres.NewQuoteRepository(testPool)
	q := newQuote(t)

	a, err := createAttempt(t, repo, q.ID+"-att-1", q.ID, "A")
	require.NoError(t, err)
	assert.WithinDuration(t, t0.Add(30*time.Minute), a.ResponseDeadline, 0)

	got, err := quotes.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusAssigned, got.Status)
	assert.Equal(t, "A", got.AssignedCleanerID)
	assert.Equal(t, a.ID, got.PendingAttemptID)
	require.NotNil(t, got.ScheduledAt)
	assert.WithinDuration(t, time.Date(2026, 10, 20, 9, 30, 0, 0, time.UTC), *got.ScheduledAt, 0)

	stored, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.AssignmentStatusPending, stored.Status)
	assert.WithinDuration(t, a.ResponseDeadline, stored.ResponseDeadline, 0)

	pending, found, err := repo.FindPendingByQuote(ctx, q.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, a.ID, pending.ID)
}

func TestAssignmentRepository_CreateErrors(t *testing.T) {
	requireDB(t)
	repo := postgres.NewAssignmentRepository(testPool)
	q := newQuote(t)

	_, err := createAttempt(t, repo, q.ID+"-att-1", q.ID, "A")
	require.NoError(t, err)

	_, err = createAttempt(t, repo, q.ID+"-att-2", q.ID, "B")
	assert.ErrorIs(t, err, interfaces.ErrPendingAttemptExists)

	_, err = createAttempt(t, repo, "att-missing", "no-such-quote", "A")
	assert.ErrorIs(t, err, interfaces.ErrQuoteNotFound)

	// The failed create must not have touched the quote.
	got, err := postgres.NewQuoteRepository(testPool).GetByID(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.AssignedCleanerID)
}

func TestAssignmentRepository_ConcurrentCreatesAdmitOne(t *testing.T) {
	requireDB(t)
	repo := postgres.NewAssignmentRepository(testPool)
	q := newQuote(t)

	const n = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := createAttempt(t, repo, fmt.Sprintf("%s-race-%d", q.ID, i), q.ID, "A")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case assert.ErrorIs(t, err, interfaces.ErrConflict):
				conflicts++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, n-1, conflicts)
}

func TestAssignmentRepository_UpdateStatus(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := postgres.NewAssignmentRepository(testPool)
	quotes := postgres.NewQuoteRepository(testPool)

	t.Run("accept keeps the quote assigned", func(t *testing.T) {
		q := newQuote(t)
		a, err := createAttempt(t, repo, q.ID+"-att-1", q.ID, "A")
		require.NoError(t, err)

		got, err := repo.UpdateStatus(ctx, a.ID, entities.AssignmentStatusPending, entities.AssignmentStatusAccepted,
			interfaces.TransitionOptions{At: t0.Add(time.Minute), Quote: entities.ConfirmQuote(a)})
		require.NoError(t, err)
		assert.Equal(t, entities.AssignmentStatusAccepted, got.Status)
		assert.False(t, got.RespondedLate)

		stored, err := quotes.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusAssigned, stored.Status)
		assert.Empty(t, stored.PendingAttemptID)

		_, err = repo.UpdateStatus(ctx, a.ID, entities.AssignmentStatusPending, entities.AssignmentStatusExpired,
			interfaces.TransitionOptions{At: t0.Add(time.Hour), Quote: entities.ReleaseQuote(a)})
		assert.ErrorIs(t, err, interfaces.ErrStatusMismatch)

		stored, err = quotes.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusAssigned, stored.Status, "losing transition must not release the quote")
	})

	t.Run("late decline releases the quote", func(t *testing.T) {
		q := newQuote(t)
		a, err := createAttempt(t, repo, q.ID+"-att-1", q.ID, "A")
		require.NoError(t, err)

		got, err := repo.UpdateStatus(ctx, a.ID, entities.AssignmentStatusPending, entities.AssignmentStatusDeclined,
			interfaces.TransitionOptions{At: t0.Add(31 * time.Minute), Late: true, Quote: entities.ReleaseQuote(a)})
		require.NoError(t, err)
		assert.True(t, got.RespondedLate)

		stored, err := quotes.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.QuoteStatusPending, stored.Status)
		assert.Empty(t, stored.AssignedCleanerID)
		assert.Nil(t, stored.ScheduledAt)

		// The quote is free again.
		_, err = createAttempt(t, repo, q.ID+"-att-2", q.ID, "B")
		require.NoError(t, err)

		history, err := repo.ListByQuote(ctx, q.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, entities.AssignmentStatusDeclined, history[0].Status)
		assert.Equal(t, entities.AssignmentStatusPending, history[1].Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, "nope", entities.AssignmentStatusPending, entities.AssignmentStatusAccepted,
			interfaces.TransitionOptions{At: t0})
		assert.ErrorIs(t, err, interfaces.ErrAttemptNotFound)
	})
}

func TestAssignmentRepository_FindPendingExpired(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := postgres.NewAssignmentRepository(testPool)
	q := newQuote(t)

	a, err := createAttempt(t, repo, q.ID+"-att-1", q.ID, "A")
	require.NoError(t, err)

	due, err := repo.FindPendingExpired(ctx, a.ResponseDeadline)
	require.NoError(t, err)
	assert.NotContains(t, ids(due), a.ID, "deadline itself is still inside the window")

	due, err = repo.FindPendingExpired(ctx, a.ResponseDeadline.Add(time.Second))
	require.NoError(t, err)
	assert.Contains(t, ids(due), a.ID)
}

func TestQuoteRepository_ClearAssignmentAndLeadStatus(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	repo := postgres.NewAssignmentRepository(testPool)
	quotes := postgres.NewQuoteRepository(testPool)
	q := newQuote(t)

	a, err := createAttempt(t, repo, q.ID+"-att-1", q.ID, "A")
	require.NoError(t, err)

	_, err = quotes.ClearAssignment(ctx, q.ID)
	assert.ErrorIs(t, err, interfaces.ErrPendingAttemptExists)

	_, err = repo.UpdateStatus(ctx, a.ID, entities.AssignmentStatusPending, entities.AssignmentStatusAccepted,
		interfaces.TransitionOptions{At: t0, Quote: entities.ConfirmQuote(a)})
	require.NoError(t, err)

	cleared, err := quotes.ClearAssignment(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuoteStatusPending, cleared.Status)
	assert.Empty(t, cleared.AssignedCleanerID)

	updated, err := quotes.UpdateLeadStatus(ctx, q.ID, entities.LeadStatusQualified)
	require.NoError(t, err)
	assert.Equal(t, entities.LeadStatusQualified, updated.LeadStatus)

	_, err = quotes.UpdateLeadStatus(ctx, "no-such-quote", entities.LeadStatusLost)
	assert.ErrorIs(t, err, interfaces.ErrQuoteNotFound)

	_, err = quotes.ClearAssignment(ctx, "no-such-quote")
	assert.ErrorIs(t, err, interfaces.ErrQuoteNotFound)
}

func TestAvailabilityIndex_FindCandidates(t *testing.T) {
	requireDB(t)
	index := postgres.NewAvailabilityIndex(testPool)

	got, err := index.FindCandidates(context.Background(), entities.MatchCriteria{
		ServiceDate: "2026-10-20",
		StartTime:   "12:00",
		EndTime:     "13:00",
		ZipCode:     "94107",
		ServiceID:   "deep_clean",
	})
	require.NoError(t, err)

	// B is closest; A appears once with its nearest covering slot; C is offline.
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ProviderID)
	assert.Equal(t, 0.5, got[0].Distance)
	assert.Equal(t, "A", got[1].ProviderID)
	assert.Equal(t, 1.0, got[1].Distance)
	assert.Equal(t, 4.8, got[1].Rating)

	none, err := index.FindCandidates(context.Background(), entities.MatchCriteria{
		ServiceDate: "2026-10-21",
		StartTime:   "12:00",
		EndTime:     "13:00",
		ZipCode:     "94107",
		ServiceID:   "deep_clean",
	})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCleanerRepository_GetByID(t *testing.T) {
	requireDB(t)
	cleaners := postgres.NewCleanerRepository(testPool)

	p, err := cleaners.GetByID(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, []string{"deep_clean"}, p.Services)
	assert.Equal(t, entities.ProviderStatusAvailable, p.Status)

	_, err = cleaners.GetByID(context.Background(), "zzz")
	assert.ErrorIs(t, err, interfaces.ErrProviderNotFound)
}

func ids(as []entities.AssignmentAttempt) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.ID)
	}
	return out
}

func TestNotificationInbox(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	inbox := postgres.NewNotificationInbox(testPool)

	for i, id := range []string{"inbox-1", "inbox-2"} {
		require.NoError(t, inbox.Save(ctx, entities.InboxNotification{
			ID:            id,
			RecipientID:   "inbox-recipient",
			RecipientType: entities.RecipientCleaner,
			Kind:          entities.NotificationBooking,
			Event:         entities.EventAssignmentRequested,
			Title:         "New Booking Request",
			Data:          []byte(`{"attempt_id":"att-1"}`),
			SentAt:        t0.Add(time.Duration(i) * time.Minute),
		}))
	}
	assert.ErrorIs(t, inbox.Save(ctx, entities.InboxNotification{
		ID: "inbox-1", RecipientID: "x", RecipientType: entities.RecipientAdmin, Kind: entities.NotificationSystem, SentAt: t0,
	}), interfaces.ErrDuplicate)

	unread, err := inbox.ListUnread(ctx, "inbox-recipient")
	require.NoError(t, err)
	require.Len(t, unread, 2)
	assert.Equal(t, "inbox-2", unread[0].ID)
	assert.JSONEq(t, `{"attempt_id":"att-1"}`, string(unread[0].Data))

	read, err := inbox.MarkRead(ctx, "inbox-2", t0.Add(time.Hour))
	require.NoError(t, err)
	assert.True(t, read.Read)
	require.NotNil(t, read.ReadAt)

	again, err := inbox.MarkRead(ctx, "inbox-2", t0.Add(2*time.Hour))
	require.NoError(t, err)
	assert.WithinDuration(t, t0.Add(time.Hour), *again.ReadAt, 0)

	unread, err = inbox.ListUnread(ctx, "inbox-recipient")
	require.NoError(t, err)
	require.Len(t, unread, 1)

	_, err = inbox.MarkRead(ctx, "missing", t0)
	assert.ErrorIs(t, err, interfaces.ErrNotificationNotFound)
}
