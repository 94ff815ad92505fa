package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	DefaultNotifyTimeout    = 5 * time.Second
	DefaultAdminRecipientID = "admin"
)

var (
	ErrInvalidAttemptID    = fmt.Errorf("%w: invalid assignment id", interfaces.ErrValidation)
	ErrInvalidQuoteID      = fmt.Errorf("%w: invalid quote id", interfaces.ErrValidation)
	ErrInvalidProviderID   = fmt.Errorf("%w: invalid provider id", interfaces.ErrValidation)
	ErrWindowStillOpen     = fmt.Errorf("%w: response window is still open", interfaces.ErrConflict)
	ErrNoProviderAvailable = fmt.Errorf("%w: no cleaner available for the requested window", interfaces.ErrNotFound)
)

// CreateAssignmentInput is the request to offer a quote to a cleaner for a
// slot. ScheduledDate is YYYY-MM-DD and ScheduledTime is HH:MM.
type CreateAssignmentInput struct {
	QuoteID       string
	ProviderID    string
	ScheduledDate string
	ScheduledTime string
}

// AutoAssignInput asks the service to pick the cleaner itself.
type AutoAssignInput struct {
	QuoteID       string
	ScheduledDate string
	StartTime     string
	EndTime       string
}

// IAssignmentUseCase drives an attempt through its lifecycle.
//
// Transitions:
//   - CreateAssignment => pending (quote marked assigned in the same write)
//   - Accept  => accepted (quote stays assigned)
//   - Decline => declined (quote back to pending)
//   - Expire  => expired  (quote back to pending, sweeper only)
//
// Accept, Decline and Expire are compare-and-set on pending; the loser of a
// race gets ErrConflict and performs no side effects.

type IAssignmentUseCase interface {
	CreateAssignment(ctx context.Context, in CreateAssignmentInput) (entities.AssignmentAttempt, error)
	AutoAssign(ctx context.Context, in AutoAssignInput) (entities.AssignmentAttempt, error)
	Accept(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error)
	Decline(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error)
	Expire(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error)
	GetByID(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error)
	ListByQuote(ctx context.Context, quoteID string) ([]entities.AssignmentAttempt, error)
}

type AssignmentUseCase struct {
	repo      interfaces.IAssignmentRepository
	quotes    interfaces.IQuoteRepository
	providers interfaces.IProviderRepository
	notifier  interfaces.INotifier
	matcher   IMatchingUseCase

	clock         interfaces.Clock
	metrics       interfaces.IAssignmentMetrics
	logger        *slog.Logger
	notifyTimeout time.Duration
	adminID       string
	newID         func() string
}

var _ IAssignmentUseCase = (*AssignmentUseCase)(nil)

type AssignmentOption func(*AssignmentUseCase)

func WithClock(c interfaces.Clock) AssignmentOption {
	return func(u *AssignmentUseCase) {
		if c != nil {
			u.clock = c
		}
	}
}

func WithMetrics(m interfaces.IAssignmentMetrics) AssignmentOption {
	return func(u *AssignmentUseCase) {
		if m != nil {
			u.metrics = m
		}
	}
}

func WithLogger(l *slog.Logger) AssignmentOption {
	return func(u *AssignmentUseCase) {
		if l != nil {
			u.logger = l
		}
	}
}

func WithNotifyTimeout(d time.Duration) AssignmentOption {
	return func(u *AssignmentUseCase) {
		if d > 0 {
			u.notifyTimeout = d
		}
	}
}

func WithAdminRecipient(id string) AssignmentOption {
	return func(u *AssignmentUseCase) {
		if id = strings.TrimSpace(id); id != "" {
			u.adminID = id
		}
	}
}

// WithIDGenerator replaces uuid.NewString for attempt ids.
func WithIDGenerator(fn func() string) AssignmentOption {
	return func(u *AssignmentUseCase) {
		if fn != nil {
			u.newID = fn
		}
	}
}

func NewAssignmentUseCase(
	repo interfaces.IAssignmentRepository,
	quotes interfaces.IQuoteRepository,
	providers interfaces.IProviderRepository,
	notifier interfaces.INotifier,
	matcher IMatchingUseCase,
	opts ...AssignmentOption,
) *AssignmentUseCase {
	u := &AssignmentUseCase{
		repo:          repo,
		quotes:        quotes,
		providers:     providers,
		notifier:      notifier,
		matcher:       matcher,
		clock:         interfaces.SystemClock{},
		metrics:       interfaces.NopMetrics{},
		logger:        slog.Default(),
		notifyTimeout: DefaultNotifyTimeout,
		adminID:       DefaultAdminRecipientID,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *AssignmentUseCase) CreateAssignment(ctx context.Context, in CreateAssignmentInput) (entities.AssignmentAttempt, error) {
	in.QuoteID = strings.TrimSpace(in.QuoteID)
	in.ProviderID = strings.TrimSpace(in.ProviderID)
	in.ScheduledDate = strings.TrimSpace(in.ScheduledDate)
	in.ScheduledTime = strings.TrimSpace(in.ScheduledTime)

	if in.QuoteID == "" {
		return entities.AssignmentAttempt{}, ErrInvalidQuoteID
	}
	if in.ProviderID == "" {
		return entities.AssignmentAttempt{}, ErrInvalidProviderID
	}
	scheduledAt, err := entities.ParseSchedule(in.ScheduledDate, in.ScheduledTime)
	if err != nil {
		return entities.AssignmentAttempt{}, fmt.Errorf("%w: %v", interfaces.ErrValidation, err)
	}

	quote, err := u.quotes.GetByID(ctx, in.QuoteID)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}
	provider, err := u.providers.GetByID(ctx, in.ProviderID)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	if _, found, err := u.repo.FindPendingByQuote(ctx, quote.ID); err != nil {
		return entities.AssignmentAttempt{}, err
	} else if found {
		return entities.AssignmentAttempt{}, interfaces.ErrPendingAttemptExists
	}
	if !quote.Assignable() {
		return entities.AssignmentAttempt{}, fmt.Errorf("%w: status %s", interfaces.ErrQuoteNotAssignable, quote.Status)
	}

	attempt := entities.NewAssignmentAttempt(u.newID(), quote.ID, provider.ID, in.ScheduledDate, in.ScheduledTime, u.clock.Now())

	// The pre-checks above are advisory; the store re-checks the quote guard
	// inside the transaction, so a concurrent create still loses here.
	created, err := u.repo.Create(ctx, attempt, entities.AssignQuote(attempt, scheduledAt))
	if err != nil {
		u.logger.Warn("[assignment][usecase] create failed", "quote_id", quote.ID, "provider_id", provider.ID, "err", err)
		return entities.AssignmentAttempt{}, err
	}

	u.metrics.AttemptCreated()
	u.logger.Info("[assignment][usecase] attempt created",
		"attempt_id", created.ID, "quote_id", created.QuoteID, "provider_id", created.ProviderID,
		"response_deadline", created.ResponseDeadline.Format(time.RFC3339))

	u.notifyAll(ctx,
		requestedNotification(created, provider),
		matchingNotification(created, quote),
	)
	return created, nil
}

func (u *AssignmentUseCase) AutoAssign(ctx context.Context, in AutoAssignInput) (entities.AssignmentAttempt, error) {
	in.QuoteID = strings.TrimSpace(in.QuoteID)
	if in.QuoteID == "" {
		return entities.AssignmentAttempt{}, ErrInvalidQuoteID
	}

	quote, err := u.quotes.GetByID(ctx, in.QuoteID)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	best, found, err := u.matcher.Match(ctx, entities.MatchCriteria{
		ServiceDate: in.ScheduledDate,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		ZipCode:     quote.ZipCode,
		ServiceID:   quote.ServiceType,
	})
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}
	if !found {
		return entities.AssignmentAttempt{}, ErrNoProviderAvailable
	}

	return u.CreateAssignment(ctx, CreateAssignmentInput{
		QuoteID:       quote.ID,
		ProviderID:    best.ProviderID,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.StartTime,
	})
}

func (u *AssignmentUseCase) Accept(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error) {
	updated, err := u.transition(ctx, attemptID, entities.AssignmentStatusAccepted, entities.ConfirmQuote)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	provider, quote := u.lookupParties(ctx, updated)
	u.notifyAll(ctx,
		confirmedProviderNotification(updated, provider),
		confirmedClientNotification(updated, quote),
	)
	return updated, nil
}

func (u *AssignmentUseCase) Decline(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error) {
	updated, err := u.transition(ctx, attemptID, entities.AssignmentStatusDeclined, entities.ReleaseQuote)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	provider, quote := u.lookupParties(ctx, updated)
	u.notifyAll(ctx,
		declinedProviderNotification(updated, provider),
		declinedClientNotification(updated, quote),
		declinedAdminNotification(updated, u.adminID),
	)
	return updated, nil
}

func (u *AssignmentUseCase) Expire(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error) {
	updated, err := u.transition(ctx, attemptID, entities.AssignmentStatusExpired, entities.ReleaseQuote)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}

	u.notifyAll(ctx,
		expiredProviderNotification(updated),
		expiredAdminNotification(updated, u.adminID),
	)
	return updated, nil
}

func (u *AssignmentUseCase) GetByID(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error) {
	attemptID = strings.TrimSpace(attemptID)
	if attemptID == "" {
		return entities.AssignmentAttempt{}, ErrInvalidAttemptID
	}
	return u.repo.GetByID(ctx, attemptID)
}

func (u *AssignmentUseCase) ListByQuote(ctx context.Context, quoteID string) ([]entities.AssignmentAttempt, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	if _, err := u.quotes.GetByID(ctx, quoteID); err != nil {
		return nil, err
	}
	return u.repo.ListByQuote(ctx, quoteID)
}

func (u *AssignmentUseCase) transition(
	ctx context.Context,
	attemptID string,
	to entities.AssignmentStatus,
	quoteMutation func(entities.AssignmentAttempt) entities.QuoteMutation,
) (entities.AssignmentAttempt, error) {
	attemptID = strings.TrimSpace(attemptID)
	if attemptID == "" {
		return entities.AssignmentAttempt{}, ErrInvalidAttemptID
	}

	current, err := u.repo.GetByID(ctx, attemptID)
	if err != nil {
		return entities.AssignmentAttempt{}, err
	}
	if current.Status != entities.AssignmentStatusPending {
		u.metrics.TransitionConflict(to)
		return entities.AssignmentAttempt{}, fmt.Errorf("%w: attempt is %s", interfaces.ErrStatusMismatch, current.Status)
	}

	now := u.clock.Now()
	overdue := current.Overdue(now)
	if to == entities.AssignmentStatusExpired && !overdue {
		u.metrics.TransitionConflict(to)
		return entities.AssignmentAttempt{}, ErrWindowStillOpen
	}
	late := overdue && to != entities.AssignmentStatusExpired

	updated, err := u.repo.UpdateStatus(ctx, attemptID, entities.AssignmentStatusPending, to, interfaces.TransitionOptions{
		At:    now,
		Late:  late,
		Quote: quoteMutation(current),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConflict) {
			u.metrics.TransitionConflict(to)
			u.logger.Info("[assignment][usecase] transition lost race", "attempt_id", attemptID, "to", to)
		}
		return entities.AssignmentAttempt{}, err
	}

	u.metrics.Transitioned(to, late)
	if late {
		u.logger.Warn("[assignment][usecase] late response applied",
			"attempt_id", attemptID, "to", to,
			"response_deadline", current.ResponseDeadline.Format(time.RFC3339),
			"overdue_by", now.Sub(current.ResponseDeadline))
	} else {
		u.logger.Info("[assignment][usecase] transitioned", "attempt_id", attemptID, "quote_id", updated.QuoteID, "to", to)
	}
	return updated, nil
}

// lookupParties loads the provider and quote for notification addressing.
// Failures only degrade the notifications.
func (u *AssignmentUseCase) lookupParties(ctx context.Context, a entities.AssignmentAttempt) (entities.Provider, entities.Quote) {
	provider, err := u.providers.GetByID(ctx, a.ProviderID)
	if err != nil {
		u.logger.Warn("[assignment][usecase] provider lookup for notification failed", "provider_id", a.ProviderID, "err", err)
		provider = entities.Provider{ID: a.ProviderID}
	}
	quote, err := u.quotes.GetByID(ctx, a.QuoteID)
	if err != nil {
		u.logger.Warn("[assignment][usecase] quote lookup for notification failed", "quote_id", a.QuoteID, "err", err)
		quote = entities.Quote{ID: a.QuoteID}
	}
	return provider, quote
}

// notifyAll sends every notification independently. The state change has
// already been committed, so failures are logged and counted only.
func (u *AssignmentUseCase) notifyAll(ctx context.Context, ns ...entities.Notification) {
	if u.notifier == nil {
		return
	}
	base := context.WithoutCancel(ctx)
	for _, n := range ns {
		if n.RecipientID == "" {
			continue
		}
		nctx, cancel := context.WithTimeout(base, u.notifyTimeout)
		err := u.notifier.Notify(nctx, n)
		cancel()
		if err != nil {
			event := n.Event()
			u.metrics.NotificationFailed(event)
			u.logger.Warn("[assignment][usecase] notification failed",
				"event", event, "recipient_type", n.RecipientType, "recipient_id", n.RecipientID,
				"err", fmt.Errorf("%w: %v", interfaces.ErrNotificationFailure, err))
		}
	}
}
