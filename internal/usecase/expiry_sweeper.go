package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

const DefaultSweepConcurrency = 4

// SweepResult counts what a single sweep did.
type SweepResult struct {
	Expired int `json:"expired"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// IAttemptExpirer is the part of the state machine the sweeper drives.
type IAttemptExpirer interface {
	Expire(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error)
}

// IExpirySweeper finds overdue pending attempts and expires them.

type IExpirySweeper interface {
	Sweep(ctx context.Context) (SweepResult, error)
	Run(ctx context.Context, interval time.Duration) error
}

type ExpirySweeper struct {
	repo        interfaces.IAssignmentRepository
	expirer     IAttemptExpirer
	clock       interfaces.Clock
	metrics     interfaces.IAssignmentMetrics
	logger      *slog.Logger
	concurrency int
}

var _ IExpirySweeper = (*ExpirySweeper)(nil)

type SweeperOption func(*ExpirySweeper)

func WithSweepConcurrency(n int) SweeperOption {
	return func(s *ExpirySweeper) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithSweeperClock(c interfaces.Clock) SweeperOption {
	return func(s *ExpirySweeper) {
		if c != nil {
			s.clock = c
		}
	}
}

func WithSweeperMetrics(m interfaces.IAssignmentMetrics) SweeperOption {
	return func(s *ExpirySweeper) {
		if m != nil {
			s.metrics = m
		}
	}
}

func WithSweeperLogger(l *slog.Logger) SweeperOption {
	return func(s *ExpirySweeper) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewExpirySweeper(repo interfaces.IAssignmentRepository, expirer IAttemptExpirer, opts ...SweeperOption) *ExpirySweeper {
	s := &ExpirySweeper{
		repo:        repo,
		expirer:     expirer,
		clock:       interfaces.SystemClock{},
		metrics:     interfaces.NopMetrics{},
		logger:      slog.Default(),
		concurrency: DefaultSweepConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sweep expires every pending attempt whose deadline has passed. Each attempt
// is handled independently: one failure never stops the others, and attempts
// resolved in the meantime are counted as skipped. Running it twice in a row
// expires nothing the second time.
func (s *ExpirySweeper) Sweep(ctx context.Context) (SweepResult, error) {
	start := s.clock.Now()
	due, err := s.repo.FindPendingExpired(ctx, start)
	if err != nil {
		s.logger.Error("[sweeper][usecase] find pending expired failed", "err", err)
		return SweepResult{}, err
	}

	var expired, skipped, failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, a := range due {
		a := a
		g.Go(func() error {
			_, err := s.expirer.Expire(gctx, a.ID)
			switch {
			case err == nil:
				expired.Add(1)
			case errors.Is(err, interfaces.ErrConflict):
				skipped.Add(1)
				s.logger.Debug("[sweeper][usecase] attempt already resolved", "attempt_id", a.ID)
			default:
				failed.Add(1)
				s.logger.Error("[sweeper][usecase] expire failed", "attempt_id", a.ID, "err", err)
			}
			// Never cancel siblings.
			return nil
		})
	}
	_ = g.Wait()

	res := SweepResult{Expired: int(expired.Load()), Skipped: int(skipped.Load()), Failed: int(failed.Load())}
	elapsed := s.clock.Now().Sub(start)
	s.metrics.SweepCompleted(res.Expired, res.Skipped, res.Failed, elapsed)
	if len(due) > 0 {
		s.logger.Info("[sweeper][usecase] sweep done",
			"due", len(due), "expired", res.Expired, "skipped", res.Skipped, "failed", res.Failed, "elapsed", elapsed)
	}
	return res, nil
}

// Run sweeps immediately and then on every tick until ctx is done.
func (s *ExpirySweeper) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.New("sweep interval must be positive")
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	s.logger.Info("[sweeper][usecase] started", "interval", interval, "concurrency", s.concurrency)
	_, _ = s.Sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("[sweeper][usecase] stopped")
			return ctx.Err()
		case <-t.C:
			_, _ = s.Sweep(ctx)
		}
	}
}
