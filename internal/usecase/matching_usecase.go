package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

const DefaultAvailabilityTimeout = 5 * time.Second

// IMatchingUseCase picks the best available cleaner for a job window.
//
//   - Match returns the single winner; found=false when nobody is free.
//   - Rank returns every candidate scored, best first.

type IMatchingUseCase interface {
	Match(ctx context.Context, criteria entities.MatchCriteria) (entities.Candidate, bool, error)
	Rank(ctx context.Context, criteria entities.MatchCriteria) ([]entities.ScoredCandidate, error)
}

type MatchingUseCase struct {
	index   interfaces.IAvailabilityIndex
	timeout time.Duration
	metrics interfaces.IAssignmentMetrics
	clock   interfaces.Clock
	logger  *slog.Logger
}

var _ IMatchingUseCase = (*MatchingUseCase)(nil)

type MatchingOption func(*MatchingUseCase)

func WithAvailabilityTimeout(d time.Duration) MatchingOption {
	return func(u *MatchingUseCase) {
		if d > 0 {
			u.timeout = d
		}
	}
}

func WithMatchingMetrics(m interfaces.IAssignmentMetrics) MatchingOption {
	return func(u *MatchingUseCase) {
		if m != nil {
			u.metrics = m
		}
	}
}

func WithMatchingLogger(l *slog.Logger) MatchingOption {
	return func(u *MatchingUseCase) {
		if l != nil {
			u.logger = l
		}
	}
}

func NewMatchingUseCase(index interfaces.IAvailabilityIndex, opts ...MatchingOption) *MatchingUseCase {
	u := &MatchingUseCase{
		index:   index,
		timeout: DefaultAvailabilityTimeout,
		metrics: interfaces.NopMetrics{},
		clock:   interfaces.SystemClock{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *MatchingUseCase) Match(ctx context.Context, criteria entities.MatchCriteria) (entities.Candidate, bool, error) {
	candidates, err := u.candidates(ctx, criteria)
	if err != nil {
		return entities.Candidate{}, false, err
	}
	if len(candidates) == 0 {
		u.logger.Info("[matching][usecase] no candidates", "zip_code", criteria.ZipCode, "service_date", criteria.ServiceDate)
		return entities.Candidate{}, false, nil
	}

	// Strict comparison keeps the earliest candidate on ties.
	best := candidates[0]
	bestScore := best.Score()
	for _, c := range candidates[1:] {
		if s := c.Score(); s > bestScore {
			best, bestScore = c, s
		}
	}

	u.logger.Info("[matching][usecase] matched", "provider_id", best.ProviderID, "score", bestScore, "candidates", len(candidates))
	return best, true, nil
}

func (u *MatchingUseCase) Rank(ctx context.Context, criteria entities.MatchCriteria) ([]entities.ScoredCandidate, error) {
	candidates, err := u.candidates(ctx, criteria)
	if err != nil {
		return nil, err
	}

	ranked := make([]entities.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, entities.ScoredCandidate{Candidate: c, Score: c.Score()})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	return ranked, nil
}

func (u *MatchingUseCase) candidates(ctx context.Context, criteria entities.MatchCriteria) ([]entities.Candidate, error) {
	criteria = normalizeCriteria(criteria)
	if err := validateCriteria(criteria); err != nil {
		return nil, err
	}

	start := u.clock.Now()
	qctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	candidates, err := u.index.FindCandidates(qctx, criteria)
	elapsed := u.clock.Now().Sub(start)
	if err != nil {
		u.metrics.MatchCompleted("unavailable", elapsed)
		u.logger.Error("[matching][usecase] availability index failed", "err", err, "elapsed", elapsed)
		return nil, fmt.Errorf("%w: %v", interfaces.ErrMatchingUnavailable, err)
	}

	outcome := "matched"
	if len(candidates) == 0 {
		outcome = "empty"
	}
	u.metrics.MatchCompleted(outcome, elapsed)
	return candidates, nil
}

func normalizeCriteria(c entities.MatchCriteria) entities.MatchCriteria {
	c.ServiceDate = strings.TrimSpace(c.ServiceDate)
	c.StartTime = strings.TrimSpace(c.StartTime)
	c.EndTime = strings.TrimSpace(c.EndTime)
	c.ZipCode = strings.TrimSpace(c.ZipCode)
	c.ServiceID = strings.TrimSpace(c.ServiceID)
	return c
}

func validateCriteria(c entities.MatchCriteria) error {
	if c.ServiceDate == "" || c.StartTime == "" || c.EndTime == "" || c.ZipCode == "" || c.ServiceID == "" {
		return fmt.Errorf("%w: service_date, start_time, end_time, zip_code and service_id are required", interfaces.ErrValidation)
	}
	start, err := entities.ParseSchedule(c.ServiceDate, c.StartTime)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrValidation, err)
	}
	end, err := entities.ParseSchedule(c.ServiceDate, c.EndTime)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrValidation, err)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end_time must be after start_time", interfaces.ErrValidation)
	}
	return nil
}
