package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

var ErrInvalidLeadStatus = fmt.Errorf("%w: invalid lead_status", interfaces.ErrValidation)

// IQuoteUseCase exposes the admin operations on quotes that do not go through
// an assignment attempt.
//
//   - "Pipeline" board => UpdateLeadStatus()
//   - "Remove cleaner" => Unassign()

type IQuoteUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateLeadStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Quote, error)
	Unassign(ctx context.Context, id string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	logger *slog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, logger *slog.Logger) *QuoteUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuoteUseCase{repo: repo, logger: logger}
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	return u.repo.GetByID(ctx, id)
}

func (u *QuoteUseCase) UpdateLeadStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	status = entities.LeadStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidLeadStatus
	}

	q, err := u.repo.UpdateLeadStatus(ctx, id, status)
	if err != nil {
		return entities.Quote{}, err
	}
	u.logger.Info("[quote][usecase] lead status updated", "quote_id", id, "lead_status", status)
	return q, nil
}

// Unassign is the admin override that detaches a cleaner from a quote. It is
// refused while an attempt is still waiting for the cleaner's answer.
func (u *QuoteUseCase) Unassign(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.ClearAssignment(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	u.logger.Info("[quote][usecase] cleaner unassigned", "quote_id", id)
	return q, nil
}
