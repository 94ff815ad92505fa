package request

import (
	"strings"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"
)

// CreateAssignmentRequest proposes a specific cleaner for a quote.
type CreateAssignmentRequest struct {
	QuoteID       string `json:"quote_id" binding:"required"`
	ProviderID    string `json:"provider_id" binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
	ScheduledTime string `json:"scheduled_time" binding:"required,datetime=15:04"`
}

func (r CreateAssignmentRequest) ToInput() usecase.CreateAssignmentInput {
	return usecase.CreateAssignmentInput{
		QuoteID:       strings.TrimSpace(r.QuoteID),
		ProviderID:    strings.TrimSpace(r.ProviderID),
		ScheduledDate: r.ScheduledDate,
		ScheduledTime: r.ScheduledTime,
	}
}

// AutoAssignRequest lets the matching engine choose the cleaner.
type AutoAssignRequest struct {
	ScheduledDate string `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime       string `json:"end_time" binding:"required,datetime=15:04"`
}

func (r AutoAssignRequest) ToInput(quoteID string) usecase.AutoAssignInput {
	return usecase.AutoAssignInput{
		QuoteID:       strings.TrimSpace(quoteID),
		ScheduledDate: r.ScheduledDate,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
}

type MatchRequest struct {
	ServiceDate string `json:"service_date" binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime     string `json:"end_time" binding:"required,datetime=15:04"`
	ZipCode     string `json:"zip_code" binding:"required"`
	ServiceID   string `json:"service_id" binding:"required"`
}

func (r MatchRequest) ToCriteria() entities.MatchCriteria {
	return entities.MatchCriteria{
		ServiceDate: r.ServiceDate,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		ZipCode:     r.ZipCode,
		ServiceID:   r.ServiceID,
	}
}

type LeadStatusRequest struct {
	LeadStatus string `json:"lead_status" binding:"required"`
}
