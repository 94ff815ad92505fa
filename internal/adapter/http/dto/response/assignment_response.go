package response

import (
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"
)

type AssignmentResponse struct {
	ID               string    `json:"id"`
	QuoteID          string    `json:"quote_id"`
	ProviderID       string    `json:"provider_id"`
	ScheduledDate    string    `json:"scheduled_date"`
	ScheduledTime    string    `json:"scheduled_time"`
	Status           string    `json:"status"`
	ResponseDeadline time.Time `json:"response_deadline"`
	RespondedLate    bool      `json:"responded_late"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromAttempt(a entities.AssignmentAttempt) AssignmentResponse {
	return AssignmentResponse{
		ID:               a.ID,
		QuoteID:          a.QuoteID,
		ProviderID:       a.ProviderID,
		ScheduledDate:    a.ScheduledDate,
		ScheduledTime:    a.ScheduledTime,
		Status:           string(a.Status),
		ResponseDeadline: a.ResponseDeadline,
		RespondedLate:    a.RespondedLate,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func FromAttempts(as []entities.AssignmentAttempt) []AssignmentResponse {
	out := make([]AssignmentResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAttempt(a))
	}
	return out
}

type SweepResponse struct {
	Expired int `json:"expired"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

func FromSweepResult(r usecase.SweepResult) SweepResponse {
	return SweepResponse{Expired: r.Expired, Skipped: r.Skipped, Failed: r.Failed}
}
