package response

import (
	"time"

	"cleaning_assignments/internal/domain/entities"
)

type SpaceResponse struct {
	Type      string `json:"type"`
	Bedrooms  int    `json:"bedrooms"`
	Bathrooms int    `json:"bathrooms"`
	Floors    int    `json:"floors"`
}

// QuoteResponse leaves out the internal pending-attempt guard.
type QuoteResponse struct {
	ID                string        `json:"id"`
	ClientName        string        `json:"client_name"`
	ClientEmail       string        `json:"client_email"`
	ClientPhone       string        `json:"client_phone,omitempty"`
	ServiceType       string        `json:"service_type"`
	SpaceDetails      SpaceResponse `json:"space_details"`
	CleaningLevel     string        `json:"cleaning_level"`
	ZipCode           string        `json:"zip_code"`
	EstimatedHours    float64       `json:"estimated_hours"`
	Status            string        `json:"status"`
	LeadStatus        string        `json:"lead_status"`
	ScheduledDate     *time.Time    `json:"scheduled_date,omitempty"`
	AssignedCleanerID string        `json:"assigned_cleaner_id,omitempty"`
	AwaitingResponse  bool          `json:"awaiting_response"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:          q.ID,
		ClientName:  q.ClientName,
		ClientEmail: q.ClientEmail,
		ClientPhone: q.ClientPhone,
		ServiceType: q.ServiceType,
		SpaceDetails: SpaceResponse{
			Type:      q.Space.Type,
			Bedrooms:  q.Space.Bedrooms,
			Bathrooms: q.Space.Bathrooms,
			Floors:    q.Space.Floors,
		},
		CleaningLevel:     q.CleaningLevel,
		ZipCode:           q.ZipCode,
		EstimatedHours:    q.EstimatedHours,
		Status:            string(q.Status),
		LeadStatus:        string(q.LeadStatus),
		ScheduledDate:     q.ScheduledAt,
		AssignedCleanerID: q.AssignedCleanerID,
		AwaitingResponse:  q.PendingAttemptID != "",
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}
