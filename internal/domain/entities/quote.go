package entities

import "time"

// QuoteStatus is the overall lifecycle of a cleaning job.
//
// Domain notes:
//   - pending: waiting for a cleaner (also the state a quote returns to when
//     an assignment attempt is declined or expires).
//   - assigned: a cleaner is attached, either awaiting response or confirmed.
//   - completed / cancelled: terminal, never re-assigned by this service.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusAssigned  QuoteStatus = "assigned"
	QuoteStatusCompleted QuoteStatus = "completed"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// LeadStatus is the sales pipeline state, independent of assignment.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusBooked    LeadStatus = "booked"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusBooked, LeadStatusLost:
		return true
	}
	return false
}

// SpaceDetails describes the place to be cleaned.
type SpaceDetails struct {
	Type      string `json:"type"`
	Bedrooms  int    `json:"bedrooms"`
	Bathrooms int    `json:"bathrooms"`
	Floors    int    `json:"floors"`
}

// Quote is a customer's cleaning job request.
//
// Storage model (DynamoDB):
//   - PK: id
//
// PendingAttemptID is the quote-side guard for "one pending attempt per
// quote". It is written in the same transaction that creates the attempt and
// removed in the one that resolves it.
type Quote struct {
	ID                string       `json:"id"`
	ClientName        string       `json:"client_name"`
	ClientEmail       string       `json:"client_email"`
	ClientPhone       string       `json:"client_phone,omitempty"`
	ServiceType       string       `json:"service_type"`
	Space             SpaceDetails `json:"space_details"`
	CleaningLevel     string       `json:"cleaning_level"`
	ZipCode           string       `json:"zip_code"`
	EstimatedHours    float64      `json:"estimated_hours"`
	Status            QuoteStatus  `json:"status"`
	LeadStatus        LeadStatus   `json:"lead_status"`
	ScheduledAt       *time.Time   `json:"scheduled_date,omitempty"`
	AssignedCleanerID string       `json:"assigned_cleaner_id,omitempty"`
	PendingAttemptID  string       `json:"pending_attempt_id,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// Assignable reports whether a new assignment attempt may target the quote.
func (q Quote) Assignable() bool {
	return q.Status == QuoteStatusPending || q.Status == QuoteStatusAssigned
}
