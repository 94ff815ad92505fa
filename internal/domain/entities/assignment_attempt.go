package entities

import (
	"fmt"
	"time"
)

// ResponseWindow is how long a cleaner has to accept or decline.
const ResponseWindow = 30 * time.Minute

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// AssignmentStatus represents the lifecycle of an assignment attempt.
//
// pending is the only initial state; accepted, declined and expired are
// terminal. Any further action on the quote needs a new attempt.
type AssignmentStatus string

const (
	AssignmentStatusPending  AssignmentStatus = "pending"
	AssignmentStatusAccepted AssignmentStatus = "accepted"
	AssignmentStatusDeclined AssignmentStatus = "declined"
	AssignmentStatusExpired  AssignmentStatus = "expired"
)

func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentStatusAccepted || s == AssignmentStatusDeclined || s == AssignmentStatusExpired
}

// AssignmentAttempt is one proposed pairing of a quote and a cleaner for a
// slot.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//   - GSI2 (status-deadline-index): status + response_deadline
type AssignmentAttempt struct {
	ID               string           `json:"id"`
	QuoteID          string           `json:"quote_id"`
	ProviderID       string           `json:"provider_id"`
	ScheduledDate    string           `json:"scheduled_date"`
	ScheduledTime    string           `json:"scheduled_time"`
	Status           AssignmentStatus `json:"status"`
	ResponseDeadline time.Time        `json:"response_deadline"`
	RespondedLate    bool             `json:"responded_late"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// NewAssignmentAttempt builds a pending attempt whose deadline is fixed at
// creation time.
func NewAssignmentAttempt(id, quoteID, providerID, date, clock string, now time.Time) AssignmentAttempt {
	now = now.UTC()
	return AssignmentAttempt{
		ID:               id,
		QuoteID:          quoteID,
		ProviderID:       providerID,
		ScheduledDate:    date,
		ScheduledTime:    clock,
		Status:           AssignmentStatusPending,
		ResponseDeadline: now.Add(ResponseWindow),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Overdue reports whether the response window has lapsed at now.
func (a AssignmentAttempt) Overdue(now time.Time) bool {
	return now.After(a.ResponseDeadline)
}

// ScheduledAt combines the scheduled date and time in UTC.
func (a AssignmentAttempt) ScheduledAt() (time.Time, error) {
	return ParseSchedule(a.ScheduledDate, a.ScheduledTime)
}

// ParseSchedule parses a YYYY-MM-DD date and a HH:MM time.
func ParseSchedule(date, clock string) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", date)
	}
	c, err := time.Parse(TimeLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected HH:MM", clock)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC), nil
}

// QuoteMutationKind selects what happens to the quote in the same
// transaction as an attempt write.
type QuoteMutationKind string

const (
	// QuoteMutationNone leaves the quote untouched.
	QuoteMutationNone QuoteMutationKind = ""
	// QuoteMutationAssign marks the quote assigned to the attempt's cleaner
	// and sets the pending guard. Fails if a pending attempt already exists
	// or the quote is completed/cancelled.
	QuoteMutationAssign QuoteMutationKind = "assign"
	// QuoteMutationConfirm clears the pending guard and keeps the quote
	// assigned.
	QuoteMutationConfirm QuoteMutationKind = "confirm"
	// QuoteMutationRelease clears the guard, the cleaner and the schedule and
	// puts the quote back to pending so it can be matched again.
	QuoteMutationRelease QuoteMutationKind = "release"
)

// QuoteMutation is the quote side of an attempt write.
type QuoteMutation struct {
	Kind        QuoteMutationKind
	QuoteID     string
	ProviderID  string
	AttemptID   string
	ScheduledAt time.Time
}

func AssignQuote(a AssignmentAttempt, scheduledAt time.Time) QuoteMutation {
	return QuoteMutation{Kind: QuoteMutationAssign, QuoteID: a.QuoteID, ProviderID: a.ProviderID, AttemptID: a.ID, ScheduledAt: scheduledAt}
}

func ConfirmQuote(a AssignmentAttempt) QuoteMutation {
	return QuoteMutation{Kind: QuoteMutationConfirm, QuoteID: a.QuoteID, ProviderID: a.ProviderID, AttemptID: a.ID}
}

func ReleaseQuote(a AssignmentAttempt) QuoteMutation {
	return QuoteMutation{Kind: QuoteMutationRelease, QuoteID: a.QuoteID, ProviderID: a.ProviderID, AttemptID: a.ID}
}
