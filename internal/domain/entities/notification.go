package entities

import "time"

type RecipientType string

const (
	RecipientClient  RecipientType = "client"
	RecipientCleaner RecipientType = "cleaner"
	RecipientAdmin   RecipientType = "admin"
)

type NotificationKind string

const (
	NotificationBooking NotificationKind = "booking"
	NotificationSystem  NotificationKind = "system"
)

// NotificationPayload is the typed data attached to a notification. Each
// assignment event has its own payload struct.
type NotificationPayload interface {
	Event() string
}

// Notification is what the workflow hands to the notification gateway.
type Notification struct {
	RecipientID   string              `json:"recipient_id"`
	RecipientType RecipientType       `json:"recipient_type"`
	Kind          NotificationKind    `json:"kind"`
	Template      string              `json:"template"`
	Title         string              `json:"title"`
	Message       string              `json:"message"`
	Payload       NotificationPayload `json:"payload"`
}

const (
	EventAssignmentRequested = "assignment_request"
	EventClientMatching      = "assignment_matching"
	EventAssignmentAccepted  = "assignment_accepted"
	EventAssignmentDeclined  = "assignment_declined"
	EventAssignmentExpired   = "assignment_expired"
)

// AssignmentRequestedPayload goes to the cleaner when an attempt is created.
type AssignmentRequestedPayload struct {
	AttemptID     string    `json:"attempt_id"`
	QuoteID       string    `json:"quote_id"`
	ScheduledDate string    `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	Deadline      time.Time `json:"deadline"`
}

func (AssignmentRequestedPayload) Event() string { return EventAssignmentRequested }

// ClientMatchingPayload goes to the client when an attempt is created.
type ClientMatchingPayload struct {
	QuoteID       string `json:"quote_id"`
	ProviderID    string `json:"provider_id"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Phone         string `json:"phone,omitempty"`
}

func (ClientMatchingPayload) Event() string { return EventClientMatching }

type AssignmentConfirmedPayload struct {
	AttemptID     string `json:"attempt_id"`
	QuoteID       string `json:"quote_id"`
	ProviderID    string `json:"provider_id"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
	Late          bool   `json:"late"`
}

func (AssignmentConfirmedPayload) Event() string { return EventAssignmentAccepted }

type AssignmentDeclinedPayload struct {
	AttemptID  string `json:"attempt_id"`
	QuoteID    string `json:"quote_id"`
	ProviderID string `json:"provider_id"`
	Late       bool   `json:"late"`
}

func (AssignmentDeclinedPayload) Event() string { return EventAssignmentDeclined }

type AssignmentExpiredPayload struct {
	AttemptID  string    `json:"attempt_id"`
	QuoteID    string    `json:"quote_id"`
	ProviderID string    `json:"provider_id"`
	Deadline   time.Time `json:"deadline"`
}

func (AssignmentExpiredPayload) Event() string { return EventAssignmentExpired }

// Event names the notification for routing. Notifications without a payload
// fall back to their template.
func (n Notification) Event() string {
	if n.Payload != nil {
		return n.Payload.Event()
	}
	return n.Template
}
