package notifications

import (
	"time"

	"cleaning_assignments/internal/domain/entities"
)

// Envelope is the wire form of a notification on the bus and in the inbox.
type Envelope struct {
	ID            string                       `json:"id"`
	Event         string                       `json:"event"`
	RecipientID   string                       `json:"recipient_id"`
	RecipientType entities.RecipientType       `json:"recipient_type"`
	Kind          entities.NotificationKind    `json:"kind"`
	Template      string                       `json:"template"`
	Title         string                       `json:"title"`
	Message       string                       `json:"message"`
	Payload       entities.NotificationPayload `json:"payload,omitempty"`
	SentAt        time.Time                    `json:"sent_at"`
}

func newEnvelope(id string, n entities.Notification, now time.Time) Envelope {
	return Envelope{
		ID:            id,
		Event:         n.Event(),
		RecipientID:   n.RecipientID,
		RecipientType: n.RecipientType,
		Kind:          n.Kind,
		Template:      n.Template,
		Title:         n.Title,
		Message:       n.Message,
		Payload:       n.Payload,
		SentAt:        now.UTC(),
	}
}
