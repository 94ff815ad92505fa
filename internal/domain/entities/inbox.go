package entities

import (
	"encoding/json"
	"time"
)

// InboxNotification is a notification as stored for in-app display. Data
// holds the event payload as JSON.
type InboxNotification struct {
	ID            string           `json:"id"`
	RecipientID   string           `json:"recipient_id"`
	RecipientType RecipientType    `json:"recipient_type"`
	Kind          NotificationKind `json:"kind"`
	Event         string           `json:"event"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Data          json.RawMessage  `json:"data,omitempty"`
	Read          bool             `json:"read"`
	SentAt        time.Time        `json:"sent_at"`
	ReadAt        *time.Time       `json:"read_at,omitempty"`
}
