package response

import (
	"encoding/json"
	"time"

	"cleaning_assignments/internal/domain/entities"
)

type NotificationResponse struct {
	ID            string          `json:"id"`
	RecipientID   string          `json:"recipient_id"`
	RecipientType string          `json:"recipient_type"`
	Type          string          `json:"type"`
	Event         string          `json:"event"`
	Title         string          `json:"title"`
	Message       string          `json:"message"`
	Data          json.RawMessage `json:"data,omitempty"`
	Read          bool            `json:"read"`
	SentAt        time.Time       `json:"sent_at"`
	ReadAt        *time.Time      `json:"read_at,omitempty"`
}

func FromNotification(n entities.InboxNotification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientType: string(n.RecipientType),
		Type:          string(n.Kind),
		Event:         n.Event,
		Title:         n.Title,
		Message:       n.Message,
		Data:          n.Data,
		Read:          n.Read,
		SentAt:        n.SentAt,
		ReadAt:        n.ReadAt,
	}
}

func FromNotifications(ns []entities.InboxNotification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}
