package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// InboxChannel records notifications for in-app display.
type InboxChannel struct {
	inbox interfaces.INotificationInbox
	now   func() time.Time
}

var _ interfaces.INotifier = (*InboxChannel)(nil)

func NewInboxChannel(inbox interfaces.INotificationInbox) *InboxChannel {
	return &InboxChannel{inbox: inbox, now: time.Now}
}

func (c *InboxChannel) Notify(ctx context.Context, n entities.Notification) error {
	var data json.RawMessage
	if n.Payload != nil {
		raw, err := json.Marshal(n.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal notification payload: %w", err)
		}
		data = raw
	}
	return c.inbox.Save(ctx, entities.InboxNotification{
		ID:            uuid.NewString(),
		RecipientID:   n.RecipientID,
		RecipientType: n.RecipientType,
		Kind:          n.Kind,
		Event:         n.Event(),
		Title:         n.Title,
		Message:       n.Message,
		Data:          data,
		SentAt:        c.now().UTC(),
	})
}
