package memory

import (
	"context"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

type NotificationInbox struct {
	store *Store
}

var _ interfaces.INotificationInbox = (*NotificationInbox)(nil)

func NewNotificationInbox(store *Store) *NotificationInbox {
	return &NotificationInbox{store: store}
}

func (i *NotificationInbox) Save(_ context.Context, n entities.InboxNotification) error {
	s := i.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.inbox {
		if existing.ID == n.ID {
			return interfaces.ErrDuplicate
		}
	}
	s.inbox = append(s.inbox, n)
	return nil
}

func (i *NotificationInbox) ListUnread(_ context.Context, recipientID string) ([]entities.InboxNotification, error) {
	s := i.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []entities.InboxNotification{}
	// Appended in send order, so walking backwards yields newest first.
	for j := len(s.inbox) - 1; j >= 0; j-- {
		n := s.inbox[j]
		if n.RecipientID == recipientID && !n.Read {
			out = append(out, n)
		}
	}
	return out, nil
}

func (i *NotificationInbox) MarkRead(_ context.Context, id string, at time.Time) (entities.InboxNotification, error) {
	s := i.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for j, n := range s.inbox {
		if n.ID != id {
			continue
		}
		if !n.Read {
			readAt := at.UTC()
			n.Read = true
			n.ReadAt = &readAt
			s.inbox[j] = n
		}
		return n, nil
	}
	return entities.InboxNotification{}, interfaces.ErrNotificationNotFound
}
