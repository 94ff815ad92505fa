package interfaces

import (
	"context"
	"time"

	"cleaning_assignments/internal/domain/entities"
)

//go:generate mockgen -source=notification_inbox_interface.go -destination=mocks/notification_inbox_mock.go -package=mock_interfaces

// INotificationInbox keeps in-app notifications per recipient.
//
//   - ListUnread returns newest first.
//   - MarkRead is idempotent; ErrNotificationNotFound for unknown ids.
type INotificationInbox interface {
	Save(ctx context.Context, n entities.InboxNotification) error
	ListUnread(ctx context.Context, recipientID string) ([]entities.InboxNotification, error)
	MarkRead(ctx context.Context, id string, at time.Time) (entities.InboxNotification, error)
}
