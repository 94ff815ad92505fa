package usecase

import (
	"context"
	"fmt"
	"strings"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

var (
	ErrInvalidRecipientID    = fmt.Errorf("%w: recipient_id is required", interfaces.ErrValidation)
	ErrInvalidNotificationID = fmt.Errorf("%w: notification id is required", interfaces.ErrValidation)
)

// INotificationUseCase serves the in-app inbox: the bell icon lists unread
// items and opening one marks it read.
type INotificationUseCase interface {
	ListUnread(ctx context.Context, recipientID string) ([]entities.InboxNotification, error)
	MarkRead(ctx context.Context, id string) (entities.InboxNotification, error)
}

type NotificationUseCase struct {
	inbox interfaces.INotificationInbox
	clock interfaces.Clock
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(inbox interfaces.INotificationInbox, clock interfaces.Clock) *NotificationUseCase {
	if clock == nil {
		clock = interfaces.SystemClock{}
	}
	return &NotificationUseCase{inbox: inbox, clock: clock}
}

func (u *NotificationUseCase) ListUnread(ctx context.Context, recipientID string) ([]entities.InboxNotification, error) {
	recipientID = strings.TrimSpace(recipientID)
	if recipientID == "" {
		return nil, ErrInvalidRecipientID
	}
	return u.inbox.ListUnread(ctx, recipientID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.InboxNotification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InboxNotification{}, ErrInvalidNotificationID
	}
	return u.inbox.MarkRead(ctx, id, u.clock.Now())
}
