package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const inboxColumns = `id, recipient_id, recipient_type, kind, event, title, message, data, read, sent_at, read_at`

type NotificationInbox struct {
	pool *pgxpool.Pool
}

var _ interfaces.INotificationInbox = (*NotificationInbox)(nil)

func NewNotificationInbox(pool *pgxpool.Pool) *NotificationInbox {
	return &NotificationInbox{pool: pool}
}

func (i *NotificationInbox) Save(ctx context.Context, n entities.InboxNotification) error {
	var data []byte
	if len(n.Data) > 0 {
		data = n.Data
	}
	_, err := i.pool.Exec(ctx, `
		INSERT INTO notifications (`+inboxColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		n.ID, n.RecipientID, string(n.RecipientType), string(n.Kind), n.Event, n.Title, n.Message,
		data, n.Read, n.SentAt.UTC(), n.ReadAt)
	if isUniqueViolation(err) {
		return interfaces.ErrDuplicate
	}
	return err
}

func (i *NotificationInbox) ListUnread(ctx context.Context, recipientID string) ([]entities.InboxNotification, error) {
	rows, err := i.pool.Query(ctx, `
		SELECT `+inboxColumns+` FROM notifications
		WHERE recipient_id = $1 AND NOT read
		ORDER BY sent_at DESC, id DESC`, recipientID)
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.InboxNotification, error) {
		return scanInbox(row)
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.InboxNotification{}
	}
	return out, nil
}

func (i *NotificationInbox) MarkRead(ctx context.Context, id string, at time.Time) (entities.InboxNotification, error) {
	// COALESCE keeps the first read time when the call is repeated.
	n, err := scanInbox(i.pool.QueryRow(ctx, `
		UPDATE notifications SET read = true, read_at = COALESCE(read_at, $2)
		WHERE id = $1
		RETURNING `+inboxColumns, id, at.UTC()))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.InboxNotification{}, interfaces.ErrNotificationNotFound
	}
	return n, err
}

func scanInbox(row pgx.Row) (entities.InboxNotification, error) {
	var (
		n                   entities.InboxNotification
		recipientType, kind string
		data                []byte
	)
	err := row.Scan(&n.ID, &n.RecipientID, &recipientType, &kind, &n.Event, &n.Title, &n.Message,
		&data, &n.Read, &n.SentAt, &n.ReadAt)
	if err != nil {
		return entities.InboxNotification{}, err
	}
	n.RecipientType = entities.RecipientType(recipientType)
	n.Kind = entities.NotificationKind(kind)
	if len(data) > 0 {
		n.Data = json.RawMessage(data)
	}
	n.SentAt = n.SentAt.UTC()
	if n.ReadAt != nil {
		readAt := n.ReadAt.UTC()
		n.ReadAt = &readAt
	}
	return n, nil
}
