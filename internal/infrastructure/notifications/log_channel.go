package notifications

import (
	"context"
	"log/slog"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

// LogChannel writes notifications to the structured log. It stands in for
// the email and SMS providers in local setups.
type LogChannel struct {
	logger *slog.Logger
}

var _ interfaces.INotifier = (*LogChannel)(nil)

func NewLogChannel(logger *slog.Logger) *LogChannel {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogChannel{logger: logger}
}

func (c *LogChannel) Notify(ctx context.Context, n entities.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "[notification][log] sent",
		"event", n.Event(),
		"recipient_type", n.RecipientType,
		"recipient_id", n.RecipientID,
		"title", n.Title,
		"message", n.Message,
	)
	return nil
}
