package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"
)

// Channel is a named delivery route.
type Channel struct {
	Name     string
	Notifier interfaces.INotifier
}

// MultiNotifier fans a notification out to every channel. A failing channel
// does not stop the others; the combined error names each one that failed.
type MultiNotifier struct {
	channels []Channel
	logger   *slog.Logger
}

var _ interfaces.INotifier = (*MultiNotifier)(nil)

func NewMultiNotifier(logger *slog.Logger, channels ...Channel) *MultiNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &MultiNotifier{channels: channels, logger: logger}
}

func (m *MultiNotifier) Channels() []string {
	names := make([]string, 0, len(m.channels))
	for _, c := range m.channels {
		names = append(names, c.Name)
	}
	return names
}

func (m *MultiNotifier) Notify(ctx context.Context, n entities.Notification) error {
	var errs []error
	for _, c := range m.channels {
		if err := c.Notifier.Notify(ctx, n); err != nil {
			m.logger.WarnContext(ctx, "[notification][multi] channel failed",
				"channel", c.Name, "event", n.Event(), "recipient_id", n.RecipientID, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", interfaces.ErrNotificationFailure, errors.Join(errs...))
}
