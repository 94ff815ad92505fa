package interfaces

import (
	"context"

	"cleaning_assignments/internal/domain/entities"
)

//go:generate mockgen -source=notifier_interface.go -destination=mocks/notifier_mock.go -package=mock_interfaces

// INotifier delivers a notification through one or more channels.
// Delivery is best-effort from the workflow's point of view.

type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
