package interfaces

import (
	"context"

	"cleaning_assignments/internal/domain/entities"
)

//go:generate mockgen -source=provider_repository_interface.go -destination=mocks/provider_repository_mock.go -package=mock_interfaces

// IProviderRepository is a read-only view of the cleaner directory.

type IProviderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Provider, error)
}
