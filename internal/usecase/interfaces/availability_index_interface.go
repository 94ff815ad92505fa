package interfaces

import (
	"context"

	"cleaning_assignments/internal/domain/entities"
)

//go:generate mockgen -source=availability_index_interface.go -destination=mocks/availability_index_mock.go -package=mock_interfaces

// IAvailabilityIndex returns cleaners free for a window, in index order.
// The order matters: the matching engine breaks score ties by it.

type IAvailabilityIndex interface {
	FindCandidates(ctx context.Context, criteria entities.MatchCriteria) ([]entities.Candidate, error)
}
