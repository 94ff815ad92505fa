package interfaces

import (
	"context"

	"cleaning_assignments/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

// IQuoteRepository abstracts the quote store, which is co-owned with the
// quote intake flow. Assignment itself happens inside IAssignmentRepository
// writes; this port covers reads and admin overrides.
//
//   - ClearAssignment puts an assigned quote back to pending. It fails with
//     ErrPendingAttemptExists while an attempt is awaiting response.

type IQuoteRepository interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ClearAssignment(ctx context.Context, id string) (entities.Quote, error)
	UpdateLeadStatus(ctx context.Context, id string, status entities.LeadStatus) (entities.Quote, error)
}
