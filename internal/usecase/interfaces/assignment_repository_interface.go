package interfaces

import (
	"context"
	"time"

	"cleaning_assignments/internal/domain/entities"
)

//go:generate mockgen -source=assignment_repository_interface.go -destination=mocks/assignment_repository_mock.go -package=mock_interfaces

// TransitionOptions carries the details of a status write.
type TransitionOptions struct {
	At    time.Time
	Late  bool
	Quote entities.QuoteMutation
}

// IAssignmentRepository is the durable record store for assignment attempts.
//
// Every write that also touches the quote (QuoteMutation) is applied in one
// transaction: either both the attempt and the quote change, or neither.
//
// Contract:
//   - Create fails with ErrDuplicate if the id exists, ErrPendingAttemptExists
//     or ErrQuoteNotAssignable if the quote guard rejects it, ErrQuoteNotFound.
//   - UpdateStatus is a compare-and-set on status: ErrStatusMismatch when the
//     stored status differs from `from`, ErrAttemptNotFound for unknown ids.
//   - FindPendingByQuote returns found=false when there is none.

type IAssignmentRepository interface {
	Create(ctx context.Context, a entities.AssignmentAttempt, quote entities.QuoteMutation) (entities.AssignmentAttempt, error)
	GetByID(ctx context.Context, id string) (entities.AssignmentAttempt, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.AssignmentStatus, opts TransitionOptions) (entities.AssignmentAttempt, error)
	FindPendingExpired(ctx context.Context, now time.Time) ([]entities.AssignmentAttempt, error)
	FindPendingByQuote(ctx context.Context, quoteID string) (entities.AssignmentAttempt, bool, error)
	ListByQuote(ctx context.Context, quoteID string) ([]entities.AssignmentAttempt, error)
}
