package interfaces

import (
	"errors"
	"fmt"
)

// Error kinds shared by ports and use cases. Specific errors wrap one of
// these with %w so callers can match either the specific error or its kind.
var (
	ErrValidation          = errors.New("validation error")
	ErrConflict            = errors.New("conflict")
	ErrNotFound            = errors.New("not found")
	ErrMatchingUnavailable = errors.New("matching unavailable")
	ErrNotificationFailure = errors.New("notification failure")
)

var (
	ErrDuplicate            = fmt.Errorf("%w: duplicate id", ErrConflict)
	ErrStatusMismatch       = fmt.Errorf("%w: stored status does not match expected status", ErrConflict)
	ErrPendingAttemptExists = fmt.Errorf("%w: quote already has a pending assignment", ErrConflict)
	ErrQuoteNotAssignable   = fmt.Errorf("%w: quote is not assignable", ErrConflict)

	ErrAttemptNotFound      = fmt.Errorf("%w: assignment attempt", ErrNotFound)
	ErrQuoteNotFound        = fmt.Errorf("%w: quote", ErrNotFound)
	ErrProviderNotFound     = fmt.Errorf("%w: provider", ErrNotFound)
	ErrNotificationNotFound = fmt.Errorf("%w: notification", ErrNotFound)
)
