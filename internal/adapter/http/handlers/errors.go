package handlers

import (
	"errors"
	"net/http"

	"cleaning_assignments/internal/usecase"
	"cleaning_assignments/internal/usecase/interfaces"
	"cleaning_assignments/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errMalformedPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Malformed JSON payload", http.StatusBadRequest)
)

// bindJSON writes the error response itself and reports whether the handler
// may continue. Field rule violations are 422; anything else is 400.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		appErr := pkg.NewDomainError("VALIDATION_ERROR", verrs.Error(), err, http.StatusUnprocessableEntity)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return false
	}
	c.JSON(errMalformedPayload.HTTPStatus, errMalformedPayload.ToHTTPError())
	return false
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapError turns use case errors into HTTP errors. Specific errors are
// checked before their kinds.
func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoProviderAvailable):
		return pkg.NewDomainErrorSimple("NO_PROVIDER_AVAILABLE", "No cleaner is available for this window", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrAttemptNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Cleaner not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrNotificationNotFound):
		return pkg.NewDomainErrorSimple("NOTIFICATION_NOT_FOUND", "Notification not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)

	case errors.Is(err, interfaces.ErrPendingAttemptExists):
		return pkg.NewDomainErrorSimple("PENDING_ASSIGNMENT_EXISTS", "Quote already has an assignment awaiting response", http.StatusConflict)
	case errors.Is(err, interfaces.ErrQuoteNotAssignable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_ASSIGNABLE", "Quote can no longer be assigned", http.StatusConflict)
	case errors.Is(err, interfaces.ErrStatusMismatch):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_ALREADY_RESOLVED", "Assignment is no longer pending", http.StatusConflict)
	case errors.Is(err, interfaces.ErrConflict):
		return pkg.NewDomainErrorSimple("CONFLICT", "Request conflicts with the current state", http.StatusConflict)

	case errors.Is(err, interfaces.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrMatchingUnavailable):
		return pkg.NewDomainError("MATCHING_UNAVAILABLE", "Availability index is unavailable, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
