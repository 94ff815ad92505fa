package usecase

import (
	"fmt"

	"cleaning_assignments/internal/domain/entities"
)

func requestedNotification(a entities.AssignmentAttempt, p entities.Provider) entities.Notification {
	return entities.Notification{
		RecipientID:   p.ID,
		RecipientType: entities.RecipientCleaner,
		Kind:          entities.NotificationBooking,
		Template:      entities.EventAssignmentRequested,
		Title:         "New Booking Request",
		Message: fmt.Sprintf("You have a new booking request for %s at %s. Please respond within %d minutes.",
			a.ScheduledDate, a.ScheduledTime, int(entities.ResponseWindow.Minutes())),
		Payload: entities.AssignmentRequestedPayload{
			AttemptID:     a.ID,
			QuoteID:       a.QuoteID,
			ScheduledDate: a.ScheduledDate,
			ScheduledTime: a.ScheduledTime,
			Deadline:      a.ResponseDeadline,
		},
	}
}

func matchingNotification(a entities.AssignmentAttempt, q entities.Quote) entities.Notification {
	return entities.Notification{
		RecipientID:   q.ClientEmail,
		RecipientType: entities.RecipientClient,
		Kind:          entities.NotificationBooking,
		Template:      entities.EventClientMatching,
		Title:         "Booking Update",
		Message:       fmt.Sprintf("We're matching you with a cleaner for your booking on %s at %s", a.ScheduledDate, a.ScheduledTime),
		Payload: entities.ClientMatchingPayload{
			QuoteID:       a.QuoteID,
			ProviderID:    a.ProviderID,
			ScheduledDate: a.ScheduledDate,
			ScheduledTime: a.ScheduledTime,
			Phone:         q.ClientPhone,
		},
	}
}

func confirmedPayload(a entities.AssignmentAttempt) entities.AssignmentConfirmedPayload {
	return entities.AssignmentConfirmedPayload{
		AttemptID:     a.ID,
		QuoteID:       a.QuoteID,
		ProviderID:    a.ProviderID,
		ScheduledDate: a.ScheduledDate,
		ScheduledTime: a.ScheduledTime,
		Late:          a.RespondedLate,
	}
}

func confirmedProviderNotification(a entities.AssignmentAttempt, p entities.Provider) entities.Notification {
	return entities.Notification{
		RecipientID:   p.ID,
		RecipientType: entities.RecipientCleaner,
		Kind:          entities.NotificationBooking,
		Template:      entities.EventAssignmentAccepted,
		Title:         "Booking Confirmed",
		Message:       fmt.Sprintf("You're confirmed for the booking on %s at %s.", a.ScheduledDate, a.ScheduledTime),
		Payload:       confirmedPayload(a),
	}
}

func confirmedClientNotification(a entities.AssignmentAttempt, q entities.Quote) entities.Notification {
	return entities.Notification{
		RecipientID:   q.ClientEmail,
		RecipientType: entities.RecipientClient,
		Kind:          entities.NotificationBooking,
		Template:      entities.EventAssignmentAccepted,
		Title:         "Cleaner Confirmed",
		Message:       fmt.Sprintf("Your cleaner has confirmed the booking on %s at %s.", a.ScheduledDate, a.ScheduledTime),
		Payload:       confirmedPayload(a),
	}
}

func declinedPayload(a entities.AssignmentAttempt) entities.AssignmentDeclinedPayload {
	return entities.AssignmentDeclinedPayload{
		AttemptID:  a.ID,
		QuoteID:    a.QuoteID,
		ProviderID: a.ProviderID,
		Late:       a.RespondedLate,
	}
}

func declinedProviderNotification(a entities.AssignmentAttempt, p entities.Provider) entities.Notification {
	return entities.Notification{
		RecipientID:   p.ID,
		RecipientType: entities.RecipientCleaner,
		Kind:          entities.NotificationBooking,
		Template:      entities.EventAssignmentDeclined,
		Title:         "Booking Declined",
		Message:       fmt.Sprintf("You declined the booking on %s at %s.", a.ScheduledDate, a.ScheduledTime),
		Payload:       declinedPayload(a),
	}
}

func declinedClientNotification(a entities.AssignmentAttempt, q entities.Quote) entities.Notification {
	return entities.Notification{
		RecipientID:   q.ClientEmail,
		RecipientType: entities.RecipientClient,
		Kind:          entities.NotificationBooking,
		Template:      entities.EventAssignmentDeclined,
		Title:         "Booking Update",
		Message:       "The cleaner is unavailable for your booking. We're finding you another cleaner.",
		Payload:       declinedPayload(a),
	}
}

func declinedAdminNotification(a entities.AssignmentAttempt, adminID string) entities.Notification {
	return entities.Notification{
		RecipientID:   adminID,
		RecipientType: entities.RecipientAdmin,
		Kind:          entities.NotificationSystem,
		Template:      entities.EventAssignmentDeclined,
		Title:         "Assignment Declined",
		Message:       fmt.Sprintf("Cleaner %s declined quote %s. The quote needs a new cleaner.", a.ProviderID, a.QuoteID),
		Payload:       declinedPayload(a),
	}
}

func expiredPayload(a entities.AssignmentAttempt) entities.AssignmentExpiredPayload {
	return entities.AssignmentExpiredPayload{
		AttemptID:  a.ID,
		QuoteID:    a.QuoteID,
		ProviderID: a.ProviderID,
		Deadline:   a.ResponseDeadline,
	}
}

func expiredProviderNotification(a entities.AssignmentAttempt) entities.Notification {
	return entities.Notification{
		RecipientID:   a.ProviderID,
		RecipientType: entities.RecipientCleaner,
		Kind:          entities.NotificationBooking,
		Template:      entities.EventAssignmentExpired,
		Title:         "Booking Request Expired",
		Message:       fmt.Sprintf("The booking request for %s at %s expired without a response.", a.ScheduledDate, a.ScheduledTime),
		Payload:       expiredPayload(a),
	}
}

func expiredAdminNotification(a entities.AssignmentAttempt, adminID string) entities.Notification {
	return entities.Notification{
		RecipientID:   adminID,
		RecipientType: entities.RecipientAdmin,
		Kind:          entities.NotificationSystem,
		Template:      entities.EventAssignmentExpired,
		Title:         "Assignment Expired",
		Message:       fmt.Sprintf("Cleaner %s did not respond to quote %s in time. The quote needs a new cleaner.", a.ProviderID, a.QuoteID),
		Payload:       expiredPayload(a),
	}
}
