package routes

import (
	"cleaning_assignments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAssignments   = "/assignments"
	PathQuotes        = "/quotes"
	PathMatches       = "/matches"
	PathNotifications = "/notifications"
	PathSweeps        = "/sweeps"
)

func addAssignmentRoutes(rg *gin.RouterGroup, h Handlers) {
	assignments := rg.Group(PathAssignments)
	{
		assignments.POST("", h.Assignment.CreateAssignment)
		assignments.GET("/:id", h.Assignment.GetAssignment)
		assignments.POST("/:id/accept", h.Assignment.AcceptAssignment)
		assignments.POST("/:id/decline", h.Assignment.DeclineAssignment)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/:id", h.Quote.GetQuote)
		quotes.GET("/:id/assignments", h.Quote.ListAssignments)
		quotes.POST("/:id/auto-assign", h.Quote.AutoAssign)
		quotes.PATCH("/:id/lead-status", h.Quote.UpdateLeadStatus)
		quotes.POST("/:id/unassign", h.Quote.Unassign)
	}

	rg.POST(PathMatches, h.Match.Match)

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("/unread", h.Notification.ListUnread)
		notifications.POST("/:id/read", h.Notification.MarkRead)
	}
}

// addInternalRoutes are for operators and schedulers, not for clients.
func addInternalRoutes(rg *gin.RouterGroup, sweep *handlers.SweepHandler) {
	rg.POST(PathSweeps, sweep.Sweep)
}
