package handlers

import (
	"net/http"

	request "cleaning_assignments/internal/adapter/http/dto/request"
	response "cleaning_assignments/internal/adapter/http/dto/response"
	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves the admin views of a quote: its state, its assignment
// history and the manual overrides.
type QuoteHandler struct {
	quotes      usecase.IQuoteUseCase
	assignments usecase.IAssignmentUseCase
}

func NewQuoteHandler(quotes usecase.IQuoteUseCase, assignments usecase.IAssignmentUseCase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, assignments: assignments}
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.quotes.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) ListAssignments(c *gin.Context) {
	attempts, err := h.assignments.ListByQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAttempts(attempts))
}

func (h *QuoteHandler) AutoAssign(c *gin.Context) {
	var payload request.AutoAssignRequest
	if !bindJSON(c, &payload) {
		return
	}

	attempt, err := h.assignments.AutoAssign(c.Request.Context(), payload.ToInput(c.Param("id")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromAttempt(attempt))
}

func (h *QuoteHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if !bindJSON(c, &payload) {
		return
	}

	q, err := h.quotes.UpdateLeadStatus(c.Request.Context(), c.Param("id"), entities.LeadStatus(payload.LeadStatus))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) Unassign(c *gin.Context) {
	q, err := h.quotes.Unassign(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}
