package handlers

import (
	"context"
	"net/http"

	request "cleaning_assignments/internal/adapter/http/dto/request"
	response "cleaning_assignments/internal/adapter/http/dto/response"
	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles the assignment attempt lifecycle.
//
// The cleaner answers through Accept/Decline; expiry is only ever driven by
// the sweeper.
type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var payload request.CreateAssignmentRequest
	if !bindJSON(c, &payload) {
		return
	}

	attempt, err := h.usecase.CreateAssignment(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromAttempt(attempt))
}

func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	attempt, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAttempt(attempt))
}

func (h *AssignmentHandler) AcceptAssignment(c *gin.Context) {
	h.respond(c, h.usecase.Accept)
}

func (h *AssignmentHandler) DeclineAssignment(c *gin.Context) {
	h.respond(c, h.usecase.Decline)
}

func (h *AssignmentHandler) respond(
	c *gin.Context,
	transition func(ctx context.Context, attemptID string) (entities.AssignmentAttempt, error),
) {
	attempt, err := transition(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromAttempt(attempt))
}
