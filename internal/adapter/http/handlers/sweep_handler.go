package handlers

import (
	"net/http"

	response "cleaning_assignments/internal/adapter/http/dto/response"
	"cleaning_assignments/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SweepHandler lets a scheduler outside the process trigger an expiry sweep.
type SweepHandler struct {
	sweeper usecase.IExpirySweeper
}

func NewSweepHandler(sweeper usecase.IExpirySweeper) *SweepHandler {
	return &SweepHandler{sweeper: sweeper}
}

func (h *SweepHandler) Sweep(c *gin.Context) {
	res, err := h.sweeper.Sweep(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSweepResult(res))
}
