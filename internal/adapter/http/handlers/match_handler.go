package handlers

import (
	"net/http"

	request "cleaning_assignments/internal/adapter/http/dto/request"
	response "cleaning_assignments/internal/adapter/http/dto/response"
	"cleaning_assignments/internal/usecase"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	usecase usecase.IMatchingUseCase
}

func NewMatchHandler(uc usecase.IMatchingUseCase) *MatchHandler {
	return &MatchHandler{usecase: uc}
}

// Match returns the whole ranking so the admin can override the pick. The
// head of a stable descending ranking is the same cleaner Match would choose.
func (h *MatchHandler) Match(c *gin.Context) {
	var payload request.MatchRequest
	if !bindJSON(c, &payload) {
		return
	}

	ranked, err := h.usecase.Rank(c.Request.Context(), payload.ToCriteria())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRanking(ranked))
}
