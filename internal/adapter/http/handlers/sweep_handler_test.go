package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"cleaning_assignments/internal/adapter/http/handlers/mocks"
	"cleaning_assignments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSweepHandler_Sweep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sweeper := mocks.NewMockIExpirySweeper(ctrl)
		r := gin.New()
		r.POST("/internal/sweeps", NewSweepHandler(sweeper).Sweep)

		sweeper.EXPECT().Sweep(gomock.Any()).Return(usecase.SweepResult{Expired: 2, Skipped: 1}, nil)

		w := doJSON(r, http.MethodPost, "/internal/sweeps", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["expired"] != 2 || body["skipped"] != 1 || body["failed"] != 0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sweeper := mocks.NewMockIExpirySweeper(ctrl)
		r := gin.New()
		r.POST("/internal/sweeps", NewSweepHandler(sweeper).Sweep)

		sweeper.EXPECT().Sweep(gomock.Any()).Return(usecase.SweepResult{}, errors.New("query failed"))

		if w := doJSON(r, http.MethodPost, "/internal/sweeps", ""); w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
