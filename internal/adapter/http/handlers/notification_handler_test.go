package handlers

import (
	"net/http"
	"testing"

	"cleaning_assignments/internal/adapter/http/handlers/mocks"
	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNotificationHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockINotificationUseCase(ctrl)
	h := NewNotificationHandler(uc)

	r := gin.New()
	r.GET("/v1/notifications", h.ListUnread)
	r.POST("/v1/notifications/:id/read", h.MarkRead)

	uc.EXPECT().ListUnread(gomock.Any(), "p-1").Return([]entities.InboxNotification{{ID: "n-1", RecipientID: "p-1"}}, nil)
	uc.EXPECT().ListUnread(gomock.Any(), "").Return(nil, usecase.ErrInvalidRecipientID)
	uc.EXPECT().MarkRead(gomock.Any(), "n-1").Return(entities.InboxNotification{ID: "n-1", Read: true}, nil)
	uc.EXPECT().MarkRead(gomock.Any(), "n-9").Return(entities.InboxNotification{}, interfaces.ErrNotificationNotFound)

	if w := doJSON(r, http.MethodGet, "/v1/notifications?recipient_id=p-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/notifications", ""); w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/notifications/n-1/read", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/v1/notifications/n-9/read", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
