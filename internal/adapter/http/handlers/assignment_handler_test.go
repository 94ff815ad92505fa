package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cleaning_assignments/internal/adapter/http/handlers/mocks"
	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newAssignmentRouter(h *AssignmentHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/assignments", h.CreateAssignment)
	r.GET("/v1/assignments/:id", h.GetAssignment)
	r.POST("/v1/assignments/:id/accept", h.AcceptAssignment)
	r.POST("/v1/assignments/:id/decline", h.DeclineAssignment)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body %q: %v", w.Body.String(), err)
	}
	return body.Code
}

func TestAssignmentHandler_CreateAssignment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const valid = `{"quote_id":"q-1","provider_id":"p-1","scheduled_date":"2026-10-20","scheduled_time":"09:30"}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		r := newAssignmentRouter(NewAssignmentHandler(uc))

		w := doJSON(r, http.MethodPost, "/v1/assignments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing fields and bad formats are 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		r := newAssignmentRouter(NewAssignmentHandler(uc))

		for _, body := range []string{
			`{"provider_id":"p-1","scheduled_date":"2026-10-20","scheduled_time":"09:30"}`,
			`{"quote_id":"q-1","provider_id":"p-1","scheduled_date":"20/10/2026","scheduled_time":"09:30"}`,
			`{"quote_id":"q-1","provider_id":"p-1","scheduled_date":"2026-10-20","scheduled_time":"9:30pm"}`,
		} {
			w := doJSON(r, http.MethodPost, "/v1/assignments", body)
			if w.Code != http.StatusUnprocessableEntity {
				t.Fatalf("%s: expected 422, got %d", body, w.Code)
			}
			if code := errorCode(t, w); code != "VALIDATION_ERROR" {
				t.Fatalf("expected VALIDATION_ERROR, got %s", code)
			}
		}
	})

	t.Run("usecase errors are mapped", func(t *testing.T) {
		cases := []struct {
			err    error
			status int
			code   string
		}{
			{interfaces.ErrQuoteNotFound, http.StatusNotFound, "QUOTE_NOT_FOUND"},
			{interfaces.ErrProviderNotFound, http.StatusNotFound, "PROVIDER_NOT_FOUND"},
			{interfaces.ErrPendingAttemptExists, http.StatusConflict, "PENDING_ASSIGNMENT_EXISTS"},
			{interfaces.ErrQuoteNotAssignable, http.StatusConflict, "QUOTE_NOT_ASSIGNABLE"},
			{usecase.ErrInvalidProviderID, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
			{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
		}
		for _, tc := range cases {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAssignmentUseCase(ctrl)
			r := newAssignmentRouter(NewAssignmentHandler(uc))

			uc.EXPECT().CreateAssignment(gomock.Any(), gomock.Any()).Return(entities.AssignmentAttempt{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/assignments", valid)
			if w.Code != tc.status {
				t.Fatalf("%v: expected %d, got %d", tc.err, tc.status, w.Code)
			}
			if code := errorCode(t, w); code != tc.code {
				t.Fatalf("%v: expected %s, got %s", tc.err, tc.code, code)
			}
			ctrl.Finish()
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		r := newAssignmentRouter(NewAssignmentHandler(uc))

		want := usecase.CreateAssignmentInput{QuoteID: "q-1", ProviderID: "p-1", ScheduledDate: "2026-10-20", ScheduledTime: "09:30"}
		uc.EXPECT().CreateAssignment(gomock.Any(), want).
			Return(entities.NewAssignmentAttempt("att-1", "q-1", "p-1", "2026-10-20", "09:30", t0), nil)

		w := doJSON(r, http.MethodPost, "/v1/assignments", valid)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["id"] != "att-1" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
		if body["response_deadline"] != "2026-10-15T12:30:00Z" {
			t.Fatalf("unexpected deadline: %v", body["response_deadline"])
		}
	})
}

func TestAssignmentHandler_AcceptDecline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		r := newAssignmentRouter(NewAssignmentHandler(uc))

		accepted := entities.NewAssignmentAttempt("att-1", "q-1", "p-1", "2026-10-20", "09:30", t0)
		accepted.Status = entities.AssignmentStatusAccepted
		uc.EXPECT().Accept(gomock.Any(), "att-1").Return(accepted, nil)

		w := doJSON(r, http.MethodPost, "/v1/assignments/att-1/accept", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept after expiry is 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		r := newAssignmentRouter(NewAssignmentHandler(uc))

		uc.EXPECT().Accept(gomock.Any(), "att-1").Return(entities.AssignmentAttempt{}, interfaces.ErrStatusMismatch)

		w := doJSON(r, http.MethodPost, "/v1/assignments/att-1/accept", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "ASSIGNMENT_ALREADY_RESOLVED" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("decline unknown attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssignmentUseCase(ctrl)
		r := newAssignmentRouter(NewAssignmentHandler(uc))

		uc.EXPECT().Decline(gomock.Any(), "nope").Return(entities.AssignmentAttempt{}, interfaces.ErrAttemptNotFound)

		w := doJSON(r, http.MethodPost, "/v1/assignments/nope/decline", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAssignmentHandler_GetAssignment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAssignmentUseCase(ctrl)
	r := newAssignmentRouter(NewAssignmentHandler(uc))

	uc.EXPECT().GetByID(gomock.Any(), "att-1").Return(entities.NewAssignmentAttempt("att-1", "q-1", "p-1", "2026-10-20", "09:30", t0), nil)

	w := doJSON(r, http.MethodGet, "/v1/assignments/att-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
