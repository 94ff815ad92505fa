package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"cleaning_assignments/internal/adapter/http/handlers/mocks"
	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type quoteFixture struct {
	quotes      *mocks.MockIQuoteUseCase
	assignments *mocks.MockIAssignmentUseCase
	router      *gin.Engine
}

func newQuoteFixture(t *testing.T) quoteFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := quoteFixture{
		quotes:      mocks.NewMockIQuoteUseCase(ctrl),
		assignments: mocks.NewMockIAssignmentUseCase(ctrl),
	}
	h := NewQuoteHandler(f.quotes, f.assignments)
	r := gin.New()
	r.GET("/v1/quotes/:id", h.GetQuote)
	r.GET("/v1/quotes/:id/assignments", h.ListAssignments)
	r.POST("/v1/quotes/:id/auto-assign", h.AutoAssign)
	r.PATCH("/v1/quotes/:id/lead-status", h.UpdateLeadStatus)
	r.POST("/v1/quotes/:id/unassign", h.Unassign)
	f.router = r
	return f
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	f := newQuoteFixture(t)
	f.quotes.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusPending}, nil)
	f.quotes.EXPECT().GetByID(gomock.Any(), "q-2").Return(entities.Quote{}, interfaces.ErrQuoteNotFound)

	if w := doJSON(f.router, http.MethodGet, "/v1/quotes/q-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(f.router, http.MethodGet, "/v1/quotes/q-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestQuoteHandler_ListAssignments(t *testing.T) {
	f := newQuoteFixture(t)
	declined := entities.NewAssignmentAttempt("att-1", "q-1", "A", "2026-10-20", "09:30", t0)
	declined.Status = entities.AssignmentStatusDeclined
	pending := entities.NewAssignmentAttempt("att-2", "q-1", "B", "2026-10-20", "09:30", t0)
	f.assignments.EXPECT().ListByQuote(gomock.Any(), "q-1").Return([]entities.AssignmentAttempt{declined, pending}, nil)

	w := doJSON(f.router, http.MethodGet, "/v1/quotes/q-1/assignments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 || body[0]["status"] != "declined" || body[1]["id"] != "att-2" {
		t.Fatalf("unexpected history: %v", body)
	}
}

func TestQuoteHandler_AutoAssign(t *testing.T) {
	const valid = `{"scheduled_date":"2026-10-20","start_time":"09:00","end_time":"12:00"}`

	t.Run("created", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.assignments.EXPECT().AutoAssign(gomock.Any(), usecase.AutoAssignInput{
			QuoteID: "q-1", ScheduledDate: "2026-10-20", StartTime: "09:00", EndTime: "12:00",
		}).Return(entities.NewAssignmentAttempt("att-1", "q-1", "B", "2026-10-20", "09:00", t0), nil)

		if w := doJSON(f.router, http.MethodPost, "/v1/quotes/q-1/auto-assign", valid); w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("no provider", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.assignments.EXPECT().AutoAssign(gomock.Any(), gomock.Any()).Return(entities.AssignmentAttempt{}, usecase.ErrNoProviderAvailable)

		w := doJSON(f.router, http.MethodPost, "/v1/quotes/q-1/auto-assign", valid)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "NO_PROVIDER_AVAILABLE" {
			t.Fatalf("unexpected code %s", code)
		}
	})

	t.Run("index unavailable", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.assignments.EXPECT().AutoAssign(gomock.Any(), gomock.Any()).Return(entities.AssignmentAttempt{}, interfaces.ErrMatchingUnavailable)

		if w := doJSON(f.router, http.MethodPost, "/v1/quotes/q-1/auto-assign", valid); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("window missing", func(t *testing.T) {
		f := newQuoteFixture(t)
		if w := doJSON(f.router, http.MethodPost, "/v1/quotes/q-1/auto-assign", `{"scheduled_date":"2026-10-20"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_UpdateLeadStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quotes.EXPECT().UpdateLeadStatus(gomock.Any(), "q-1", entities.LeadStatus("qualified")).
			Return(entities.Quote{ID: "q-1", LeadStatus: entities.LeadStatusQualified}, nil)

		w := doJSON(f.router, http.MethodPatch, "/v1/quotes/q-1/lead-status", `{"lead_status":"qualified"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.quotes.EXPECT().UpdateLeadStatus(gomock.Any(), "q-1", entities.LeadStatus("won")).
			Return(entities.Quote{}, usecase.ErrInvalidLeadStatus)

		if w := doJSON(f.router, http.MethodPatch, "/v1/quotes/q-1/lead-status", `{"lead_status":"won"}`); w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Unassign(t *testing.T) {
	f := newQuoteFixture(t)
	f.quotes.EXPECT().Unassign(gomock.Any(), "q-1").Return(entities.Quote{}, interfaces.ErrPendingAttemptExists)
	f.quotes.EXPECT().Unassign(gomock.Any(), "q-2").Return(entities.Quote{ID: "q-2", Status: entities.QuoteStatusPending}, nil)

	if w := doJSON(f.router, http.MethodPost, "/v1/quotes/q-1/unassign", ""); w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
	if w := doJSON(f.router, http.MethodPost, "/v1/quotes/q-2/unassign", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
