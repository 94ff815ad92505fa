package response

import (
	"testing"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase"
)

func TestFromAttempt(t *testing.T) {
	now := time.Now().UTC()
	a := entities.NewAssignmentAttempt("att-1", "q-1", "p-1", "2026-10-20", "09:30", now)

	res := FromAttempt(a)
	if res.ID != "att-1" || res.QuoteID != "q-1" || res.ProviderID != "p-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "pending" || res.RespondedLate {
		t.Fatalf("unexpected status fields: %+v", res)
	}
	if !res.ResponseDeadline.Equal(now.Add(30 * time.Minute)) {
		t.Fatalf("unexpected deadline: %s", res.ResponseDeadline)
	}
	if got := FromAttempts(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", got)
	}
}

func TestFromQuote_HidesGuard(t *testing.T) {
	q := entities.Quote{ID: "q-1", Status: entities.QuoteStatusAssigned, AssignedCleanerID: "p-1", PendingAttemptID: "att-1"}

	res := FromQuote(q)
	if !res.AwaitingResponse {
		t.Fatalf("expected awaiting_response while an attempt is pending")
	}
	if res.Status != "assigned" || res.AssignedCleanerID != "p-1" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromRanking(t *testing.T) {
	empty := FromRanking(nil)
	if empty.Matched || empty.Provider != nil || empty.Candidates == nil {
		t.Fatalf("unexpected empty ranking: %+v", empty)
	}

	res := FromRanking([]entities.ScoredCandidate{
		{Candidate: entities.Candidate{ProviderID: "B", Rating: 4.5, Distance: 0.5}, Score: 3.0},
		{Candidate: entities.Candidate{ProviderID: "A", Rating: 4.8, Distance: 2.0}, Score: 2.76},
	})
	if !res.Matched || res.Provider == nil || res.Provider.ProviderID != "B" {
		t.Fatalf("expected B as match, got %+v", res)
	}
	if len(res.Candidates) != 2 || res.Candidates[1].ProviderID != "A" {
		t.Fatalf("unexpected candidates: %+v", res.Candidates)
	}
}

func TestFromSweepResult(t *testing.T) {
	res := FromSweepResult(usecase.SweepResult{Expired: 2, Skipped: 1})
	if res.Expired != 2 || res.Skipped != 1 || res.Failed != 0 {
		t.Fatalf("unexpected sweep response: %+v", res)
	}
}
