package request

import "testing"

func TestCreateAssignmentRequest_ToInput(t *testing.T) {
	in := CreateAssignmentRequest{QuoteID: " q-1 ", ProviderID: "p-1\t", ScheduledDate: "2026-10-20", ScheduledTime: "09:30"}.ToInput()
	if in.QuoteID != "q-1" || in.ProviderID != "p-1" {
		t.Fatalf("expected trimmed ids, got %+v", in)
	}
	if in.ScheduledDate != "2026-10-20" || in.ScheduledTime != "09:30" {
		t.Fatalf("unexpected schedule: %+v", in)
	}
}

func TestAutoAssignRequest_ToInput(t *testing.T) {
	in := AutoAssignRequest{ScheduledDate: "2026-10-20", StartTime: "09:00", EndTime: "12:00"}.ToInput(" q-1 ")
	if in.QuoteID != "q-1" || in.StartTime != "09:00" || in.EndTime != "12:00" {
		t.Fatalf("unexpected input: %+v", in)
	}
}

func TestMatchRequest_ToCriteria(t *testing.T) {
	c := MatchRequest{ServiceDate: "2026-10-20", StartTime: "09:00", EndTime: "12:00", ZipCode: "94107", ServiceID: "deep_clean"}.ToCriteria()
	if c.ZipCode != "94107" || c.ServiceID != "deep_clean" || c.ServiceDate != "2026-10-20" {
		t.Fatalf("unexpected criteria: %+v", c)
	}
}
