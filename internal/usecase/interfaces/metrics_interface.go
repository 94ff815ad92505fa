package interfaces

import (
	"time"

	"cleaning_assignments/internal/domain/entities"
)

// IAssignmentMetrics receives workflow events for instrumentation.

type IAssignmentMetrics interface {
	AttemptCreated()
	Transitioned(to entities.AssignmentStatus, late bool)
	TransitionConflict(to entities.AssignmentStatus)
	MatchCompleted(outcome string, d time.Duration)
	NotificationFailed(event string)
	SweepCompleted(expired, skipped, failed int, d time.Duration)
}

// NopMetrics discards everything.
type NopMetrics struct{}

var _ IAssignmentMetrics = NopMetrics{}

func (NopMetrics) AttemptCreated()                              {}
func (NopMetrics) Transitioned(entities.AssignmentStatus, bool) {}
func (NopMetrics) TransitionConflict(entities.AssignmentStatus) {}
func (NopMetrics) MatchCompleted(string, time.Duration)         {}
func (NopMetrics) NotificationFailed(string)                    {}
func (NopMetrics) SweepCompleted(int, int, int, time.Duration)  {}
