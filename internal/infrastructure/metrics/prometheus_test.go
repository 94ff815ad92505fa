package metrics

import (
	"testing"
	"time"

	"cleaning_assignments/internal/domain/entities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.AttemptCreated()
	c.AttemptCreated()
	c.Transitioned(entities.AssignmentStatusAccepted, false)
	c.Transitioned(entities.AssignmentStatusDeclined, true)
	c.TransitionConflict(entities.AssignmentStatusExpired)
	c.NotificationFailed(entities.EventAssignmentExpired)
	c.SweepCompleted(3, 1, 0, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.attemptsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.transitions.WithLabelValues("accepted", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.transitions.WithLabelValues("declined", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.transitionConflicts.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.notificationFailures.WithLabelValues("assignment_expired")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.sweepAttempts.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.sweepAttempts.WithLabelValues("skipped")))
	assert.Greater(t, testutil.ToFloat64(c.lastSweep), 0.0)
}

func TestCollector_MatchHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.MatchCompleted("matched", 10*time.Millisecond)
	c.MatchCompleted("unavailable", 5*time.Second)

	count, err := testutil.GatherAndCount(reg, "cleaning_assignments_match_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewCollector_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)
	assert.Panics(t, func() { NewCollector(reg) })
}
