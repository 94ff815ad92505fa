// Package metrics exposes the assignment workflow as Prometheus collectors.
package metrics

import (
	"strconv"
	"time"

	"cleaning_assignments/internal/domain/entities"
	"cleaning_assignments/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cleaning_assignments"

// Collector implements interfaces.IAssignmentMetrics.
type Collector struct {
	attemptsCreated      prometheus.Counter
	transitions          *prometheus.CounterVec
	transitionConflicts  *prometheus.CounterVec
	matchDuration        *prometheus.HistogramVec
	notificationFailures *prometheus.CounterVec
	sweepAttempts        *prometheus.CounterVec
	sweepDuration        prometheus.Histogram
	lastSweep            prometheus.Gauge
}

var _ interfaces.IAssignmentMetrics = (*Collector)(nil)

// NewCollector registers the collectors on reg. Passing
// prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	return &Collector{
		attemptsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempts_created_total",
			Help:      "Assignment attempts created.",
		}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempt_transitions_total",
			Help:      "Attempts moved out of pending, by target status and lateness.",
		}, []string{"to", "late"}),
		transitionConflicts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attempt_transition_conflicts_total",
			Help:      "Transitions rejected because the attempt was no longer pending.",
		}, []string{"to"}),
		matchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_duration_seconds",
			Help:      "Time spent matching a job to a cleaner, by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		notificationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Notifications that could not be delivered, by event.",
		}, []string{"event"}),
		sweepAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_attempts_total",
			Help:      "Attempts handled by the expiry sweeper, by result.",
		}, []string{"result"}),
		sweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sweep_duration_seconds",
			Help:      "Duration of expiry sweeps.",
			Buckets:   prometheus.DefBuckets,
		}),
		lastSweep: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_sweep_timestamp_seconds",
			Help:      "Unix time of the last completed sweep.",
		}),
	}
}

func (c *Collector) AttemptCreated() {
	c.attemptsCreated.Inc()
}

func (c *Collector) Transitioned(to entities.AssignmentStatus, late bool) {
	c.transitions.WithLabelValues(string(to), strconv.FormatBool(late)).Inc()
}

func (c *Collector) TransitionConflict(to entities.AssignmentStatus) {
	c.transitionConflicts.WithLabelValues(string(to)).Inc()
}

func (c *Collector) MatchCompleted(outcome string, d time.Duration) {
	c.matchDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (c *Collector) NotificationFailed(event string) {
	c.notificationFailures.WithLabelValues(event).Inc()
}

func (c *Collector) SweepCompleted(expired, skipped, failed int, d time.Duration) {
	c.sweepAttempts.WithLabelValues("expired").Add(float64(expired))
	c.sweepAttempts.WithLabelValues("skipped").Add(float64(skipped))
	c.sweepAttempts.WithLabelValues("failed").Add(float64(failed))
	c.sweepDuration.Observe(d.Seconds())
	c.lastSweep.SetToCurrentTime()
}
