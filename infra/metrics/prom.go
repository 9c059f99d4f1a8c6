package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/skyops/fieldcoord/core/metrics"
)

// PromSink records coordination events as Prometheus metrics.
type PromSink struct {
	assignments *prometheus.CounterVec
	conflicts   *prometheus.GaugeVec
	missionCost prometheus.Histogram
}

// NewPromSink registers metrics on the default Prometheus registerer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	assignments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "assignment_events_total",
		Help: "Total number of assignment attempts by outcome",
	}, []string{"outcome", "reason"})
	conflicts := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fleet_conflicts",
		Help: "Conflicts found by the last scan, per kind",
	}, []string{"kind"})
	missionCost := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "mission_assignment_cost",
		Help:    "Total cost of committed assignments",
		Buckets: prometheus.ExponentialBuckets(100, 4, 8),
	})

	if err := reg.Register(assignments); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			assignments = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(conflicts); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			conflicts = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(missionCost); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			missionCost = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{assignments: assignments, conflicts: conflicts, missionCost: missionCost}, nil
}

// RecordAssignment increments the outcome counter and observes the cost of
// committed assignments.
func (s *PromSink) RecordAssignment(ev coremetrics.AssignmentEvent) error {
	s.assignments.WithLabelValues(ev.Outcome, ev.Reason).Inc()
	if ev.Outcome == "assigned" {
		s.missionCost.Observe(ev.TotalCost)
	}
	return nil
}

// RecordConflictScan sets the per-kind conflict gauges.
func (s *PromSink) RecordConflictScan(ev coremetrics.ConflictScanEvent) error {
	s.conflicts.Reset()
	for kind, n := range ev.Counts {
		s.conflicts.WithLabelValues(kind).Set(float64(n))
	}
	return nil
}
