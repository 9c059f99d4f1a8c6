package metrics

import (
	"errors"

	coremetrics "github.com/skyops/fieldcoord/core/metrics"
)

// MultiSink fans events out to several sinks; every sink sees every event
// and errors are joined.
type MultiSink struct {
	sinks []coremetrics.Sink
}

// NewMultiSink combines the given sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordAssignment(ev coremetrics.AssignmentEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordAssignment(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordConflictScan(ev coremetrics.ConflictScanEvent) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.RecordConflictScan(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
