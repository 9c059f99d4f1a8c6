// Package metrics defines the observability contract for the coordination
// engine. Sinks receive assignment outcomes and conflict scan summaries;
// implementations live under infra/metrics.
package metrics

import "time"

// AssignmentEvent records the outcome of an assign or release attempt.
type AssignmentEvent struct {
	MissionID   string
	OperatorID  string
	EquipmentID string
	// Outcome is "assigned", "released", "cancelled" or "failed".
	Outcome string
	// Reason carries the fault code for failed outcomes.
	Reason    string
	TotalCost float64
	Time      time.Time
}

// ConflictScanEvent summarises one detector run.
type ConflictScanEvent struct {
	Counts map[string]int // conflict kind -> occurrences
	Total  int
	Time   time.Time
}

// Sink records coordination events for observability purposes.
type Sink interface {
	RecordAssignment(ev AssignmentEvent) error
	RecordConflictScan(ev ConflictScanEvent) error
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordAssignment(AssignmentEvent) error     { return nil }
func (NopSink) RecordConflictScan(ConflictScanEvent) error { return nil }

// Config selects and parameterises the metrics sinks.
type Config struct {
	// Sinks lists enabled sink names: "prometheus", "influxdb", "nop".
	Sinks          []string `json:"sinks"`
	PrometheusPort int      `json:"prometheus_port"`
	InfluxURL      string   `json:"influx_url"`
	InfluxToken    string   `json:"influx_token"`
	InfluxOrg      string   `json:"influx_org"`
	InfluxBucket   string   `json:"influx_bucket"`
}
