// Package intent defines the structured calls the coordination engine
// accepts from the query-interpretation collaborator. Natural-language
// parsing happens upstream; by the time an Intent reaches the core it is
// fully structured.
package intent

import (
	"strings"

	"github.com/skyops/fieldcoord/core/model"
	"github.com/skyops/fieldcoord/core/store"
)

// Op enumerates the supported operations.
type Op string

const (
	ListOperators  Op = "list_operators"
	ListEquipment  Op = "list_equipment"
	ListMissions   Op = "list_missions"
	AssignMission  Op = "assign_mission"
	ReleaseMission Op = "release_mission"
	ComputeCost    Op = "compute_cost"
	CheckConflicts Op = "check_conflicts"
	UpdateStatus   Op = "update_status"
)

// MatchKind selects the predicate applied to a field.
type MatchKind string

const (
	Equals   MatchKind = "equals"   // case-insensitive equality
	Contains MatchKind = "contains" // case-insensitive substring
	Has      MatchKind = "has"      // membership in a comma-separated tag set
)

// Match is one field predicate.
type Match struct {
	Kind  MatchKind `json:"kind"`
	Value string    `json:"value"`
}

// Intent is a structured request. Which fields are meaningful depends on Op.
type Intent struct {
	Op         Op               `json:"op"`
	MissionID  string           `json:"mission_id,omitempty"`
	ResourceID string           `json:"resource_id,omitempty"`
	NewStatus  string           `json:"new_status,omitempty"`
	// Cancel asks ReleaseMission to roll the mission back to Planned
	// instead of completing it.
	Cancel  bool             `json:"cancel,omitempty"`
	Filters map[string]Match `json:"filters,omitempty"`
}

// Eval applies the predicate to the named logical field of a record. A
// record lacking the field never matches.
func (m Match) Eval(r store.Record, field string) bool {
	raw, err := r.Str(field)
	if err != nil {
		return false
	}
	switch m.Kind {
	case Equals:
		return strings.EqualFold(strings.TrimSpace(raw), m.Value)
	case Contains:
		return strings.Contains(strings.ToLower(raw), strings.ToLower(m.Value))
	case Has:
		return model.Contains(model.ParseTags(raw), m.Value)
	}
	return false
}

// FilterRecords returns the records matching every predicate.
func FilterRecords(records []store.Record, filters map[string]Match) []store.Record {
	if len(filters) == 0 {
		return records
	}
	out := make([]store.Record, 0, len(records))
	for _, r := range records {
		ok := true
		for field, m := range filters {
			if !m.Eval(r, field) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}
