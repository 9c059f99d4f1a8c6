// Package conflict scans a full fleet snapshot for scheduling, skill,
// budget, weather and maintenance violations. A scan is read-only and
// deterministic: the same snapshot always yields the same ordered output.
package conflict

import (
	"fmt"
	"sort"
	"time"

	"github.com/skyops/fieldcoord/core/cost"
	"github.com/skyops/fieldcoord/core/model"
)

// Kind classifies a conflict. Scan output is grouped by kind in the order
// the constants are declared.
type Kind string

const (
	DoubleBooking       Kind = "double_booking"
	SkillMismatch       Kind = "skill_mismatch"
	BudgetOverrun       Kind = "budget_overrun"
	WeatherIncompatible Kind = "weather_incompatibility"
	MaintenanceOverdue  Kind = "maintenance_overdue"
)

var kindOrder = map[Kind]int{
	DoubleBooking:       0,
	SkillMismatch:       1,
	BudgetOverrun:       2,
	WeatherIncompatible: 3,
	MaintenanceOverdue:  4,
}

// Conflict is one detected violation.
type Conflict struct {
	Kind         Kind
	ResourceKind string // "operator" or "equipment", empty for mission-only conflicts
	ResourceID   string
	MissionID    string
	Detail       string
}

// Detector runs full-snapshot scans. AsOf anchors date comparisons such as
// maintenance due checks; the zero value means the current day.
type Detector struct {
	AsOf time.Time
}

// Scan walks the snapshot and returns every conflict, grouped by kind and
// ordered within a kind by mission then resource identifier.
func (d Detector) Scan(operators []model.Operator, equipment []model.Equipment, missions []model.Mission) []Conflict {
	asOf := d.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	byID := make(map[string]model.Mission, len(missions))
	opRefs := make(map[string][]string) // operator ID -> active missions referencing it
	eqRefs := make(map[string][]string)
	for _, m := range missions {
		byID[m.ID] = m
		if !m.Active() {
			continue
		}
		if m.AssignedOperator != "" {
			opRefs[m.AssignedOperator] = append(opRefs[m.AssignedOperator], m.ID)
		}
		if m.AssignedEquipment != "" {
			eqRefs[m.AssignedEquipment] = append(eqRefs[m.AssignedEquipment], m.ID)
		}
	}

	var out []Conflict

	for _, op := range operators {
		if c := bookingConflict("operator", op.ID, op.CurrentMission, opRefs[op.ID], byID); c != nil {
			out = append(out, *c)
		}
	}
	for _, eq := range equipment {
		if c := bookingConflict("equipment", eq.ID, eq.CurrentMission, eqRefs[eq.ID], byID); c != nil {
			out = append(out, *c)
		}
	}

	opByID := make(map[string]model.Operator, len(operators))
	for _, op := range operators {
		opByID[op.ID] = op
	}
	eqByID := make(map[string]model.Equipment, len(equipment))
	for _, eq := range equipment {
		eqByID[eq.ID] = eq
	}

	for _, m := range missions {
		if !m.Active() {
			continue
		}
		if op, ok := opByID[m.AssignedOperator]; m.AssignedOperator != "" && ok {
			if !op.Qualified(m.Skills, m.Certs) {
				out = append(out, Conflict{
					Kind:         SkillMismatch,
					ResourceKind: "operator",
					ResourceID:   op.ID,
					MissionID:    m.ID,
					Detail:       fmt.Sprintf("operator %s lacks required skills or certifications for mission %s", op.ID, m.ID),
				})
			}
		}
		if eq, ok := eqByID[m.AssignedEquipment]; m.AssignedEquipment != "" && ok {
			if !eq.Capable(m.Capabilities) {
				out = append(out, Conflict{
					Kind:         SkillMismatch,
					ResourceKind: "equipment",
					ResourceID:   eq.ID,
					MissionID:    m.ID,
					Detail:       fmt.Sprintf("equipment %s lacks required capabilities for mission %s", eq.ID, m.ID),
				})
			}
		}

		if over, total := budgetOverrun(m, opByID, eqByID); over {
			out = append(out, Conflict{
				Kind:      BudgetOverrun,
				MissionID: m.ID,
				Detail:    fmt.Sprintf("assigned cost %.2f exceeds budget %.2f", total, m.Budget),
			})
		}

		if m.Weather != "" && m.AssignedEquipment != "" {
			if eq, ok := eqByID[m.AssignedEquipment]; ok && !eq.Tolerates(m.Weather) {
				out = append(out, Conflict{
					Kind:         WeatherIncompatible,
					ResourceKind: "equipment",
					ResourceID:   eq.ID,
					MissionID:    m.ID,
					Detail:       fmt.Sprintf("equipment %s is not rated for %s conditions", eq.ID, m.Weather),
				})
			}
		}

		if m.AssignedEquipment != "" {
			if eq, ok := eqByID[m.AssignedEquipment]; ok && eq.ServiceDue(asOf) {
				out = append(out, Conflict{
					Kind:         MaintenanceOverdue,
					ResourceKind: "equipment",
					ResourceID:   eq.ID,
					MissionID:    m.ID,
					Detail:       fmt.Sprintf("equipment %s was due for service on %s", eq.ID, eq.NextService.Format(model.DateLayout)),
				})
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if kindOrder[out[i].Kind] != kindOrder[out[j].Kind] {
			return kindOrder[out[i].Kind] < kindOrder[out[j].Kind]
		}
		if out[i].MissionID != out[j].MissionID {
			return out[i].MissionID < out[j].MissionID
		}
		return out[i].ResourceID < out[j].ResourceID
	})
	return out
}

// bookingConflict checks that a resource's mission reference matches exactly
// one active mission which references it back. It returns at most one
// conflict per resource.
func bookingConflict(kind, id, ref string, activeRefs []string, missions map[string]model.Mission) *Conflict {
	if ref != "" {
		m, ok := missions[ref]
		switch {
		case !ok:
			return &Conflict{Kind: DoubleBooking, ResourceKind: kind, ResourceID: id,
				Detail: fmt.Sprintf("%s %s references unknown mission %s", kind, id, ref)}
		case !m.Active():
			return &Conflict{Kind: DoubleBooking, ResourceKind: kind, ResourceID: id, MissionID: ref,
				Detail: fmt.Sprintf("%s %s references %s mission %s", kind, id, m.Status, ref)}
		case kind == "operator" && m.AssignedOperator != id,
			kind == "equipment" && m.AssignedEquipment != id:
			return &Conflict{Kind: DoubleBooking, ResourceKind: kind, ResourceID: id, MissionID: ref,
				Detail: fmt.Sprintf("mission %s does not reference %s %s back", ref, kind, id)}
		}
	}
	if len(activeRefs) > 1 || (ref == "" && len(activeRefs) > 0) {
		return &Conflict{Kind: DoubleBooking, ResourceKind: kind, ResourceID: id,
			Detail: fmt.Sprintf("%s %s is referenced by %d active missions", kind, id, len(activeRefs))}
	}
	return nil
}

// budgetOverrun sums the assigned resource costs for the mission. A resource
// without a usable rate contributes nothing; the check degrades rather than
// failing the scan.
func budgetOverrun(m model.Mission, ops map[string]model.Operator, eqs map[string]model.Equipment) (bool, float64) {
	if m.AssignedOperator == "" && m.AssignedEquipment == "" {
		return false, 0
	}
	total := 0.0
	if op, ok := ops[m.AssignedOperator]; m.AssignedOperator != "" && ok {
		if c, err := cost.ForMission(op.DailyRate, m); err == nil {
			total += c
		}
	}
	if eq, ok := eqs[m.AssignedEquipment]; m.AssignedEquipment != "" && ok {
		if c, err := cost.ForMission(eq.DailyRate, m); err == nil {
			total += c
		}
	}
	return total > m.Budget, total
}
