package model

import (
	"fmt"
	"time"
)

// Equipment represents a field-deployable unit (drone) assignable to one
// mission at a time.
type Equipment struct {
	ID           string
	Model        string
	Capabilities []string
	Location     string
	Status       EquipmentStatus
	// Weather lists the environmental condition tags the unit tolerates.
	Weather []string
	// CurrentMission follows the same weak-reference invariant as
	// Operator.CurrentMission, with InUse in place of Assigned.
	CurrentMission string
	UsageCycles    int
	LastService    time.Time
	NextService    time.Time
	DailyRate      float64
}

// Validate checks the equipment invariants.
func (e Equipment) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("equipment id is required")
	}
	inUse := e.Status == EquipmentInUse
	if inUse != (e.CurrentMission != "") {
		return fmt.Errorf("equipment %s: status %s inconsistent with mission reference %q", e.ID, e.Status, e.CurrentMission)
	}
	return nil
}

// Capable reports whether the unit carries every required capability tag.
func (e Equipment) Capable(caps []string) bool { return HasAll(e.Capabilities, caps) }

// Tolerates reports whether the unit is rated for the given condition tag.
func (e Equipment) Tolerates(condition string) bool { return Contains(e.Weather, condition) }

// ServiceDue reports whether the unit's next service date is on or before
// the given date. A zero NextService never falls due.
func (e Equipment) ServiceDue(on time.Time) bool {
	return !e.NextService.IsZero() && !e.NextService.After(on)
}
