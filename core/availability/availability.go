// Package availability holds the pure status state machines for operators
// and equipment. Transitions validate against a fixed edge table and return
// a proposed change; committing the change is the caller's job.
package availability

import (
	"github.com/skyops/fieldcoord/core/faults"
	"github.com/skyops/fieldcoord/core/model"
)

// Change describes the validated outcome of a transition: the new status and
// the mission reference that must be stored with it. MissionRef is empty for
// every status except Assigned/InUse.
type Change struct {
	Status     string
	MissionRef string
}

type operatorEdge struct{ from, to model.OperatorStatus }

type equipmentEdge struct{ from, to model.EquipmentStatus }

// A resource holding a mission must release it before going on leave or
// into maintenance, so no edge leaves Assigned/InUse except back to
// Available.
var operatorEdges = map[operatorEdge]bool{
	{model.OperatorAvailable, model.OperatorAssigned}:    true,
	{model.OperatorAssigned, model.OperatorAvailable}:    true,
	{model.OperatorAvailable, model.OperatorOnLeave}:     true,
	{model.OperatorOnLeave, model.OperatorAvailable}:     true,
	{model.OperatorAvailable, model.OperatorUnavailable}: true,
	{model.OperatorUnavailable, model.OperatorAvailable}: true,
}

var equipmentEdges = map[equipmentEdge]bool{
	{model.EquipmentAvailable, model.EquipmentInUse}:       true,
	{model.EquipmentInUse, model.EquipmentAvailable}:       true,
	{model.EquipmentAvailable, model.EquipmentMaintenance}: true,
	{model.EquipmentMaintenance, model.EquipmentAvailable}: true,
}

// Operator validates a status transition for an operator. missionRef is
// required when the target is Assigned and ignored otherwise.
func Operator(current, target model.OperatorStatus, missionRef string) (Change, error) {
	if !operatorEdges[operatorEdge{current, target}] {
		return Change{}, faults.New(faults.InvalidTransition, "operator cannot move from %s to %s", current, target)
	}
	if target == model.OperatorAssigned {
		if missionRef == "" {
			return Change{}, faults.New(faults.InvalidTransition, "assigning an operator requires a mission reference")
		}
		return Change{Status: string(target), MissionRef: missionRef}, nil
	}
	return Change{Status: string(target)}, nil
}

// Equipment validates a status transition for an equipment unit.
func Equipment(current, target model.EquipmentStatus, missionRef string) (Change, error) {
	if !equipmentEdges[equipmentEdge{current, target}] {
		return Change{}, faults.New(faults.InvalidTransition, "equipment cannot move from %s to %s", current, target)
	}
	if target == model.EquipmentInUse {
		if missionRef == "" {
			return Change{}, faults.New(faults.InvalidTransition, "deploying equipment requires a mission reference")
		}
		return Change{Status: string(target), MissionRef: missionRef}, nil
	}
	return Change{Status: string(target)}, nil
}
