package model

import "fmt"

// OperatorStatus describes the availability of a field operator.
type OperatorStatus string

const (
	OperatorAvailable   OperatorStatus = "Available"
	OperatorAssigned    OperatorStatus = "Assigned"
	OperatorOnLeave     OperatorStatus = "OnLeave"
	OperatorUnavailable OperatorStatus = "Unavailable"
)

// EquipmentStatus describes the availability of an equipment unit.
type EquipmentStatus string

const (
	EquipmentAvailable   EquipmentStatus = "Available"
	EquipmentInUse       EquipmentStatus = "InUse"
	EquipmentMaintenance EquipmentStatus = "Maintenance"
)

// MissionStatus describes the lifecycle stage of a mission.
type MissionStatus string

const (
	MissionPlanned    MissionStatus = "Planned"
	MissionInProgress MissionStatus = "InProgress"
	MissionCompleted  MissionStatus = "Completed"
)

// ParseOperatorStatus converts a raw field value into an OperatorStatus.
func ParseOperatorStatus(s string) (OperatorStatus, error) {
	switch OperatorStatus(s) {
	case OperatorAvailable, OperatorAssigned, OperatorOnLeave, OperatorUnavailable:
		return OperatorStatus(s), nil
	}
	return "", fmt.Errorf("unknown operator status %q", s)
}

// ParseEquipmentStatus converts a raw field value into an EquipmentStatus.
func ParseEquipmentStatus(s string) (EquipmentStatus, error) {
	switch EquipmentStatus(s) {
	case EquipmentAvailable, EquipmentInUse, EquipmentMaintenance:
		return EquipmentStatus(s), nil
	}
	return "", fmt.Errorf("unknown equipment status %q", s)
}

// ParseMissionStatus converts a raw field value into a MissionStatus.
func ParseMissionStatus(s string) (MissionStatus, error) {
	switch MissionStatus(s) {
	case MissionPlanned, MissionInProgress, MissionCompleted:
		return MissionStatus(s), nil
	}
	return "", fmt.Errorf("unknown mission status %q", s)
}
