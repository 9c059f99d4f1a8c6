package model

import (
	"fmt"
	"time"
)

// Mission is a time-boxed project requiring one operator and one equipment
// unit meeting its stated requirements.
type Mission struct {
	ID           string
	Client       string
	Location     string
	Type         string
	Skills       []string // required operator skills
	Certs        []string // required operator certifications
	Capabilities []string // required equipment capabilities
	// Weather is the expected environmental condition tag. Empty means no
	// forecast is recorded and weather checks are skipped for this mission.
	Weather   string
	StartDate time.Time
	EndDate   time.Time
	Budget    float64
	Status    MissionStatus
	// Assigned references are weak and only valid while the mission is
	// Planned or InProgress; the referenced resource must point back.
	AssignedOperator  string
	AssignedEquipment string
}

// Validate checks the mission invariants.
func (m Mission) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("mission id is required")
	}
	if m.EndDate.Before(m.StartDate) {
		return fmt.Errorf("mission %s: end date %s before start date %s", m.ID, m.EndDate.Format(DateLayout), m.StartDate.Format(DateLayout))
	}
	if m.Budget < 0 {
		return fmt.Errorf("mission %s: negative budget", m.ID)
	}
	if m.Status == MissionCompleted && (m.AssignedOperator != "" || m.AssignedEquipment != "") {
		return fmt.Errorf("mission %s: completed mission still holds resource references", m.ID)
	}
	return nil
}

// Active reports whether the mission can hold assignments.
func (m Mission) Active() bool {
	return m.Status == MissionPlanned || m.Status == MissionInProgress
}

// Assigned reports whether any resource reference is set.
func (m Mission) Assigned() bool {
	return m.AssignedOperator != "" || m.AssignedEquipment != ""
}

// DateLayout is the wire format for mission and service dates.
const DateLayout = "2006-01-02"
