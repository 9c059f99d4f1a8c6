package model

import (
	"fmt"
	"time"
)

// Operator represents a field-deployable pilot assignable to one mission at
// a time.
type Operator struct {
	ID             string
	Name           string
	Skills         []string
	Certifications []string
	Location       string
	Status         OperatorStatus
	// CurrentMission is a weak reference to the mission the operator is
	// assigned to. It is non-empty exactly when Status is Assigned.
	CurrentMission string
	AvailableFrom  time.Time
	DailyRate      float64 // currency units per day, negative means unset
}

// Validate checks the operator invariants.
func (o Operator) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("operator id is required")
	}
	assigned := o.Status == OperatorAssigned
	if assigned != (o.CurrentMission != "") {
		return fmt.Errorf("operator %s: status %s inconsistent with mission reference %q", o.ID, o.Status, o.CurrentMission)
	}
	return nil
}

// Qualified reports whether the operator holds every required skill and
// certification.
func (o Operator) Qualified(skills, certs []string) bool {
	return HasAll(o.Skills, skills) && HasAll(o.Certifications, certs)
}

// FreeBy reports whether the operator is free on or before the given date.
// A zero AvailableFrom means immediately available.
func (o Operator) FreeBy(date time.Time) bool {
	return o.AvailableFrom.IsZero() || !o.AvailableFrom.After(date)
}
