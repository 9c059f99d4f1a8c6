package availability

import (
	"testing"

	"github.com/skyops/fieldcoord/core/faults"
	"github.com/skyops/fieldcoord/core/model"
)

func TestOperatorLegalTransitions(t *testing.T) {
	cases := []struct {
		from, to model.OperatorStatus
		ref      string
	}{
		{model.OperatorAvailable, model.OperatorAssigned, "M1"},
		{model.OperatorAssigned, model.OperatorAvailable, ""},
		{model.OperatorAvailable, model.OperatorOnLeave, ""},
		{model.OperatorOnLeave, model.OperatorAvailable, ""},
		{model.OperatorAvailable, model.OperatorUnavailable, ""},
		{model.OperatorUnavailable, model.OperatorAvailable, ""},
	}
	for _, tc := range cases {
		change, err := Operator(tc.from, tc.to, tc.ref)
		if err != nil {
			t.Fatalf("%s -> %s: unexpected error %v", tc.from, tc.to, err)
		}
		if change.Status != string(tc.to) {
			t.Fatalf("%s -> %s: got status %s", tc.from, tc.to, change.Status)
		}
		if change.MissionRef != tc.ref {
			t.Fatalf("%s -> %s: got ref %q, want %q", tc.from, tc.to, change.MissionRef, tc.ref)
		}
	}
}

func TestOperatorIllegalTransitions(t *testing.T) {
	cases := []struct{ from, to model.OperatorStatus }{
		{model.OperatorAssigned, model.OperatorOnLeave},
		{model.OperatorAssigned, model.OperatorUnavailable},
		{model.OperatorOnLeave, model.OperatorAssigned},
		{model.OperatorOnLeave, model.OperatorUnavailable},
		{model.OperatorUnavailable, model.OperatorAssigned},
		{model.OperatorAvailable, model.OperatorAvailable},
	}
	for _, tc := range cases {
		if _, err := Operator(tc.from, tc.to, "M1"); !faults.Is(err, faults.InvalidTransition) {
			t.Fatalf("%s -> %s: expected InvalidTransition, got %v", tc.from, tc.to, err)
		}
	}
}

func TestOperatorAssignRequiresRef(t *testing.T) {
	if _, err := Operator(model.OperatorAvailable, model.OperatorAssigned, ""); !faults.Is(err, faults.InvalidTransition) {
		t.Fatalf("expected InvalidTransition without mission ref, got %v", err)
	}
}

func TestEquipmentTransitions(t *testing.T) {
	if _, err := Equipment(model.EquipmentAvailable, model.EquipmentInUse, "M1"); err != nil {
		t.Fatalf("deploy: %v", err)
	}
	if _, err := Equipment(model.EquipmentInUse, model.EquipmentMaintenance, ""); !faults.Is(err, faults.InvalidTransition) {
		t.Fatalf("expected InUse -> Maintenance to be illegal")
	}
	change, err := Equipment(model.EquipmentMaintenance, model.EquipmentAvailable, "")
	if err != nil {
		t.Fatalf("return from maintenance: %v", err)
	}
	if change.MissionRef != "" {
		t.Fatalf("non-deploy transition must clear the mission ref")
	}
}
