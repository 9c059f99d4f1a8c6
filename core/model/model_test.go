package model

import (
	"reflect"
	"testing"
	"time"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

func TestParseTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Mapping, Survey", []string{"Mapping", "Survey"}},
		{"  Thermal Survey ,Mapping ", []string{"Thermal Survey", "Mapping"}},
		{"Camera", []string{"Camera"}},
		{"-", nil},
		{"", nil},
		{" , ,", nil},
	}
	for _, tc := range cases {
		if got := ParseTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestHasAllIgnoresCase(t *testing.T) {
	have := []string{"Mapping", "Thermal Survey"}
	if !HasAll(have, []string{"mapping"}) {
		t.Fatal("tag matching must ignore case")
	}
	if HasAll(have, []string{"Thermal"}) {
		t.Fatal("partial tag text must not match")
	}
	if !HasAll(have, nil) {
		t.Fatal("empty requirement always holds")
	}
}

func TestOperatorValidateReferenceInvariant(t *testing.T) {
	ok := Operator{ID: "P1", Status: OperatorAssigned, CurrentMission: "M1"}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	missingRef := Operator{ID: "P1", Status: OperatorAssigned}
	if err := missingRef.Validate(); err == nil {
		t.Fatal("Assigned without a mission reference must fail")
	}
	staleRef := Operator{ID: "P1", Status: OperatorAvailable, CurrentMission: "M1"}
	if err := staleRef.Validate(); err == nil {
		t.Fatal("a mission reference outside Assigned must fail")
	}
}

func TestEquipmentValidateReferenceInvariant(t *testing.T) {
	if err := (Equipment{ID: "D1", Status: EquipmentInUse, CurrentMission: "M1"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Equipment{ID: "D1", Status: EquipmentMaintenance, CurrentMission: "M1"}).Validate(); err == nil {
		t.Fatal("a mission reference outside InUse must fail")
	}
}

func TestOperatorQualified(t *testing.T) {
	op := Operator{
		Skills:         []string{"Mapping", "Survey"},
		Certifications: []string{"DGCA"},
	}
	if !op.Qualified([]string{"Mapping"}, nil) {
		t.Fatal("expected qualification on skills alone")
	}
	if !op.Qualified([]string{"Mapping"}, []string{"dgca"}) {
		t.Fatal("certification match must ignore case")
	}
	if op.Qualified([]string{"Mapping"}, []string{"BVLOS"}) {
		t.Fatal("missing certification must disqualify")
	}
}

func TestOperatorFreeBy(t *testing.T) {
	start := day(t, "2026-03-01")
	if !(Operator{}).FreeBy(start) {
		t.Fatal("a zero AvailableFrom means immediately free")
	}
	busy := Operator{AvailableFrom: day(t, "2026-03-10")}
	if busy.FreeBy(start) {
		t.Fatal("operator free only from the 10th must not be free on the 1st")
	}
	if !busy.FreeBy(day(t, "2026-03-10")) {
		t.Fatal("the availability date itself counts as free")
	}
}

func TestEquipmentServiceDue(t *testing.T) {
	eq := Equipment{NextService: day(t, "2026-02-15")}
	if !eq.ServiceDue(day(t, "2026-03-01")) {
		t.Fatal("past service date must read as due")
	}
	if eq.ServiceDue(day(t, "2026-02-01")) {
		t.Fatal("future service date must not read as due")
	}
	if (Equipment{}).ServiceDue(day(t, "2026-03-01")) {
		t.Fatal("a zero NextService is never due")
	}
}

func TestMissionActiveAndAssigned(t *testing.T) {
	m := Mission{ID: "M1", Status: MissionInProgress, AssignedOperator: "P1"}
	if !m.Active() || !m.Assigned() {
		t.Fatalf("unexpected state: %+v", m)
	}
	done := Mission{ID: "M1", Status: MissionCompleted}
	if done.Active() || done.Assigned() {
		t.Fatalf("unexpected state: %+v", done)
	}
	planned := Mission{ID: "M1", Status: MissionPlanned}
	if !planned.Active() {
		t.Fatal("planned missions count as active for booking purposes")
	}
}

func TestParseStatuses(t *testing.T) {
	if s, err := ParseOperatorStatus("Available"); err != nil || s != OperatorAvailable {
		t.Fatalf("ParseOperatorStatus = %v, %v", s, err)
	}
	if _, err := ParseOperatorStatus("Retired"); err == nil {
		t.Fatal("unknown operator status must fail")
	}
	if s, err := ParseEquipmentStatus("InUse"); err != nil || s != EquipmentInUse {
		t.Fatalf("ParseEquipmentStatus = %v, %v", s, err)
	}
	if s, err := ParseMissionStatus("InProgress"); err != nil || s != MissionInProgress {
		t.Fatalf("ParseMissionStatus = %v, %v", s, err)
	}
}
