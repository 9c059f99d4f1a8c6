package conflict

import (
	"reflect"
	"testing"
	"time"

	"github.com/skyops/fieldcoord/core/model"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(model.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %s: %v", s, err)
	}
	return d
}

func detector(t *testing.T) Detector {
	return Detector{AsOf: date(t, "2026-03-01")}
}

func TestScanStaleReference(t *testing.T) {
	operators := []model.Operator{
		{ID: "P1", Status: model.OperatorAssigned, CurrentMission: "M1"},
		{ID: "P2", Status: model.OperatorAvailable},
	}
	missions := []model.Mission{
		{ID: "M1", Status: model.MissionCompleted, StartDate: date(t, "2026-03-01"), EndDate: date(t, "2026-03-02")},
	}
	conflicts := detector(t).Scan(operators, nil, missions)
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly 1 conflict, got %d: %+v", len(conflicts), conflicts)
	}
	c := conflicts[0]
	if c.Kind != DoubleBooking || c.ResourceID != "P1" {
		t.Fatalf("unexpected conflict: %+v", c)
	}
}

func TestScanDoubleActiveReference(t *testing.T) {
	equipment := []model.Equipment{
		{ID: "D1", Status: model.EquipmentInUse, CurrentMission: "M1"},
	}
	missions := []model.Mission{
		{ID: "M1", Status: model.MissionInProgress, AssignedEquipment: "D1", StartDate: date(t, "2026-03-01"), EndDate: date(t, "2026-03-02")},
		{ID: "M2", Status: model.MissionPlanned, AssignedEquipment: "D1", StartDate: date(t, "2026-03-03"), EndDate: date(t, "2026-03-04")},
	}
	conflicts := detector(t).Scan(nil, equipment, missions)
	if len(conflicts) != 1 || conflicts[0].Kind != DoubleBooking {
		t.Fatalf("expected one double booking, got %+v", conflicts)
	}
}

func TestScanSkillAndBudgetAndWeather(t *testing.T) {
	operators := []model.Operator{
		{ID: "P1", Status: model.OperatorAssigned, CurrentMission: "M1", Skills: []string{"Survey"}, DailyRate: 3000},
	}
	equipment := []model.Equipment{
		{ID: "D1", Status: model.EquipmentInUse, CurrentMission: "M1", Capabilities: []string{"Camera"},
			Weather: []string{"Sunny"}, DailyRate: 1000},
	}
	missions := []model.Mission{
		{
			ID: "M1", Status: model.MissionInProgress,
			Skills: []string{"Mapping"}, Capabilities: []string{"Camera"},
			Weather:   "Rain",
			StartDate: date(t, "2026-03-01"), EndDate: date(t, "2026-03-05"),
			Budget:           10000,
			AssignedOperator: "P1", AssignedEquipment: "D1",
		},
	}
	conflicts := detector(t).Scan(operators, equipment, missions)

	var kinds []Kind
	for _, c := range conflicts {
		kinds = append(kinds, c.Kind)
	}
	want := []Kind{SkillMismatch, BudgetOverrun, WeatherIncompatible}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected kinds %v in order, got %v", want, kinds)
	}
}

func TestScanWeatherSkippedWithoutForecast(t *testing.T) {
	equipment := []model.Equipment{
		{ID: "D1", Status: model.EquipmentInUse, CurrentMission: "M1", Weather: []string{"Sunny"}},
	}
	missions := []model.Mission{
		{ID: "M1", Status: model.MissionInProgress, AssignedEquipment: "D1",
			StartDate: date(t, "2026-03-01"), EndDate: date(t, "2026-03-02")},
	}
	conflicts := detector(t).Scan(nil, equipment, missions)
	for _, c := range conflicts {
		if c.Kind == WeatherIncompatible {
			t.Fatalf("weather check must be skipped when the mission has no forecast: %+v", c)
		}
	}
}

func TestScanMaintenanceOverdue(t *testing.T) {
	equipment := []model.Equipment{
		{ID: "D1", Status: model.EquipmentInUse, CurrentMission: "M1", NextService: date(t, "2026-02-15")},
	}
	missions := []model.Mission{
		{ID: "M1", Status: model.MissionInProgress, AssignedEquipment: "D1",
			StartDate: date(t, "2026-03-01"), EndDate: date(t, "2026-03-02")},
	}
	conflicts := detector(t).Scan(nil, equipment, missions)
	found := false
	for _, c := range conflicts {
		if c.Kind == MaintenanceOverdue && c.ResourceID == "D1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a maintenance conflict, got %+v", conflicts)
	}
}

func TestScanDeterministic(t *testing.T) {
	operators := []model.Operator{
		{ID: "P2", Status: model.OperatorAssigned, CurrentMission: "gone"},
		{ID: "P1", Status: model.OperatorAssigned, CurrentMission: "gone"},
	}
	equipment := []model.Equipment{
		{ID: "D1", Status: model.EquipmentInUse, CurrentMission: "also-gone"},
	}
	d := detector(t)
	first := d.Scan(operators, equipment, nil)
	second := d.Scan(operators, equipment, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scan is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 conflicts, got %d", len(first))
	}
	var ids []string
	for _, c := range first {
		ids = append(ids, c.ResourceID)
	}
	if !reflect.DeepEqual(ids, []string{"D1", "P1", "P2"}) {
		t.Fatalf("conflicts not ordered by resource id: %v", ids)
	}
}
