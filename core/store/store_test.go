package store

import (
	"testing"
	"time"

	"github.com/skyops/fieldcoord/core/faults"
	"github.com/skyops/fieldcoord/core/model"
)

func TestRecordStr(t *testing.T) {
	r := Record{"id": "P1", "usage_cycles": 12, "daily_rate": 1500.0}

	if got, err := r.Str("id"); err != nil || got != "P1" {
		t.Fatalf("Str(id) = %q, %v", got, err)
	}
	// Numeric values read as strings are formatted, not rejected.
	if got, _ := r.Str("usage_cycles"); got != "12" {
		t.Fatalf("Str(usage_cycles) = %q", got)
	}
	if got, _ := r.Str("daily_rate"); got != "1500" {
		t.Fatalf("Str(daily_rate) = %q", got)
	}

	_, err := r.Str("name")
	if !faults.Is(err, faults.MissingField) {
		t.Fatalf("expected MissingField for absent field, got %v", err)
	}
	_, err = Record{"name": nil}.Str("name")
	if !faults.Is(err, faults.MissingField) {
		t.Fatalf("expected MissingField for nil value, got %v", err)
	}
}

func TestRecordOptStrNullMarker(t *testing.T) {
	r := Record{"current_mission": "-", "location": " Bangalore ", "skills": "-"}

	if got := r.OptStr("current_mission"); got != "" {
		t.Fatalf("the dash marker must read as empty, got %q", got)
	}
	if got := r.OptStr("location"); got != "Bangalore" {
		t.Fatalf("OptStr(location) = %q", got)
	}
	if got := r.OptStr("absent"); got != "" {
		t.Fatalf("OptStr(absent) = %q", got)
	}
	if got := r.Tags("skills"); got != nil {
		t.Fatalf("dash tag set must decode to nil, got %v", got)
	}
}

func TestRecordFloatAndInt(t *testing.T) {
	r := Record{"budget": "20000", "usage_cycles": int64(7), "daily_rate": 950.5}

	if got, err := r.Float("budget"); err != nil || got != 20000 {
		t.Fatalf("Float(budget) = %v, %v", got, err)
	}
	if got, err := r.Float("daily_rate"); err != nil || got != 950.5 {
		t.Fatalf("Float(daily_rate) = %v, %v", got, err)
	}
	if got := r.Int("usage_cycles"); got != 7 {
		t.Fatalf("Int(usage_cycles) = %d", got)
	}
	if got := r.Int("absent"); got != 0 {
		t.Fatalf("Int(absent) = %d", got)
	}
	if _, err := (Record{"budget": "lots"}).Float("budget"); !faults.Is(err, faults.MissingField) {
		t.Fatalf("non-numeric string must fail, got %v", err)
	}
}

func TestRecordDate(t *testing.T) {
	r := Record{"start_date": "2026-03-01", "end_date": "-", "next_service": "soonish"}

	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := r.Date("start_date"); !got.Equal(want) {
		t.Fatalf("Date(start_date) = %v", got)
	}
	if got := r.Date("end_date"); !got.IsZero() {
		t.Fatalf("null marker must decode to the zero time, got %v", got)
	}
	if got := r.Date("next_service"); !got.IsZero() {
		t.Fatalf("malformed date must decode to the zero time, got %v", got)
	}
}

func TestDecodeOperator(t *testing.T) {
	r := Record{
		"id":              "P1",
		"name":            "Asha",
		"skills":          "Mapping, Survey",
		"certifications":  "DGCA",
		"status":          "Assigned",
		"current_mission": "M1",
		"daily_rate":      2000.0,
		"available_from":  "2026-04-01",
	}
	op, err := DecodeOperator(r)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if op.Status != model.OperatorAssigned || op.CurrentMission != "M1" {
		t.Fatalf("unexpected decode: %+v", op)
	}
	if len(op.Skills) != 2 || op.Skills[0] != "Mapping" {
		t.Fatalf("skills not split: %v", op.Skills)
	}
	if err := op.Validate(); err != nil {
		t.Fatalf("decoded operator must validate: %v", err)
	}
}

func TestDecodeOperatorDefaults(t *testing.T) {
	op, err := DecodeOperator(Record{"id": "P9"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if op.Status != model.OperatorAvailable {
		t.Fatalf("missing status must default to Available, got %s", op.Status)
	}
	if op.DailyRate != -1 {
		t.Fatalf("missing rate must decode as unset, got %v", op.DailyRate)
	}

	if _, err := DecodeOperator(Record{"name": "ghost"}); !faults.Is(err, faults.MissingField) {
		t.Fatalf("identifier is mandatory, got %v", err)
	}
}

func TestDecodeMissionRejectsReversedDates(t *testing.T) {
	_, err := DecodeMission(Record{
		"id":         "M1",
		"start_date": "2026-03-05",
		"end_date":   "2026-03-01",
	})
	if err == nil {
		t.Fatal("expected an error for end before start")
	}
}

func TestDecodeCollectionsSkipBadRows(t *testing.T) {
	records := []Record{
		{"id": "P1", "status": "Available"},
		{"name": "no identifier"},
		{"id": "P2", "status": "OnLeave"},
	}
	ops := DecodeOperators(records)
	if len(ops) != 2 {
		t.Fatalf("expected the bad row to be skipped, got %d operators", len(ops))
	}
	if ops[1].Status != model.OperatorOnLeave {
		t.Fatalf("unexpected second operator: %+v", ops[1])
	}
}
