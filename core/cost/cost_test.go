package cost

import (
	"testing"
	"time"

	"github.com/skyops/fieldcoord/core/faults"
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

func TestDurationInclusive(t *testing.T) {
	m := model.Mission{StartDate: date(t, "2026-03-01"), EndDate: date(t, "2026-03-05")}
	if got := Duration(m); got != 5 {
		t.Fatalf("expected 5 days, got %d", got)
	}
	single := model.Mission{StartDate: date(t, "2026-03-01"), EndDate: date(t, "2026-03-01")}
	if got := Duration(single); got != 1 {
		t.Fatalf("expected 1 day, got %d", got)
	}
	if got := Duration(model.Mission{}); got != 0 {
		t.Fatalf("expected 0 days for zero dates, got %d", got)
	}
}

func TestComputeCost(t *testing.T) {
	m := model.Mission{StartDate: date(t, "2026-03-01"), EndDate: date(t, "2026-03-05")}
	got, err := ForMission(1500, m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7500.00 {
		t.Fatalf("expected 7500.00, got %.2f", got)
	}
}

func TestComputeMissingRate(t *testing.T) {
	_, err := Compute(-1, 5)
	if !faults.Is(err, faults.MissingRate) {
		t.Fatalf("expected MissingRate, got %v", err)
	}
}

func TestComputeNeverNegative(t *testing.T) {
	got, err := Compute(100, -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for negative duration, got %.2f", got)
	}
}

func TestRoundMinorUnit(t *testing.T) {
	if got := Round(10.006); got != 10.01 {
		t.Fatalf("expected 10.01, got %v", got)
	}
	if got := Round(10.004); got != 10.0 {
		t.Fatalf("expected 10.00, got %v", got)
	}
}
