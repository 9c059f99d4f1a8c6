// Package cost computes deterministic mission costs from daily rates.
package cost

import (
	"math"
	"time"

	"github.com/skyops/fieldcoord/core/faults"
	"github.com/skyops/fieldcoord/core/model"
)

// Duration returns the mission length in days, inclusive of both endpoints.
// A one-day mission starts and ends on the same date.
func Duration(m model.Mission) int {
	if m.StartDate.IsZero() || m.EndDate.IsZero() || m.EndDate.Before(m.StartDate) {
		return 0
	}
	return int(m.EndDate.Sub(m.StartDate)/(24*time.Hour)) + 1
}

// Compute returns dailyRate multiplied by durationDays, rounded to the
// currency's minor unit (two decimal places). A negative or unset rate is a
// MissingRate fault; the result is never negative.
func Compute(dailyRate float64, durationDays int) (float64, error) {
	if dailyRate < 0 {
		return 0, faults.New(faults.MissingRate, "daily rate is absent or negative")
	}
	if durationDays < 0 {
		durationDays = 0
	}
	return Round(dailyRate * float64(durationDays)), nil
}

// ForMission computes the cost of running the given resource rate over the
// mission's inclusive date range.
func ForMission(dailyRate float64, m model.Mission) (float64, error) {
	return Compute(dailyRate, Duration(m))
}

// Round rounds to two decimal places, half away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
