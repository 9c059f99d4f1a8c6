// Package match selects the cheapest qualifying operator and equipment unit
// for a mission. Selection is deterministic: lowest daily rate first, ties
// broken by ascending identifier.
package match

import (
	"sort"

	"github.com/skyops/fieldcoord/core/cost"
	"github.com/skyops/fieldcoord/core/faults"
	"github.com/skyops/fieldcoord/core/model"
)

// Pairing is a successful match. Nothing is committed yet; the coordinator
// turns a pairing into an atomic patch set.
type Pairing struct {
	OperatorID    string
	EquipmentID   string
	OperatorCost  float64
	EquipmentCost float64
	TotalCost     float64
}

// Failure reasons carried in the NoQualifiedResource fault details.
const (
	ReasonNotAvailable = "not_available"
	ReasonMissingTags  = "missing_skills"
	ReasonDateConflict = "date_conflict"
)

// Assign finds the best operator/equipment pair for the mission, or fails
// with NoQualifiedResource naming the exhausted pool and the check that
// exhausted it, or BudgetExceeded when the combined cost overruns the
// mission budget.
func Assign(m model.Mission, operators []model.Operator, equipment []model.Equipment) (Pairing, error) {
	op, err := pickOperator(m, operators)
	if err != nil {
		return Pairing{}, err
	}
	eq, err := pickEquipment(m, equipment)
	if err != nil {
		return Pairing{}, err
	}

	opCost, err := cost.ForMission(op.DailyRate, m)
	if err != nil {
		return Pairing{}, faults.New(faults.MissingRate, "operator %s has no usable daily rate", op.ID)
	}
	eqCost, err := cost.ForMission(eq.DailyRate, m)
	if err != nil {
		return Pairing{}, faults.New(faults.MissingRate, "equipment %s has no usable daily rate", eq.ID)
	}
	total := cost.Round(opCost + eqCost)
	if total > m.Budget {
		return Pairing{}, faults.New(faults.BudgetExceeded,
			"combined cost %.2f exceeds mission budget %.2f", total, m.Budget).
			With("shortfall", cost.Round(total-m.Budget))
	}
	return Pairing{
		OperatorID:    op.ID,
		EquipmentID:   eq.ID,
		OperatorCost:  opCost,
		EquipmentCost: eqCost,
		TotalCost:     total,
	}, nil
}

// pickOperator filters in order of increasing specificity (status, then
// qualification, then start-date fit) so that the stage which empties the
// pool names the most specific failure reason.
func pickOperator(m model.Mission, operators []model.Operator) (model.Operator, error) {
	pool := operators[:0:0]
	for _, op := range operators {
		if op.Status == model.OperatorAvailable {
			pool = append(pool, op)
		}
	}
	if len(pool) == 0 {
		return model.Operator{}, noQualified("operator", ReasonNotAvailable, "no operator is currently available")
	}

	qualified := pool[:0:0]
	for _, op := range pool {
		if op.Qualified(m.Skills, m.Certs) {
			qualified = append(qualified, op)
		}
	}
	if len(qualified) == 0 {
		return model.Operator{}, noQualified("operator", ReasonMissingTags, "no available operator holds the required skills and certifications")
	}

	free := qualified[:0:0]
	for _, op := range qualified {
		if op.FreeBy(m.StartDate) {
			free = append(free, op)
		}
	}
	if len(free) == 0 {
		return model.Operator{}, noQualified("operator", ReasonDateConflict, "no qualified operator is free by the mission start date")
	}

	sort.Slice(free, func(i, j int) bool {
		if free[i].DailyRate != free[j].DailyRate {
			return free[i].DailyRate < free[j].DailyRate
		}
		return free[i].ID < free[j].ID
	})
	return free[0], nil
}

func pickEquipment(m model.Mission, equipment []model.Equipment) (model.Equipment, error) {
	pool := equipment[:0:0]
	for _, eq := range equipment {
		if eq.Status == model.EquipmentAvailable {
			pool = append(pool, eq)
		}
	}
	if len(pool) == 0 {
		return model.Equipment{}, noQualified("equipment", ReasonNotAvailable, "no equipment unit is currently available")
	}

	capable := pool[:0:0]
	for _, eq := range pool {
		if !eq.Capable(m.Capabilities) {
			continue
		}
		if m.Weather != "" && !eq.Tolerates(m.Weather) {
			continue
		}
		capable = append(capable, eq)
	}
	if len(capable) == 0 {
		return model.Equipment{}, noQualified("equipment", ReasonMissingTags, "no available unit has the required capabilities and weather rating")
	}

	sort.Slice(capable, func(i, j int) bool {
		if capable[i].DailyRate != capable[j].DailyRate {
			return capable[i].DailyRate < capable[j].DailyRate
		}
		return capable[i].ID < capable[j].ID
	})
	return capable[0], nil
}

func noQualified(pool, reason, msg string) error {
	return faults.New(faults.NoQualifiedResource, "%s", msg).
		With("pool", pool).
		With("reason", reason)
}
