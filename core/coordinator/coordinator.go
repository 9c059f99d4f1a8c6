// Package coordinator sequences the matching, conflict-detection, availability
// and cost components into the operations exposed to external collaborators.
// Every call runs on a fresh snapshot and commits at most one atomic patch
// set; no failure leaves a half-updated record behind.
package coordinator

import (
	"fmt"
	"time"

	"github.com/skyops/fieldcoord/core/availability"
	"github.com/skyops/fieldcoord/core/conflict"
	"github.com/skyops/fieldcoord/core/cost"
	"github.com/skyops/fieldcoord/core/faults"
	"github.com/skyops/fieldcoord/core/intent"
	"github.com/skyops/fieldcoord/core/logger"
	"github.com/skyops/fieldcoord/core/match"
	"github.com/skyops/fieldcoord/core/metrics"
	"github.com/skyops/fieldcoord/core/model"
	"github.com/skyops/fieldcoord/core/store"
	"github.com/skyops/fieldcoord/internal/eventbus"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// Coordinator orchestrates assignment, release, conflict and query
// operations over the record-store collaborator.
type Coordinator struct {
	store    store.Store
	detector conflict.Detector
	log      logger.Logger
	sink     metrics.Sink
	bus      eventbus.EventBus
}

// New creates a Coordinator. Logger, sink and bus may be nil; no-op
// implementations are substituted.
func New(st store.Store, log logger.Logger, sink metrics.Sink, bus eventbus.EventBus) *Coordinator {
	if log == nil {
		log = nopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Coordinator{store: st, log: log, sink: sink, bus: bus}
}

// SetScanDate anchors conflict date checks for reproducible scans.
func (c *Coordinator) SetScanDate(t time.Time) { c.detector.AsOf = t }

type snapshot struct {
	operators []model.Operator
	equipment []model.Equipment
	missions  []model.Mission
}

func (c *Coordinator) snapshot() (snapshot, error) {
	ops, err := c.store.Snapshot(store.Operators)
	if err != nil {
		return snapshot{}, faults.New(faults.StoreFailure, "load operators: %v", err)
	}
	eqs, err := c.store.Snapshot(store.Equipment)
	if err != nil {
		return snapshot{}, faults.New(faults.StoreFailure, "load equipment: %v", err)
	}
	mis, err := c.store.Snapshot(store.Missions)
	if err != nil {
		return snapshot{}, faults.New(faults.StoreFailure, "load missions: %v", err)
	}
	return snapshot{
		operators: store.DecodeOperators(ops),
		equipment: store.DecodeEquipmentAll(eqs),
		missions:  store.DecodeMissions(mis),
	}, nil
}

func (s snapshot) mission(id string) (model.Mission, bool) {
	for _, m := range s.missions {
		if m.ID == id {
			return m, true
		}
	}
	return model.Mission{}, false
}

func (s snapshot) operator(id string) (model.Operator, bool) {
	for _, o := range s.operators {
		if o.ID == id {
			return o, true
		}
	}
	return model.Operator{}, false
}

func (s snapshot) equipmentUnit(id string) (model.Equipment, bool) {
	for _, e := range s.equipment {
		if e.ID == id {
			return e, true
		}
	}
	return model.Equipment{}, false
}

// Assign matches resources to the mission and commits the assignment as one
// atomic patch set: operator status+reference, equipment status+reference
// and the mission's assigned references and status.
func (c *Coordinator) Assign(missionID string) Result {
	snap, err := c.snapshot()
	if err != nil {
		return c.assignFailed(missionID, err)
	}
	m, found := snap.mission(missionID)
	if !found {
		return c.assignFailed(missionID, faults.New(faults.NotFound, "mission %s not found", missionID))
	}
	if m.Status != model.MissionPlanned {
		return c.assignFailed(missionID, faults.New(faults.InvalidMissionState, "mission %s is %s, expected Planned", m.ID, m.Status))
	}
	if m.Assigned() {
		return c.assignFailed(missionID, faults.New(faults.AlreadyAssigned, "mission %s already holds assignments", m.ID))
	}

	pairing, err := match.Assign(m, snap.operators, snap.equipment)
	if err != nil {
		return c.assignFailed(missionID, err)
	}

	op, _ := snap.operator(pairing.OperatorID)
	eq, _ := snap.equipmentUnit(pairing.EquipmentID)
	opChange, err := availability.Operator(op.Status, model.OperatorAssigned, m.ID)
	if err != nil {
		return c.assignFailed(missionID, err)
	}
	eqChange, err := availability.Equipment(eq.Status, model.EquipmentInUse, m.ID)
	if err != nil {
		return c.assignFailed(missionID, err)
	}

	err = c.store.Commit(
		store.Patch{Collection: store.Operators, RecordID: op.ID, Fields: map[string]any{
			store.FieldStatus:         opChange.Status,
			store.FieldCurrentMission: opChange.MissionRef,
		}},
		store.Patch{Collection: store.Equipment, RecordID: eq.ID, Fields: map[string]any{
			store.FieldStatus:         eqChange.Status,
			store.FieldCurrentMission: eqChange.MissionRef,
		}},
		store.Patch{Collection: store.Missions, RecordID: m.ID, Fields: map[string]any{
			store.FieldStatus:     string(model.MissionInProgress),
			store.FieldAssignedOp: op.ID,
			store.FieldAssignedEq: eq.ID,
		}},
	)
	if err != nil {
		return c.assignFailed(missionID, faults.New(faults.StoreFailure, "commit assignment: %v", err))
	}

	c.log.Infof("assigned mission %s: operator %s, equipment %s, cost %.2f", m.ID, op.ID, eq.ID, pairing.TotalCost)
	c.emitAssignment(metrics.AssignmentEvent{
		MissionID:   m.ID,
		OperatorID:  op.ID,
		EquipmentID: eq.ID,
		Outcome:     "assigned",
		TotalCost:   pairing.TotalCost,
		Time:        time.Now(),
	})
	return ok(KindAssignment,
		fmt.Sprintf("mission %s assigned to operator %s with equipment %s", m.ID, op.ID, eq.ID),
		map[string]any{
			"mission_id":     m.ID,
			"operator_id":    op.ID,
			"equipment_id":   eq.ID,
			"operator_cost":  pairing.OperatorCost,
			"equipment_cost": pairing.EquipmentCost,
			"total_cost":     pairing.TotalCost,
		})
}

// Release reverses an assignment. With cancel the mission returns to
// Planned exactly as before the assignment; otherwise it completes and the
// equipment gains a usage cycle.
func (c *Coordinator) Release(missionID string, cancel bool) Result {
	snap, err := c.snapshot()
	if err != nil {
		return fail(KindAssignment, err)
	}
	m, found := snap.mission(missionID)
	if !found {
		return fail(KindAssignment, faults.New(faults.NotFound, "mission %s not found", missionID))
	}
	if !m.Active() || !m.Assigned() {
		return fail(KindAssignment, faults.New(faults.InvalidMissionState, "mission %s has no active assignment to release", m.ID))
	}

	var patches []store.Patch
	if m.AssignedOperator != "" {
		op, found := snap.operator(m.AssignedOperator)
		if !found {
			return fail(KindAssignment, faults.New(faults.NotFound, "assigned operator %s not found", m.AssignedOperator))
		}
		change, err := availability.Operator(op.Status, model.OperatorAvailable, "")
		if err != nil {
			return fail(KindAssignment, err)
		}
		patches = append(patches, store.Patch{Collection: store.Operators, RecordID: op.ID, Fields: map[string]any{
			store.FieldStatus:         change.Status,
			store.FieldCurrentMission: "",
		}})
	}
	if m.AssignedEquipment != "" {
		eq, found := snap.equipmentUnit(m.AssignedEquipment)
		if !found {
			return fail(KindAssignment, faults.New(faults.NotFound, "assigned equipment %s not found", m.AssignedEquipment))
		}
		change, err := availability.Equipment(eq.Status, model.EquipmentAvailable, "")
		if err != nil {
			return fail(KindAssignment, err)
		}
		fields := map[string]any{
			store.FieldStatus:         change.Status,
			store.FieldCurrentMission: "",
		}
		if !cancel {
			fields[store.FieldUsageCycles] = eq.UsageCycles + 1
		}
		patches = append(patches, store.Patch{Collection: store.Equipment, RecordID: eq.ID, Fields: fields})
	}
	missionStatus := model.MissionCompleted
	if cancel {
		missionStatus = model.MissionPlanned
	}
	patches = append(patches, store.Patch{Collection: store.Missions, RecordID: m.ID, Fields: map[string]any{
		store.FieldStatus:     string(missionStatus),
		store.FieldAssignedOp: "",
		store.FieldAssignedEq: "",
	}})

	if err := c.store.Commit(patches...); err != nil {
		return fail(KindAssignment, faults.New(faults.StoreFailure, "commit release: %v", err))
	}

	outcome := "released"
	if cancel {
		outcome = "cancelled"
	}
	c.log.Infof("%s mission %s", outcome, m.ID)
	c.emitAssignment(metrics.AssignmentEvent{
		MissionID:   m.ID,
		OperatorID:  m.AssignedOperator,
		EquipmentID: m.AssignedEquipment,
		Outcome:     outcome,
		Time:        time.Now(),
	})
	return ok(KindAssignment,
		fmt.Sprintf("mission %s %s", m.ID, outcome),
		map[string]any{"mission_id": m.ID, "status": string(missionStatus)})
}

// CheckConflicts runs a full detector scan and reports per-kind counts.
func (c *Coordinator) CheckConflicts() Result {
	snap, err := c.snapshot()
	if err != nil {
		return fail(KindConflicts, err)
	}
	conflicts := c.detector.Scan(snap.operators, snap.equipment, snap.missions)

	counts := make(map[string]int)
	for _, cf := range conflicts {
		counts[string(cf.Kind)]++
	}
	ev := metrics.ConflictScanEvent{Counts: counts, Total: len(conflicts), Time: time.Now()}
	if err := c.sink.RecordConflictScan(ev); err != nil {
		c.log.Warnf("record conflict scan: %v", err)
	}
	if c.bus != nil {
		c.bus.Publish(ev)
	}

	msg := "no conflicts detected"
	if len(conflicts) > 0 {
		msg = fmt.Sprintf("%d conflicts detected", len(conflicts))
		for kind, n := range counts {
			msg += fmt.Sprintf("; %s: %d", kind, n)
		}
	}
	res := ok(KindConflicts, msg, conflicts)
	res.Count = len(conflicts)
	return res
}

// ComputeCost reports the cost of running the given resource for the full
// duration of the given mission.
func (c *Coordinator) ComputeCost(resourceID, missionID string) Result {
	snap, err := c.snapshot()
	if err != nil {
		return fail(KindCost, err)
	}
	m, found := snap.mission(missionID)
	if !found {
		return fail(KindCost, faults.New(faults.NotFound, "mission %s not found", missionID))
	}

	var rate float64
	var kind string
	if op, isOp := snap.operator(resourceID); isOp {
		rate, kind = op.DailyRate, "operator"
	} else if eq, isEq := snap.equipmentUnit(resourceID); isEq {
		rate, kind = eq.DailyRate, "equipment"
	} else {
		return fail(KindCost, faults.New(faults.NotFound, "resource %s not found", resourceID))
	}

	days := cost.Duration(m)
	total, err := cost.Compute(rate, days)
	if err != nil {
		return fail(KindCost, err)
	}
	return ok(KindCost,
		fmt.Sprintf("%s %s on mission %s for %d days: %.2f", kind, resourceID, m.ID, days, total),
		map[string]any{
			"resource_id":   resourceID,
			"resource_kind": kind,
			"mission_id":    m.ID,
			"duration_days": days,
			"daily_rate":    rate,
			"total_cost":    total,
		})
}

// UpdateStatus applies a manual status change to an operator or equipment
// unit, validating the transition. Assigned and InUse cannot be reached or
// left this way; those states are owned by Assign and Release, which keep
// the mission's back-reference in the same atomic patch set.
func (c *Coordinator) UpdateStatus(resourceID, newStatus string) Result {
	snap, err := c.snapshot()
	if err != nil {
		return fail(KindStatus, err)
	}
	if op, isOp := snap.operator(resourceID); isOp {
		if op.Status == model.OperatorAssigned {
			return fail(KindStatus, faults.New(faults.InvalidTransition,
				"operator %s is assigned to mission %s; release the mission instead", op.ID, op.CurrentMission))
		}
		target, err := model.ParseOperatorStatus(newStatus)
		if err != nil {
			return fail(KindStatus, faults.New(faults.InvalidTransition, "%v", err))
		}
		change, err := availability.Operator(op.Status, target, "")
		if err != nil {
			return fail(KindStatus, err)
		}
		return c.commitStatus(store.Operators, resourceID, op.Status, change)
	}
	if eq, isEq := snap.equipmentUnit(resourceID); isEq {
		if eq.Status == model.EquipmentInUse {
			return fail(KindStatus, faults.New(faults.InvalidTransition,
				"equipment %s is deployed on mission %s; release the mission instead", eq.ID, eq.CurrentMission))
		}
		target, err := model.ParseEquipmentStatus(newStatus)
		if err != nil {
			return fail(KindStatus, faults.New(faults.InvalidTransition, "%v", err))
		}
		change, err := availability.Equipment(eq.Status, target, "")
		if err != nil {
			return fail(KindStatus, err)
		}
		return c.commitStatus(store.Equipment, resourceID, eq.Status, change)
	}
	return fail(KindStatus, faults.New(faults.NotFound, "resource %s not found", resourceID))
}

func (c *Coordinator) commitStatus(col store.Collection, id string, from any, change availability.Change) Result {
	err := c.store.Commit(store.Patch{Collection: col, RecordID: id, Fields: map[string]any{
		store.FieldStatus:         change.Status,
		store.FieldCurrentMission: change.MissionRef,
	}})
	if err != nil {
		return fail(KindStatus, faults.New(faults.StoreFailure, "commit status: %v", err))
	}
	c.log.Infof("%s %s: %v -> %s", col, id, from, change.Status)
	return ok(KindStatus,
		fmt.Sprintf("%s moved from %v to %s", id, from, change.Status),
		map[string]any{"resource_id": id, "status": change.Status})
}

// ListOperators returns operator records matching the filters.
func (c *Coordinator) ListOperators(filters map[string]intent.Match) Result {
	return c.list(store.Operators, KindOperators, filters)
}

// ListEquipment returns equipment records matching the filters.
func (c *Coordinator) ListEquipment(filters map[string]intent.Match) Result {
	return c.list(store.Equipment, KindEquipment, filters)
}

// ListMissions returns mission records matching the filters.
func (c *Coordinator) ListMissions(filters map[string]intent.Match) Result {
	return c.list(store.Missions, KindMissions, filters)
}

func (c *Coordinator) list(col store.Collection, kind string, filters map[string]intent.Match) Result {
	records, err := c.store.Snapshot(col)
	if err != nil {
		return fail(kind, faults.New(faults.StoreFailure, "load %s: %v", col, err))
	}
	matched := intent.FilterRecords(records, filters)
	res := ok(kind, fmt.Sprintf("%d %s matched", len(matched), kind), matched)
	res.Count = len(matched)
	return res
}

// Do dispatches a structured intent to the matching operation.
func (c *Coordinator) Do(it intent.Intent) Result {
	switch it.Op {
	case intent.ListOperators:
		return c.ListOperators(it.Filters)
	case intent.ListEquipment:
		return c.ListEquipment(it.Filters)
	case intent.ListMissions:
		return c.ListMissions(it.Filters)
	case intent.AssignMission:
		return c.Assign(it.MissionID)
	case intent.ReleaseMission:
		return c.Release(it.MissionID, it.Cancel)
	case intent.ComputeCost:
		return c.ComputeCost(it.ResourceID, it.MissionID)
	case intent.CheckConflicts:
		return c.CheckConflicts()
	case intent.UpdateStatus:
		return c.UpdateStatus(it.ResourceID, it.NewStatus)
	}
	return fail(KindText, faults.New(faults.NotFound, "unknown operation %q", it.Op))
}

func (c *Coordinator) assignFailed(missionID string, err error) Result {
	c.log.Warnf("assign mission %s: %v", missionID, err)
	c.emitAssignment(metrics.AssignmentEvent{
		MissionID: missionID,
		Outcome:   "failed",
		Reason:    string(faults.CodeOf(err)),
		Time:      time.Now(),
	})
	return fail(KindAssignment, err)
}

func (c *Coordinator) emitAssignment(ev metrics.AssignmentEvent) {
	if err := c.sink.RecordAssignment(ev); err != nil {
		c.log.Warnf("record assignment event: %v", err)
	}
	if c.bus != nil {
		c.bus.Publish(ev)
	}
}
