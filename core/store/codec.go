package store

import (
	"github.com/skyops/fieldcoord/core/faults"
	"github.com/skyops/fieldcoord/core/model"
)

// Logical field names shared with the record-store collaborator. The
// collaborator resolves these to physical columns; the core never addresses
// a column by position.
const (
	FieldID             = "id"
	FieldName           = "name"
	FieldModel          = "model"
	FieldSkills         = "skills"
	FieldCerts          = "certifications"
	FieldCapabilities   = "capabilities"
	FieldLocation       = "location"
	FieldStatus         = "status"
	FieldCurrentMission = "current_mission"
	FieldAvailableFrom  = "available_from"
	FieldDailyRate      = "daily_rate"
	FieldWeather        = "weather"
	FieldUsageCycles    = "usage_cycles"
	FieldLastService    = "last_service"
	FieldNextService    = "next_service"
	FieldClient         = "client"
	FieldType           = "type"
	FieldReqSkills      = "required_skills"
	FieldReqCerts       = "required_certs"
	FieldReqCaps        = "required_capabilities"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldBudget         = "budget"
	FieldAssignedOp     = "assigned_operator"
	FieldAssignedEq     = "assigned_equipment"
)

// DecodeOperator maps a record onto an Operator. Missing optional fields
// degrade to zero values; only the identifier is mandatory.
func DecodeOperator(r Record) (model.Operator, error) {
	id, err := r.Str(FieldID)
	if err != nil {
		return model.Operator{}, err
	}
	status := model.OperatorAvailable
	if s := r.OptStr(FieldStatus); s != "" {
		if parsed, err := model.ParseOperatorStatus(s); err == nil {
			status = parsed
		}
	}
	rate := -1.0
	if f, err := r.Float(FieldDailyRate); err == nil {
		rate = f
	}
	return model.Operator{
		ID:             id,
		Name:           r.OptStr(FieldName),
		Skills:         r.Tags(FieldSkills),
		Certifications: r.Tags(FieldCerts),
		Location:       r.OptStr(FieldLocation),
		Status:         status,
		CurrentMission: r.OptStr(FieldCurrentMission),
		AvailableFrom:  r.Date(FieldAvailableFrom),
		DailyRate:      rate,
	}, nil
}

// DecodeEquipment maps a record onto an Equipment unit.
func DecodeEquipment(r Record) (model.Equipment, error) {
	id, err := r.Str(FieldID)
	if err != nil {
		return model.Equipment{}, err
	}
	status := model.EquipmentAvailable
	if s := r.OptStr(FieldStatus); s != "" {
		if parsed, err := model.ParseEquipmentStatus(s); err == nil {
			status = parsed
		}
	}
	rate := -1.0
	if f, err := r.Float(FieldDailyRate); err == nil {
		rate = f
	}
	return model.Equipment{
		ID:             id,
		Model:          r.OptStr(FieldModel),
		Capabilities:   r.Tags(FieldCapabilities),
		Location:       r.OptStr(FieldLocation),
		Status:         status,
		Weather:        r.Tags(FieldWeather),
		CurrentMission: r.OptStr(FieldCurrentMission),
		UsageCycles:    r.Int(FieldUsageCycles),
		LastService:    r.Date(FieldLastService),
		NextService:    r.Date(FieldNextService),
		DailyRate:      rate,
	}, nil
}

// DecodeMission maps a record onto a Mission.
func DecodeMission(r Record) (model.Mission, error) {
	id, err := r.Str(FieldID)
	if err != nil {
		return model.Mission{}, err
	}
	status := model.MissionPlanned
	if s := r.OptStr(FieldStatus); s != "" {
		if parsed, err := model.ParseMissionStatus(s); err == nil {
			status = parsed
		}
	}
	budget, err := r.Float(FieldBudget)
	if err != nil {
		budget = 0
	}
	m := model.Mission{
		ID:                id,
		Client:            r.OptStr(FieldClient),
		Location:          r.OptStr(FieldLocation),
		Type:              r.OptStr(FieldType),
		Skills:            r.Tags(FieldReqSkills),
		Certs:             r.Tags(FieldReqCerts),
		Capabilities:      r.Tags(FieldReqCaps),
		Weather:           r.OptStr(FieldWeather),
		StartDate:         r.Date(FieldStartDate),
		EndDate:           r.Date(FieldEndDate),
		Budget:            budget,
		Status:            status,
		AssignedOperator:  r.OptStr(FieldAssignedOp),
		AssignedEquipment: r.OptStr(FieldAssignedEq),
	}
	if m.EndDate.Before(m.StartDate) {
		return model.Mission{}, faults.New(faults.MissingField, "mission %s: end date precedes start date", id)
	}
	return m, nil
}

// DecodeOperators decodes a full collection, skipping rows without an
// identifier rather than failing the whole snapshot.
func DecodeOperators(records []Record) []model.Operator {
	out := make([]model.Operator, 0, len(records))
	for _, r := range records {
		if op, err := DecodeOperator(r); err == nil {
			out = append(out, op)
		}
	}
	return out
}

// DecodeEquipmentAll decodes a full equipment collection.
func DecodeEquipmentAll(records []Record) []model.Equipment {
	out := make([]model.Equipment, 0, len(records))
	for _, r := range records {
		if eq, err := DecodeEquipment(r); err == nil {
			out = append(out, eq)
		}
	}
	return out
}

// DecodeMissions decodes a full mission collection.
func DecodeMissions(records []Record) []model.Mission {
	out := make([]model.Mission, 0, len(records))
	for _, r := range records {
		if m, err := DecodeMission(r); err == nil {
			out = append(out, m)
		}
	}
	return out
}
